package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true)
	lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	boxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(0, 1)
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse every line of a command file and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildParser()
		if err != nil {
			return err
		}
		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		results, err := p.ParseLines(cmd.Context(), lines)
		if err != nil {
			return err
		}

		failed := 0
		for i, r := range results {
			if r.IsFinished() {
				continue
			}
			failed++
			var body string
			body += lineStyle.Render(fmt.Sprintf("line %d: ", i+1)) + r.Line + "\n"
			for _, d := range r.Diags {
				body += errStyle.Render(fmt.Sprintf("  [%d:%d] %s %s", d.Begin, d.End, d.Kind, d.MessageKey))
				if len(d.Kwargs) > 0 {
					body += fmt.Sprintf(" %v", d.Kwargs)
				}
				body += "\n"
			}
			fmt.Println(boxStyle.Render(body))
		}

		if failed == 0 {
			fmt.Println(okStyle.Render(fmt.Sprintf("%d line(s) parsed cleanly", len(results))))
			return nil
		}
		fmt.Println(errStyle.Render(fmt.Sprintf("%d/%d line(s) have diagnostics", failed, len(results))))
		return nil
	},
}
