package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	completeLine   int
	completeColumn int
)

var completeCmd = &cobra.Command{
	Use:   "complete <file>",
	Short: "List autocompletions at a given line and column",
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
		if completeLine < 1 || completeLine > len(lines) {
			return fmt.Errorf("--line %d out of range (file has %d lines)", completeLine, len(lines))
		}
		line := lines[completeLine-1]
		r := p.ParseLine(line)
		suggestions := r.Suggestions(completeColumn)
		if len(suggestions) == 0 {
			fmt.Println("(no suggestions)")
			return nil
		}
		var b strings.Builder
		for _, s := range suggestions {
			fmt.Fprintf(&b, "%s", s.Inserts)
			if s.NoteKey != "" {
				fmt.Fprintf(&b, "  # %s", s.NoteKey)
			}
			b.WriteByte('\n')
		}
		fmt.Print(b.String())
		return nil
	},
}

func init() {
	completeCmd.Flags().IntVar(&completeLine, "line", 1, "1-based line number")
	completeCmd.Flags().IntVar(&completeColumn, "column", 0, "0-based byte column")
}
