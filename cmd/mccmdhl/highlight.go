package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/cobra"

	mccmd "github.com/mccmdhl/mccmdhl2"
	"github.com/mccmdhl/mccmdhl2/internal/font"
)

// fontTokenType maps our Font enum onto the nearest chroma token
// category so an existing chroma.Style (not a bespoke palette) decides
// the actual colours.
func fontTokenType(f font.Font) chroma.TokenType {
	switch f {
	case font.Command:
		return chroma.NameFunction
	case font.Keyword:
		return chroma.Keyword
	case font.Numeric:
		return chroma.LiteralNumber
	case font.String:
		return chroma.LiteralString
	case font.Position, font.Rotation:
		return chroma.LiteralNumberFloat
	case font.Scoreboard:
		return chroma.NameVariable
	case font.Target:
		return chroma.NameBuiltin
	case font.Tag:
		return chroma.NameConstant
	case font.Comment:
		return chroma.Comment
	case font.Meta:
		return chroma.Punctuation
	default:
		return chroma.Text
	}
}

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print a command file with ANSI syntax highlighting",
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
		style := styles.Get("monokai")
		if style == nil {
			style = styles.Fallback
		}
		for _, line := range lines {
			r := p.ParseLine(line)
			fmt.Println(renderLine(line, r.Fonts, style))
		}
		return nil
	},
}

func renderLine(line string, spans []mccmd.FontSpan, style *chroma.Style) string {
	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.Begin > pos {
			b.WriteString(line[pos:s.Begin])
		}
		entry := style.Get(fontTokenType(s.Font))
		writeStyled(&b, entry, line[s.Begin:s.End])
		pos = s.End
	}
	if pos < len(line) {
		b.WriteString(line[pos:])
	}
	return b.String()
}

func writeStyled(b *strings.Builder, entry chroma.StyleEntry, text string) {
	if text == "" {
		return
	}
	var codes []string
	if entry.Colour.IsSet() {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Bold == chroma.Yes {
		codes = append(codes, "1")
	}
	if entry.Italic == chroma.Yes {
		codes = append(codes, "3")
	}
	if entry.Underline == chroma.Yes {
		codes = append(codes, "4")
	}
	if len(codes) == 0 {
		b.WriteString(text)
		return
	}
	fmt.Fprintf(b, "\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), text)
}
