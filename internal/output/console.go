package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

var (
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgWhite, color.BgRed)
)

// Console writes lines to an io.Writer, decorating styled spans with ANSI
// colors when styling is enabled.
type Console struct {
	out    io.Writer
	styled bool
}

// NewConsole creates a Console. With styled set to false every span is
// written as plain text.
func NewConsole(out io.Writer, styled bool) *Console {
	return &Console{out: out, styled: styled}
}

// Writeln writes the spans followed by a newline.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (c *Console) Writeln(spans ...Span) {
	if !c.styled {
		fmt.Fprintln(c.out, plainText(spans))
		return
	}

	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(c.render(span))
	}
	fmt.Fprintln(c.out, sb.String())
}

func (c *Console) render(span Span) string {
	switch span.Style {
	case Success:
		return successStyle.Sprint(span.Text)
	case Error:
		return errorStyle.Sprint(span.Text)
	default:
		return span.Text
	}
}
