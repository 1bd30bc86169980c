// Package output provides line-oriented, styled writers for lint reports.
package output

import "strings"

// Style is a semantic text style.
type Style int

const (
	// Plain text, never decorated.
	Plain Style = iota
	// Success marks passing results.
	Success
	// Error marks failures, context markers and parser messages.
	Error
)

// String returns the tag name used by the in-memory sink.
func (s Style) String() string {
	switch s {
	case Success:
		return "info"
	case Error:
		return "error"
	default:
		return "plain"
	}
}

// Span is a run of text rendered with one style.
type Span struct {
	Text  string
	Style Style
}

// Text returns an unstyled span.
func Text(s string) Span {
	return Span{Text: s, Style: Plain}
}

// Styled returns a span with the given style.
func Styled(style Style, s string) Span {
	return Span{Text: s, Style: style}
}

// Sink receives complete lines made of styled spans.
type Sink interface {
	Writeln(spans ...Span)
}

// plainText joins span text without decoration.
func plainText(spans []Span) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}
