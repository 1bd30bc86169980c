package output

import (
	"fmt"
	"strings"
)

// Memory records lines in memory.
type Memory struct {
	lines  []string
	tagged []string
}

// NewMemory creates an empty Memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Writeln records the spans as one line.
func (m *Memory) Writeln(spans ...Span) {
	m.lines = append(m.lines, plainText(spans))

	var sb strings.Builder
	for _, span := range spans {
		if span.Style == Plain {
			sb.WriteString(span.Text)
			continue
		}
		fmt.Fprintf(&sb, "<%s>%s</%s>", span.Style, span.Text, span.Style)
	}
	m.tagged = append(m.tagged, sb.String())
}

// Lines returns the recorded lines without styling.
func (m *Memory) Lines() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// Tagged returns the recorded lines with styled spans wrapped in tags such
// as <error>KO</error>.
func (m *Memory) Tagged() []string {
	out := make([]string, len(m.tagged))
	copy(out, m.tagged)
	return out
}
