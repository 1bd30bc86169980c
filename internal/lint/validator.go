// Package lint validates inputs with a parser, renders OK/KO reports with a
// window of source context, and aggregates failures into an exit code.
package lint

import (
	"fmt"

	"github.com/jonathan/yamllint/internal/output"
	"github.com/jonathan/yamllint/internal/parsing"
	"github.com/rs/zerolog"
)

// Validator parses inputs and reports each result to a sink. It keeps a
// running count of syntax failures.
type Validator struct {
	parser   parsing.Parser
	sink     output.Sink
	logger   *zerolog.Logger
	failures int
}

// NewValidator creates a Validator. A nil logger disables logging.
func NewValidator(parser parsing.Parser, sink output.Sink, logger *zerolog.Logger) *Validator {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Validator{parser: parser, sink: sink, logger: logger}
}

// Failures returns the number of syntax failures reported so far.
func (v *Validator) Failures() int {
	return v.failures
}

// Validate parses content and writes an OK line or a KO block. It reports
// whether the content is valid. A non-nil error is a non-syntax parser
// failure; nothing is written and the counter is unchanged in that case.
func (v *Validator) Validate(content []byte, source string) (bool, error) {
	outcome, err := v.parser.Parse(content, source)
	if err != nil {
		return false, err
	}

	if outcome.OK() {
		v.logger.Debug().Str("source", source).Msg("input is valid")
		v.writeOK(source)
		return true, nil
	}

	failure := outcome.Failure
	v.logger.Debug().Str("source", source).Int("line", failure.Line).Str("message", failure.Message).Msg("syntax error")
	v.writeKO(source, failure.Line)
	v.writeContext(string(content), failure)
	v.failures++
	return false, nil
}

func (v *Validator) writeOK(source string) {
	if source == "" {
		v.sink.Writeln(output.Styled(output.Success, "OK"))
		return
	}
	v.sink.Writeln(output.Styled(output.Success, "OK"), output.Text(" in "+source))
}

func (v *Validator) writeKO(source string, line int) {
	if source == "" {
		v.sink.Writeln(output.Styled(output.Error, "KO"), output.Text(fmt.Sprintf(" (line %d)", line)))
		return
	}
	v.sink.Writeln(output.Styled(output.Error, "KO"), output.Text(fmt.Sprintf(" in %s (line %d)", source, line)))
}

// writeContext renders the context window. The parser message follows the
// row of the failing line and is omitted when that row is not in the window.
func (v *Validator) writeContext(content string, failure *parsing.SyntaxError) {
	for _, line := range ContextWindow(content, failure.Line, ContextRadius) {
		current := line.Number == failure.Line

		marker := output.Text("  ")
		if current {
			marker = output.Styled(output.Error, ">>")
		}
		v.sink.Writeln(marker, output.Text(fmt.Sprintf(" %-6d %s", line.Number, line.Text)))

		if current {
			v.sink.Writeln(output.Styled(output.Error, fmt.Sprintf(">> %s ", failure.Message)))
		}
	}
}
