// Package parsing defines the parser contract used by the linter and its
// YAML implementation backed by gopkg.in/yaml.v3.
package parsing

// Parser checks the syntax of one input.
//
// A syntax failure is reported through the returned Outcome. A non-nil error
// means something other than a syntax error went wrong; callers treat it as
// fatal.
type Parser interface {
	Parse(content []byte, source string) (Outcome, error)
}

// Outcome is the result of parsing one input. The zero value is a success.
type Outcome struct {
	Failure *SyntaxError
}

// OK reports whether the input parsed without a syntax error.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

// Success returns a successful Outcome.
func Success() Outcome {
	return Outcome{}
}

// Failed returns an Outcome carrying a syntax failure.
func Failed(source string, line int, message string) Outcome {
	return Outcome{Failure: &SyntaxError{Source: source, Line: line, Message: message}}
}
