package parsing

import "fmt"

// SyntaxError is a structured parse failure reported by the parser.
// Line is 1-indexed; 0 means the parser did not report a position.
type SyntaxError struct {
	Source  string
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	where := "input"
	if e.Source != "" {
		where = e.Source
	}
	if e.Line > 0 {
		return fmt.Sprintf("syntax error in %s at line %d: %s", where, e.Line, e.Message)
	}
	return fmt.Sprintf("syntax error in %s: %s", where, e.Message)
}

// ParserError represents a parser failure that is not a syntax error,
// such as an unexpected internal condition. It is never reported as a KO.
type ParserError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ParserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parser error in %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("parser error in %s: %s", e.Source, e.Message)
}

func (e *ParserError) Unwrap() error {
	return e.Cause
}
