package parsing

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// yaml.v3 prefixes every syntax error with "yaml: " and, when it knows the
// position, with "line N: ".
const yamlErrorPrefix = "yaml: "

var lineErrorPattern = regexp.MustCompile(`^yaml: line (\d+): ((?s:.*))$`)

// Problems raised while decoding the byte stream, before any token exists.
// They carry no position, so they are reported at line 0.
var readerProblems = []string{
	"input error",
	"incomplete UTF-8 octet sequence",
	"invalid leading UTF-8 octet",
	"invalid length of a UTF-8 sequence",
	"invalid trailing UTF-8 octet",
	"invalid Unicode character",
	"incomplete UTF-16 character",
	"unexpected low surrogate area",
	"incomplete UTF-16 surrogate pair",
	"expected low surrogate area",
	"control characters are not allowed",
}

// YAMLParser parses every document of a YAML stream into yaml.Node trees.
type YAMLParser struct{}

// NewYAMLParser creates a parser backed by gopkg.in/yaml.v3.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse tokenizes the content and parses each document until the end of the
// stream or the first syntax error.
func (p *YAMLParser) Parse(content []byte, source string) (Outcome, error) {
	dec := p.tokenize(content)

	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return Success(), nil
		}
		if err != nil {
			return classify(err, source)
		}
	}
}

func (p *YAMLParser) tokenize(content []byte) *yaml.Decoder {
	return yaml.NewDecoder(bytes.NewReader(content))
}

// classify turns a yaml.v3 error into a syntax Outcome, or returns it as a
// ParserError when it is not a syntax error.
func classify(err error, source string) (Outcome, error) {
	msg := err.Error()

	if m := lineErrorPattern.FindStringSubmatch(msg); m != nil {
		line, convErr := strconv.Atoi(m[1])
		if convErr != nil {
			return Outcome{}, &ParserError{Source: source, Message: "malformed line number", Cause: err}
		}
		return Failed(source, line, m[2]), nil
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return Outcome{}, &ParserError{Source: source, Message: "unexpected decode error", Cause: err}
	}

	if strings.HasPrefix(msg, yamlErrorPrefix) {
		problem := strings.TrimPrefix(msg, yamlErrorPrefix)
		if isReaderProblem(problem) {
			return Failed(source, 0, problem), nil
		}
		// yaml.v3 drops the position when its zero-based mark is on the
		// first line.
		return Failed(source, 1, problem), nil
	}

	return Outcome{}, &ParserError{Source: source, Message: "unexpected failure", Cause: err}
}

func isReaderProblem(problem string) bool {
	for _, prefix := range readerProblems {
		if strings.HasPrefix(problem, prefix) {
			return true
		}
	}
	return false
}
