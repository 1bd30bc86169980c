package parsing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLParser_ValidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"mapping", "a: 1\nb: 2\n"},
		{"empty", ""},
		{"comment only", "# nothing here\n"},
		{"flow sequence", "a: [1, 2, 3]\n"},
		{"multi document", "a: 1\n---\nb: 2\n"},
		{"carriage returns", "a: 1\r\nb: 2\r\n"},
	}

	p := NewYAMLParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := p.Parse([]byte(tt.content), "test.yml")
			require.NoError(t, err)
			assert.True(t, outcome.OK())
			assert.Nil(t, outcome.Failure)
		})
	}
}

func TestYAMLParser_UnterminatedFlowSequence(t *testing.T) {
	p := NewYAMLParser()

	outcome, err := p.Parse([]byte("a: 1\nb: [1,2\n"), "bad.yml")
	require.NoError(t, err)
	require.False(t, outcome.OK())

	failure := outcome.Failure
	assert.Equal(t, "bad.yml", failure.Source)
	assert.GreaterOrEqual(t, failure.Line, 1)
	assert.LessOrEqual(t, failure.Line, 3)
	assert.NotEmpty(t, failure.Message)
	assert.NotContains(t, failure.Message, "yaml: ")
}

func TestYAMLParser_ErrorInLaterDocument(t *testing.T) {
	p := NewYAMLParser()

	content := "a: 1\n---\nb: 2\n---\nc: [\n"
	outcome, err := p.Parse([]byte(content), "")
	require.NoError(t, err)
	require.False(t, outcome.OK())
	assert.GreaterOrEqual(t, outcome.Failure.Line, 4)
	assert.Empty(t, outcome.Failure.Source)
}

func TestYAMLParser_BadIndentation(t *testing.T) {
	p := NewYAMLParser()

	outcome, err := p.Parse([]byte("a:\n  b: 1\n c: 2\n"), "indent.yml")
	require.NoError(t, err)
	require.False(t, outcome.OK())
	assert.Greater(t, outcome.Failure.Line, 0)
}

func TestYAMLParser_ErrorOnFirstLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"nested mapping value", "a: b: c\n"},
		{"followed by valid lines", "key: value: x\nb: 2\n"},
		{"leading tab", "\tx: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := NewYAMLParser().Parse([]byte(tt.content), "first.yml")
			require.NoError(t, err)
			require.NotNil(t, outcome.Failure)
			assert.Equal(t, 1, outcome.Failure.Line)
			assert.NotEmpty(t, outcome.Failure.Message)
		})
	}
}

func TestYAMLParser_ControlCharacter(t *testing.T) {
	outcome, err := NewYAMLParser().Parse([]byte("a: \x01\n"), "ctl.yml")
	require.NoError(t, err)
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, 0, outcome.Failure.Line)
	assert.Equal(t, "control characters are not allowed", outcome.Failure.Message)
}

func TestClassify(t *testing.T) {
	t.Run("line prefixed", func(t *testing.T) {
		outcome, err := classify(errors.New("yaml: line 7: mapping values are not allowed in this context"), "x.yml")
		require.NoError(t, err)
		require.NotNil(t, outcome.Failure)
		assert.Equal(t, 7, outcome.Failure.Line)
		assert.Equal(t, "mapping values are not allowed in this context", outcome.Failure.Message)
	})

	t.Run("no position from the scanner", func(t *testing.T) {
		outcome, err := classify(errors.New("yaml: mapping values are not allowed in this context"), "x.yml")
		require.NoError(t, err)
		require.NotNil(t, outcome.Failure)
		assert.Equal(t, 1, outcome.Failure.Line)
		assert.Equal(t, "mapping values are not allowed in this context", outcome.Failure.Message)
	})

	t.Run("no position from the reader", func(t *testing.T) {
		for _, msg := range []string{
			"yaml: control characters are not allowed",
			"yaml: invalid leading UTF-8 octet",
			"yaml: input error: unexpected EOF",
		} {
			outcome, err := classify(errors.New(msg), "x.yml")
			require.NoError(t, err, msg)
			require.NotNil(t, outcome.Failure, msg)
			assert.Equal(t, 0, outcome.Failure.Line, msg)
			assert.Equal(t, strings.TrimPrefix(msg, "yaml: "), outcome.Failure.Message)
		}
	})

	t.Run("foreign error", func(t *testing.T) {
		cause := errors.New("disk on fire")
		outcome, err := classify(cause, "x.yml")
		require.Error(t, err)
		assert.True(t, outcome.OK())

		var parserErr *ParserError
		require.True(t, errors.As(err, &parserErr))
		assert.ErrorIs(t, err, cause)
	})
}

func TestSyntaxError_Error(t *testing.T) {
	err := &SyntaxError{Source: "a.yml", Line: 3, Message: "boom"}
	assert.Equal(t, "syntax error in a.yml at line 3: boom", err.Error())

	err = &SyntaxError{Message: "boom"}
	assert.Equal(t, "syntax error in input: boom", err.Error())
}
