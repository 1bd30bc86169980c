package lint

import "strings"

// ContextRadius is the number of lines around a failing line that drive the
// size of the rendered context window.
const ContextRadius = 3

// Line is one numbered source line.
type Line struct {
	Number int // 1-indexed
	Text   string
}

// ContextWindow returns the lines shown around the 1-indexed line number.
//
// Content is split on "\n" only; carriage returns stay in the line text. The
// window covers positions [max(0, line-radius), min(total, line-1+radius))
// and is empty when that range is empty, which happens for line numbers
// outside the content.
func ContextWindow(content string, line int, radius int) []Line {
	lines := strings.Split(content, "\n")

	start := max(0, line-radius)
	end := min(len(lines), line-1+radius)

	if start >= end {
		return nil
	}

	window := make([]Line, 0, end-start)
	for p := start; p < end; p++ {
		window = append(window, Line{Number: p + 1, Text: lines[p]})
	}
	return window
}
