package lint

import (
	"iter"

	"github.com/jonathan/yamllint/internal/input"
)

// Exit codes of a lint run.
const (
	// ExitSuccess means every input parsed.
	ExitSuccess = 0
	// ExitFailure means at least one input had a syntax error, or the run
	// aborted on a fatal error.
	ExitFailure = 1
)

// Result aggregates the outcome of one run.
type Result struct {
	Total    int
	Failures int
}

// ExitCode maps the result to the process exit code.
func (r Result) ExitCode() int {
	if r.Failures > 0 {
		return ExitFailure
	}
	return ExitSuccess
}

// Run validates every input in order. A resolver or parser error aborts the
// run and is returned along with the result accumulated so far.
func Run(inputs iter.Seq2[input.Input, error], v *Validator) (Result, error) {
	var result Result

	for in, err := range inputs {
		if err != nil {
			return result, err
		}

		ok, err := v.Validate(in.Content, in.Source)
		if err != nil {
			return result, err
		}

		result.Total++
		if !ok {
			result.Failures++
		}
	}

	v.logger.Info().Int("total", result.Total).Int("failures", result.Failures).Msg("lint finished")
	return result, nil
}
