// Package input resolves the command argument into the inputs to lint:
// standard input, a single file, every matching file under a directory, or a
// directory named by a resource alias.
package input

import (
	"io"
	"iter"
	"os"

	"github.com/jonathan/yamllint/internal/resources"
	"github.com/rs/zerolog"
)

// Input is one unit of content to validate. Source is empty for standard
// input.
type Input struct {
	Content []byte
	Source  string
}

// Options configures a Resolver. Zero values select defaults.
type Options struct {
	Stdin   io.Reader
	Probe   TerminalProbe
	Locator resources.Locator
	Pattern string
	Logger  *zerolog.Logger
}

// Resolver turns a path, alias or nothing at all into a sequence of inputs.
type Resolver struct {
	stdin   io.Reader
	probe   TerminalProbe
	locator resources.Locator
	pattern string
	logger  *zerolog.Logger
}

// NewResolver creates a Resolver from opts.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		stdin:   opts.Stdin,
		probe:   opts.Probe,
		locator: opts.Locator,
		pattern: opts.Pattern,
		logger:  opts.Logger,
	}
	if r.stdin == nil {
		r.stdin = os.Stdin
	}
	if r.probe == nil {
		r.probe = IsInteractive
	}
	if r.pattern == "" {
		r.pattern = DefaultPattern
	}
	if r.logger == nil {
		nop := zerolog.Nop()
		r.logger = &nop
	}
	return r
}

// Resolve returns the inputs named by arg.
//
// Errors that prevent any validation (usage, unreadable path, unknown alias)
// are returned immediately. The sequence reads content lazily, can be
// iterated only once, and yields a non-nil error if a file disappears
// between enumeration and reading.
func (r *Resolver) Resolve(arg string) (iter.Seq2[Input, error], error) {
	if arg == "" {
		return r.fromStdin()
	}

	if resources.IsAlias(arg) {
		return r.fromAlias(arg)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return nil, &UnreadablePathError{Path: arg, Cause: err}
	}
	if err := checkReadable(arg); err != nil {
		return nil, &UnreadablePathError{Path: arg, Cause: err}
	}

	if info.IsDir() {
		return r.fromDirectory(arg)
	}

	r.logger.Debug().Str("path", arg).Msg("resolved single file")
	return r.fromFiles([]string{arg}), nil
}

func (r *Resolver) fromStdin() (iter.Seq2[Input, error], error) {
	if r.probe(r.stdin) {
		return nil, &UsageError{Message: "please provide a filename or pipe file content to standard input"}
	}

	r.logger.Debug().Msg("reading from standard input")
	return once(func(yield func(Input, error) bool) {
		content, err := io.ReadAll(r.stdin)
		if err != nil {
			yield(Input{}, &UnreadablePathError{Path: "(stdin)", Cause: err})
			return
		}
		yield(Input{Content: content}, nil)
	}), nil
}

func (r *Resolver) fromAlias(alias string) (iter.Seq2[Input, error], error) {
	if r.locator == nil {
		return nil, &ResourceNotFoundError{Alias: alias}
	}

	dir, err := r.locator.Locate(alias)
	if err != nil {
		return nil, &ResourceNotFoundError{Alias: alias, Cause: err}
	}
	r.logger.Debug().Str("alias", alias).Str("dir", dir).Msg("resolved resource alias")

	if err := checkReadable(dir); err != nil {
		return nil, &UnreadablePathError{Path: dir, Cause: err}
	}
	return r.fromDirectory(dir)
}

func (r *Resolver) fromDirectory(dir string) (iter.Seq2[Input, error], error) {
	paths, err := FindFiles(dir, r.pattern)
	if err != nil {
		return nil, &UnreadablePathError{Path: dir, Cause: err}
	}

	r.logger.Debug().Str("dir", dir).Str("pattern", r.pattern).Int("files", len(paths)).Msg("enumerated directory")
	return r.fromFiles(paths), nil
}

func (r *Resolver) fromFiles(paths []string) iter.Seq2[Input, error] {
	return once(func(yield func(Input, error) bool) {
		for _, path := range paths {
			content, err := os.ReadFile(path)
			if err != nil {
				yield(Input{}, &UnreadablePathError{Path: path, Cause: err})
				return
			}
			if !yield(Input{Content: content, Source: path}, nil) {
				return
			}
		}
	})
}

// checkReadable opens and immediately closes path.
func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// once wraps seq so that only the first iteration produces values.
func once(seq iter.Seq2[Input, error]) iter.Seq2[Input, error] {
	used := false
	return func(yield func(Input, error) bool) {
		if used {
			return
		}
		used = true
		seq(yield)
	}
}
