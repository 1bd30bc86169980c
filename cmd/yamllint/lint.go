package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/yamllint/internal/config"
	"github.com/jonathan/yamllint/internal/input"
	"github.com/jonathan/yamllint/internal/lint"
	"github.com/jonathan/yamllint/internal/logging"
	"github.com/jonathan/yamllint/internal/output"
	"github.com/jonathan/yamllint/internal/parsing"
	"github.com/jonathan/yamllint/internal/resources"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type lintOptions struct {
	configPath string
	envFile    string
	pattern    string
	resources  []string
	logLevel   string
	noColor    bool
}

func newLintCmd() *cobra.Command {
	opts := &lintOptions{}

	lintCmd := &cobra.Command{
		Use:     "lint [filename]",
		Aliases: []string{"yaml:lint"},
		Short:   "Lint a YAML file, a directory or standard input",
		Long: `Checks YAML syntax and reports the first error of each input with the surrounding lines.

filename may be a file, a directory (every file matching --pattern is checked
recursively), or a resource alias such as @App or @App/config/routing that
is resolved through the configured resources. Without filename, content is
read from standard input:

  yamllint lint < config.yml
  cat config.yml | yamllint lint

The exit code is 0 when every input is valid and 1 otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args)
		},
	}

	lintCmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.json file (defaults to YAMLLINT_CONFIG env var)")
	lintCmd.Flags().StringVar(&opts.envFile, "env-file", "", "Read YAMLLINT_* settings from a .env file; process environment wins")
	lintCmd.Flags().StringVar(&opts.pattern, "pattern", "", "File name glob for directory mode (default \"*.yml\")")
	lintCmd.Flags().StringSliceVar(&opts.resources, "resource", nil, "Resource alias NAME=DIR (repeatable)")
	lintCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (default \"warn\")")
	lintCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	return lintCmd
}

func runLint(cmd *cobra.Command, opts *lintOptions, args []string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr(), !cfg.NoColor && isTerminal(cmd.ErrOrStderr()))
	locator := resources.NewMap(cfg.Resources)
	logger.Debug().Str("pattern", cfg.Pattern).Strs("resources", locator.Names()).Msg("configuration resolved")

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	resolver := input.NewResolver(input.Options{
		Stdin:   cmd.InOrStdin(),
		Locator: locator,
		Pattern: cfg.Pattern,
		Logger:  &logger,
	})

	inputs, err := resolver.Resolve(arg)
	if err != nil {
		return err
	}

	sink := output.NewConsole(cmd.OutOrStdout(), !cfg.NoColor && isTerminal(cmd.OutOrStdout()))
	validator := lint.NewValidator(parsing.NewYAMLParser(), sink, &logger)

	result, err := lint.Run(inputs, validator)
	if err != nil {
		return err
	}

	if code := result.ExitCode(); code != lint.ExitSuccess {
		return &ExitError{Code: code}
	}
	return nil
}

// resolveConfig layers defaults, the config file, environment variables and
// explicitly set flags, in increasing priority.
func resolveConfig(cmd *cobra.Command, opts *lintOptions) (config.Config, error) {
	var cfg config.Config

	lookup := os.LookupEnv
	if opts.envFile != "" {
		fileEnv, err := godotenv.Read(opts.envFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to read env file: %w", err)
		}
		lookup = withFallback(os.LookupEnv, fileEnv)
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath, _ = lookup(config.EnvConfig)
	}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return config.Config{}, err
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = opts.pattern
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if cmd.Flags().Changed("resource") {
		flagResources, err := config.ParseResources(opts.resources)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --resource: %w", err)
		}
		cfg.AddResources(flagResources)
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// withFallback looks keys up with primary first, then in values.
func withFallback(primary func(string) (string, bool), values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
