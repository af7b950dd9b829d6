// Package cmd implements the ezc command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/ez/internal/config"
)

// errFailed is returned after diagnostics have already been printed.
var errFailed = errors.New("errors reported")

// app holds the state shared by the commands of one invocation.
type app struct {
	// Persistent flags
	cfgFile          string
	verbose          bool
	noColor          bool
	underscoreIdents bool

	// Set up before any command runs
	cfg    *config.Config
	logger *slog.Logger
	styles *styles
}

// NewRootCmd builds the ezc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ezc",
		Short: "ez language front end",
		Long: `ezc runs the front end of the ez language on a source file.

Commands:
  tokens   - print the token stream
  parse    - print the syntax tree
  version  - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: $EZC_CONFIG, ./ezc.toml, ./ezc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&a.underscoreIdents, "underscore-idents", false, "Let '_' continue identifiers")

	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the ezc command tree on the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// setup loads the configuration, applies flag overrides and builds the
// logger and styles.
func (a *app) setup(logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.noColor {
		cfg.Output.NoColor = true
	}
	if a.underscoreIdents {
		cfg.Lexer.UnderscoreIdents = true
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := newLogger(logOut, cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.styles = newStyles(cfg.Output.NoColor)

	source := cfg.Path
	if source == "" {
		source = "defaults"
	}
	a.logger.Debug("config loaded", "source", source, "ast_format", cfg.Output.ASTFormat, "underscore_idents", cfg.Lexer.UnderscoreIdents)
	return nil
}

// newLogger creates the structured logger for the driver.
func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// readSource loads a source file for the front end.
func (a *app) readSource(filename string) (string, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}
	a.logger.Debug("source loaded", "file", filename, "bytes", len(src))
	return string(src), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
