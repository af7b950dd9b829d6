package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/ez/internal/config"
	"github.com/you-not-fish/ez/internal/syntax"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		format     string
		showSource bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the syntax tree of a source file",
		Long: `Parses every top-level declaration of an ez source file and prints
the resulting syntax tree. Parsing stops at the first syntax error.

Output formats: text (default), json, yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				if !slices.Contains(config.ASTFormats, format) {
					return fmt.Errorf("invalid --format %q (want one of %s)", format, strings.Join(config.ASTFormats, ", "))
				}
				a.cfg.Output.ASTFormat = format
			}
			return a.runParse(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], showSource || a.cfg.Output.ShowSource)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json or yaml)")
	cmd.Flags().BoolVar(&showSource, "show-source", false, "Print the source text before the tree")
	return cmd
}

// runParse parses filename and prints the syntax tree.
func (a *app) runParse(w, errOut io.Writer, filename string, showSource bool) error {
	src, err := a.readSource(filename)
	if err != nil {
		return err
	}
	if showSource {
		printSource(w, src)
	}

	var diags []string
	p := syntax.NewParser(src, func(pos syntax.Pos, msg string) {
		diags = append(diags, fmt.Sprintf("%s:%s: %s", filename, pos, msg))
	})
	p.SetUnderscoreIdents(a.cfg.Lexer.UnderscoreIdents)

	block, err := p.ParseAll()

	// Print errors first
	for _, d := range diags {
		fmt.Fprintln(errOut, a.styles.failure.Render(d))
	}

	if err != nil {
		var serr *syntax.SyntaxError
		if !errors.As(err, &serr) {
			return err
		}
		fmt.Fprintln(errOut, a.styles.failure.Render(fmt.Sprintf("%s:%s", filename, serr)))
		a.logger.Warn("parse failed", "file", filename, "kind", serr.Kind.String(), "pos", serr.Tok.Pos.String())
		return errFailed
	}

	stats := collectStats(block)
	a.logger.Debug("parsed", "file", filename,
		"declarations", stats.declarations,
		"functions", stats.functions,
		"numbers", stats.numbers,
		"strings", stats.strings)

	if err := printTree(w, block, a.cfg.Output.ASTFormat); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}

	if len(diags) > 0 {
		return errFailed
	}
	return nil
}

// printTree writes block in the given output format.
func printTree(w io.Writer, block *syntax.Block, format string) error {
	switch format {
	case "json":
		return syntax.FprintJSON(w, block)
	case "yaml":
		return syntax.FprintYAML(w, block)
	default:
		syntax.Fprint(w, block)
		return nil
	}
}

// treeStats counts the nodes of a syntax tree by category.
type treeStats struct {
	declarations int
	functions    int
	numbers      int
	strings      int
}

func collectStats(root syntax.Node) treeStats {
	var s treeStats
	syntax.Inspect(root, func(n syntax.Node) bool {
		switch n.(type) {
		case *syntax.Declaration:
			s.declarations++
		case *syntax.FuncLit:
			s.functions++
		case *syntax.NumberLit:
			s.numbers++
		case *syntax.StringLit:
			s.strings++
		}
		return true
	})
	return s
}
