package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/ez/internal/syntax"
)

// Column widths of the token table
const (
	posWidth  = 12
	kindWidth = 16
)

func newTokensCmd(a *app) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a source file",
		Long: `Tokenizes an ez source file and prints every token with its position.

Lexical diagnostics (unterminated strings, unrecognized input) are listed
after the table and make the command fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd.OutOrStdout(), args[0], showSource || a.cfg.Output.ShowSource)
		},
	}

	cmd.Flags().BoolVar(&showSource, "show-source", false, "Print the source text before the tokens")
	return cmd
}

// runTokens tokenizes filename and prints all tokens with positions.
func (a *app) runTokens(w io.Writer, filename string, showSource bool) error {
	src, err := a.readSource(filename)
	if err != nil {
		return err
	}
	if showSource {
		printSource(w, src)
	}

	var diags []string
	tz := syntax.NewTokenizer(src, func(pos syntax.Pos, msg string) {
		diags = append(diags, fmt.Sprintf("%s:%s: %s", filename, pos, msg))
	})
	tz.SetUnderscoreIdents(a.cfg.Lexer.UnderscoreIdents)

	st := a.styles

	// Print header
	fmt.Fprintf(w, "%s %s %s\n",
		pad(st.header, "POSITION", posWidth), pad(st.header, "TOKEN", kindWidth), st.header.Render("TEXT"))
	fmt.Fprintln(w, st.muted.Render(strings.Repeat("-", posWidth+kindWidth+22)))

	count := 0
	for {
		tok, ok := tz.Tokenize()
		if !ok {
			break
		}
		count++

		fmt.Fprintf(w, "%s %s %s\n",
			pad(st.muted, tok.Pos.String(), posWidth),
			pad(st.kind(tok.Kind), tok.Kind.String(), kindWidth),
			formatText(tok.Text))
	}

	a.logger.Debug("tokenized", "file", filename, "tokens", count, "diagnostics", len(diags))

	// Print any errors
	if len(diags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.header.Render("Errors:"))
		for _, d := range diags {
			fmt.Fprintf(w, "  %s\n", st.failure.Render(d))
		}
		a.logger.Warn("lexical errors", "file", filename, "count", len(diags))
		return errFailed
	}

	return nil
}

// formatText quotes token text for display, making newlines, tabs and
// invalid bytes visible.
func formatText(text string) string {
	return strconv.Quote(text)
}

// printSource echoes the source text followed by a blank line.
func printSource(w io.Writer, src string) {
	fmt.Fprint(w, src)
	if !strings.HasSuffix(src, "\n") {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
