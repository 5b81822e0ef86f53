// Package cmd implements the shunt command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kolkov/shunt"
)

// options holds the command line flags.
type options struct {
	configFile string
	format     string
	maxDepth   int
	noColor    bool
	verbose    bool
}

// Execute runs the root command with the process arguments. An empty
// version falls back to shunt.Version.
func Execute(version string) error {
	return execute(newRootCmd(version))
}

// execute runs root and reports errors that were not already printed
// with their source line.
func execute(root *cobra.Command) error {
	err := root.Execute()
	var pe *shunt.ParseError
	if err != nil && !errors.As(err, &pe) {
		fmt.Fprintf(root.ErrOrStderr(), "%s %v\n", errorLabel.Sprint("error:"), err)
	}
	return err
}

func newRootCmd(version string) *cobra.Command {
	if version == "" {
		version = shunt.Version
	}
	opts := &options{}
	root := &cobra.Command{
		Use:   "shunt",
		Short: "Parse infix arithmetic expressions",
		Long: `shunt parses arithmetic expressions into syntax trees.

Expressions use numbers, identifiers, the binary operators + - * / ^,
prefix minus, postfix factorial (!), parentheses and calls like log(x).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "TOML config file")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(newParseCmd(opts), newTokensCmd())
	return root
}

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgGreen, color.Bold)
)

// printError reports err for src, pointing at the failing position when
// the error carries one.
func printError(w io.Writer, src string, err error) {
	fmt.Fprintf(w, "%s %v\n", errorLabel.Sprint("error:"), err)

	var pe *shunt.ParseError
	if !errors.As(err, &pe) || pe.Pos < 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", src)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pe.Pos), caretColor.Sprint("^"))
}

// printTokens writes one line per token of src.
func printTokens(w io.Writer, src string) error {
	toks, err := shunt.Tokenize(src)
	for _, tok := range toks {
		fmt.Fprintf(w, "%3d: %-10s %s\n", int(tok.Pos), tok.Type, tok.Value)
	}
	return err
}
