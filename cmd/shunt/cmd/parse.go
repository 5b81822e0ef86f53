package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolkov/shunt"
)

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [expression ...]",
		Short: "Parse expressions and print their syntax trees",
		Long: `Parse each expression argument and print its syntax tree.

With no arguments, expressions are read from standard input, one per line;
blank lines are skipped. Parsing stops at the first invalid expression.`,
		Example: `  shunt parse "3+4*5"
  shunt parse --format infix "2 ^ 3 ^ 4" "log ( x + 1 )"
  echo "-5!" | shunt parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTree, "output format: tree or infix")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "nesting limit (0 for default, negative for none)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print the token stream before each result")
	return cmd
}

// resolve merges the config file into opts; flags set on the command
// line take precedence.
func (opts *options) resolve(cmd *cobra.Command) error {
	if opts.configFile != "" {
		cfg, err := loadConfig(opts.configFile)
		if err != nil {
			return err
		}
		if cfg.Format != "" && !cmd.Flags().Changed("format") {
			opts.format = cfg.Format
		}
		if cfg.MaxDepth != nil && !cmd.Flags().Changed("max-depth") {
			opts.maxDepth = *cfg.MaxDepth
		}
	}
	return validateFormat(opts.format)
}

func runParse(cmd *cobra.Command, opts *options, args []string) error {
	if err := opts.resolve(cmd); err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	config := &shunt.Config{MaxDepth: opts.maxDepth}

	parseOne := func(src string) error {
		if opts.verbose {
			// Lexical errors are reported by the parse below.
			_ = printTokens(out, src)
		}
		expr, err := shunt.ParseWithConfig(src, config)
		if err != nil {
			printError(errOut, src, err)
			return err
		}
		return writeExpr(out, expr, opts.format)
	}

	if len(args) > 0 {
		for _, src := range args {
			if err := parseOne(src); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parseOne(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func writeExpr(w io.Writer, expr shunt.Expr, format string) error {
	var err error
	if format == formatInfix {
		_, err = fmt.Fprintln(w, shunt.FormatInfix(expr))
	} else {
		_, err = io.WriteString(w, shunt.FormatTree(expr))
	}
	return err
}
