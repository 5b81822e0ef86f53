package cmd

import (
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens expression",
		Short: "Print the token stream of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := printTokens(cmd.OutOrStdout(), args[0]); err != nil {
				printError(cmd.ErrOrStderr(), args[0], err)
				return err
			}
			return nil
		},
	}
}
