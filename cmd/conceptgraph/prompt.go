package main

import (
	"fmt"

	"github.com/agenthands/conceptgraph/internal/core/prompt"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [file]",
	Short: "Print the prompt that would be sent, without calling a provider",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		p := prompt.Build(text)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# language: %s\n\n", p.Language)
		fmt.Fprintf(out, "# system\n%s\n\n", p.System)
		fmt.Fprintf(out, "# user\n%s\n", p.User)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
