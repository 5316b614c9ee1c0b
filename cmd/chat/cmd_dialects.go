package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List supported dialects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range domain.Dialects() {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		return nil
	},
}
