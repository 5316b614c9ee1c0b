package main

import (
	"github.com/spf13/cobra"

	"github.com/KunitakeHyuga/Hackathon/internal/transport/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show translation history",
	Long:  `Show all history newest first, or one conversation's history oldest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int64P("conversation", "c", 0, "Only show this conversation")
}

func runHistory(cmd *cobra.Command, args []string) error {
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}

	var scope *int64
	if id, _ := cmd.Flags().GetInt64("conversation"); id > 0 {
		scope = &id
	}

	entries, err := client.Store.ListHistory(cmd.Context(), scope)
	if err != nil {
		return err
	}
	cli.PrintHistory(cmd.OutOrStdout(), entries)
	return nil
}
