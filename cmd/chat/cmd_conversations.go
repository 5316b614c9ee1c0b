package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KunitakeHyuga/Hackathon/internal/transport/cli"
)

var conversationsCmd = &cobra.Command{
	Use:     "conversations",
	Aliases: []string{"conv"},
	Short:   "Manage stored conversations",
}

var conversationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations, newest first",
	Args:  cobra.NoArgs,
	RunE:  runConversationsList,
}

var conversationsRenameCmd = &cobra.Command{
	Use:   "rename <id> <title>",
	Short: "Rename a conversation",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runConversationsRename,
}

var conversationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a conversation and all of its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runConversationsDelete,
}

func init() {
	conversationsCmd.AddCommand(conversationsListCmd)
	conversationsCmd.AddCommand(conversationsRenameCmd)
	conversationsCmd.AddCommand(conversationsDeleteCmd)

	conversationsDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

func runConversationsList(cmd *cobra.Command, args []string) error {
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}
	convs, err := client.Store.ListConversations(cmd.Context())
	if err != nil {
		return err
	}
	cli.PrintConversations(cmd.OutOrStdout(), convs, 0)
	return nil
}

func runConversationsRename(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}
	conv, err := client.Manager.Rename(cmd.Context(), id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "会話 %d の名前を「%s」に変更しました。\n", conv.ID, conv.DisplayTitle())
	return nil
}

func runConversationsDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Fprintf(cmd.OutOrStdout(), "会話 %d とそのすべての翻訳履歴を削除します。よろしいですか？ [y/N] ", id)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "キャンセルしました。")
			return nil
		}
	}

	client, err := loadClient(cmd)
	if err != nil {
		return err
	}
	if err := client.Manager.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "会話 %d を削除しました。\n", id)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid conversation id %q", s)
	}
	return id, nil
}
