// Command chat is an interactive terminal client for the dialect translator.
// Without a subcommand it starts a chat session; subcommands manage stored
// conversations and history directly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KunitakeHyuga/Hackathon/internal/app"
	"github.com/KunitakeHyuga/Hackathon/internal/config"
	"github.com/KunitakeHyuga/Hackathon/internal/transport/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Translate between standard Japanese and regional dialects",
	Long: `chat translates text between standard Japanese and a regional dialect
and keeps the exchanges in conversations stored by the history backend.

Configuration is read from CHAT_CONFIG_PATH (default ./chat.yaml) and the
environment (TRANSLATOR_PROVIDER, TRANSLATOR_API_KEY, STORE_BASE_URL, ...).

Examples:
  chat                                 # interactive session
  chat conversations list
  chat conversations rename 5 旅行の話
  chat history --conversation 5
  chat speak おおきに`,
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.AddCommand(conversationsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(dialectsCmd)

	rootCmd.PersistentFlags().String("dialect", "", "Dialect for this run (label or romanized name)")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}

	repl := cli.NewREPL(client.Logger, client.Orchestrator, client.Manager, cmd.InOrStdin(), cmd.OutOrStdout(), client.Config.Chat.AudioDir)
	return repl.Run(cmd.Context())
}

// loadClient reads the client configuration and applies the --dialect flag.
func loadClient(cmd *cobra.Command) (*app.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if d, _ := cmd.Flags().GetString("dialect"); d != "" {
		cfg.Chat.DefaultDialect = d
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, closeLog, err := app.NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	cobra.OnFinalize(func() { _ = closeLog() })

	return app.NewClient(cfg, logger)
}
