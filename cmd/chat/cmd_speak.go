package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KunitakeHyuga/Hackathon/internal/transport/cli"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Synthesize text with VOICEVOX and save it as WAV",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSpeak,
}

func init() {
	speakCmd.Flags().StringP("out", "o", "", "Output file (default: timestamped file in audio_dir)")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	audio, err := client.Orchestrator.Speak(cmd.Context(), text, client.Orchestrator.Snapshot().Dialect)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("out")
	if path != "" {
		err = os.WriteFile(path, audio, 0o644)
	} else {
		path, err = cli.SaveAudio(client.Config.Chat.AudioDir, audio, time.Now())
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "音声を保存しました: %s\n", path)
	return nil
}
