// Package cli renders a chat session on a terminal.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// DirectionLabel renders a direction for display, e.g. "標準語 → 関西弁".
func DirectionLabel(dialect domain.Dialect, dir domain.Direction) string {
	if dir == domain.DirectionDialectToStandard {
		return fmt.Sprintf("%s → 標準語", dialect)
	}
	return fmt.Sprintf("標準語 → %s", dialect)
}

// PrintConversations writes one row per conversation. The row whose id
// equals selected is marked with "*".
func PrintConversations(w io.Writer, convs []domain.Conversation, selected int64) {
	if len(convs) == 0 {
		fmt.Fprintln(w, "会話はまだありません。")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range convs {
		mark := " "
		if c.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", mark, c.ID, c.DisplayTitle(), c.CreatedAt.Local().Format(timeLayout))
	}
	tw.Flush()
}

// PrintHistory writes history entries numbered from 1 in the given order.
func PrintHistory(w io.Writer, entries []domain.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "履歴はありません。")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%3d. [%s] %s\n", i+1, e.CreatedAt.Local().Format(timeLayout), DirectionLabel(e.Dialect, e.Direction))
		fmt.Fprintf(w, "     %s\n     → %s\n", e.UserInput, e.BotOutput)
	}
}

// PrintMessage writes one transcript line.
func PrintMessage(w io.Writer, m domain.Message) {
	switch {
	case !m.IsBot():
		fmt.Fprintf(w, "[%d] あなた: %s\n", m.ID, m.Content)
	case m.Dialect != nil && m.Direction != nil:
		fmt.Fprintf(w, "[%d] ボット (%s): %s\n", m.ID, DirectionLabel(*m.Dialect, *m.Direction), m.Content)
	default:
		fmt.Fprintf(w, "[%d] ボット: %s\n", m.ID, m.Content)
	}
}

// SaveAudio writes WAV bytes into dir under a timestamped name and returns
// the file path.
func SaveAudio(dir string, audio []byte, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}
	path := filepath.Join(dir, "speech-"+at.Format("20060102-150405.000")+".wav")
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	return path, nil
}
