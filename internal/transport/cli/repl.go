package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/service/chat"
)

const helpText = `コマンド:
  <テキスト>            現在の方言・方向で翻訳
  /new [タイトル]        新しい会話を作成して選択
  /list                  会話一覧
  /select <id>           会話を選択
  /rename <id> <タイトル> 会話の名前を変更
  /delete <id>           会話と履歴を削除
  /history               表示中の履歴
  /replay <n>            履歴の n 番目を再表示
  /dialect [名前]        方言の表示・変更
  /swap                  翻訳方向を反転
  /speak [n]             メッセージ n (省略時は最後のボット応答) を読み上げ
  /help                  このヘルプ
  /quit                  終了`

var errQuit = errors.New("quit")

// REPL reads lines from in and drives a chat session.
type REPL struct {
	orch     *chat.Orchestrator
	manager  *chat.Manager
	in       *bufio.Scanner
	out      io.Writer
	audioDir string
	log      *slog.Logger

	lastShown int
	now       func() time.Time
}

// NewREPL creates a REPL. Synthesized audio is written into audioDir.
func NewREPL(
	logger *slog.Logger,
	orch *chat.Orchestrator,
	manager *chat.Manager,
	in io.Reader,
	out io.Writer,
	audioDir string,
) *REPL {
	return &REPL{
		orch:     orch,
		manager:  manager,
		in:       bufio.NewScanner(in),
		out:      out,
		audioDir: audioDir,
		log:      logger.With("handler", "repl"),
		now:      time.Now,
	}
}

// Run loads the session and processes input until EOF, /quit or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.manager.Load(ctx); err != nil {
		r.printf("履歴サーバーに接続できませんでした: %v\n", err)
	}

	snap := r.orch.Snapshot()
	r.printf("方言翻訳チャット (%s)。/help でコマンド一覧。\n", DirectionLabel(snap.Dialect, snap.Direction))

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		r.printf("> ")
		line, ok := r.readLine()
		if !ok {
			return r.in.Err()
		}

		err := r.handle(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			r.printf("エラー: %s\n", describe(err))
		}
		r.flushTranscript()
	}
}

func (r *REPL) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *REPL) handle(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, "/") {
		return r.orch.Submit(ctx, line)
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "/quit", "/exit":
		return errQuit
	case "/help":
		r.printf("%s\n", helpText)
		return nil
	case "/new":
		conv, err := r.manager.Create(ctx, rest)
		if err != nil {
			return err
		}
		r.printf("会話 %d「%s」を作成しました。\n", conv.ID, conv.DisplayTitle())
		return nil
	case "/list":
		if err := r.manager.RefreshConversations(ctx); err != nil {
			return err
		}
		snap := r.orch.Snapshot()
		PrintConversations(r.out, snap.Conversations, selectedID(snap))
		return nil
	case "/select":
		return r.selectConversation(ctx, rest)
	case "/rename":
		idArg, title, _ := strings.Cut(rest, " ")
		id, err := parseID(idArg)
		if err != nil {
			return err
		}
		conv, err := r.manager.Rename(ctx, id, title)
		if err != nil {
			return err
		}
		r.printf("会話 %d の名前を「%s」に変更しました。\n", conv.ID, conv.DisplayTitle())
		return nil
	case "/delete":
		return r.deleteConversation(ctx, rest)
	case "/history":
		if err := r.manager.RefreshHistory(ctx); err != nil {
			return err
		}
		PrintHistory(r.out, r.orch.Snapshot().History)
		return nil
	case "/replay":
		return r.replay(rest)
	case "/dialect":
		return r.dialect(rest)
	case "/swap":
		dir := r.orch.SwapDirection()
		r.printf("翻訳方向: %s\n", DirectionLabel(r.orch.Snapshot().Dialect, dir))
		return nil
	case "/speak":
		return r.speak(ctx, rest)
	default:
		return domain.NewValidationError("command", "unknown command "+cmd+" (/help)")
	}
}

func (r *REPL) selectConversation(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	err = r.manager.SelectByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		// The cached list may be stale.
		if rerr := r.manager.RefreshConversations(ctx); rerr != nil {
			return rerr
		}
		err = r.manager.SelectByID(ctx, id)
	}
	if err != nil {
		return err
	}
	snap := r.orch.Snapshot()
	r.printf("会話 %d「%s」を選択しました。\n", id, snap.Selected.DisplayTitle())
	PrintHistory(r.out, snap.History)
	return nil
}

func (r *REPL) deleteConversation(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	r.printf("会話 %d とそのすべての翻訳履歴を削除します。よろしいですか？ [y/N] ", id)
	answer, ok := r.readLine()
	if !ok || !isYes(answer) {
		r.printf("キャンセルしました。\n")
		return nil
	}
	if err := r.manager.Delete(ctx, id); err != nil {
		return err
	}
	r.printf("会話 %d を削除しました。\n", id)
	return nil
}

func (r *REPL) replay(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return domain.NewValidationError("n", "must be a number")
	}
	history := r.orch.Snapshot().History
	if n < 1 || n > len(history) {
		return domain.NewValidationError("n", fmt.Sprintf("must be between 1 and %d", len(history)))
	}
	r.orch.ReplayHistory(history[n-1])
	return nil
}

func (r *REPL) dialect(arg string) error {
	if arg == "" {
		current := r.orch.Snapshot().Dialect
		for _, d := range domain.Dialects() {
			mark := " "
			if d == current {
				mark = "*"
			}
			r.printf("%s %s\n", mark, d)
		}
		return nil
	}
	d, err := domain.ParseDialect(arg)
	if err != nil {
		return err
	}
	if err := r.orch.SetDialect(d); err != nil {
		return err
	}
	snap := r.orch.Snapshot()
	r.printf("翻訳方向: %s\n", DirectionLabel(snap.Dialect, snap.Direction))
	return nil
}

func (r *REPL) speak(ctx context.Context, arg string) error {
	snap := r.orch.Snapshot()

	var target *domain.Message
	if arg == "" {
		for i := len(snap.Transcript) - 1; i >= 0; i-- {
			if snap.Transcript[i].Dialect != nil {
				target = &snap.Transcript[i]
				break
			}
		}
	} else {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return domain.NewValidationError("n", "must be a number")
		}
		for i := range snap.Transcript {
			if snap.Transcript[i].ID == id {
				target = &snap.Transcript[i]
				break
			}
		}
	}
	if target == nil {
		return domain.NewValidationError("n", "no message to speak")
	}

	dialect := snap.Dialect
	if target.Dialect != nil {
		dialect = *target.Dialect
	}

	audio, err := r.orch.Speak(ctx, target.Content, dialect)
	if err != nil {
		return err
	}
	path, err := SaveAudio(r.audioDir, audio, r.now())
	if err != nil {
		return err
	}
	r.log.DebugContext(ctx, "audio saved", slog.String("path", path))
	r.printf("音声を保存しました: %s\n", path)
	return nil
}

// flushTranscript prints messages added since the last call.
func (r *REPL) flushTranscript() {
	for _, m := range r.orch.Snapshot().Transcript {
		if m.ID > r.lastShown {
			PrintMessage(r.out, m)
			r.lastShown = m.ID
		}
	}
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func selectedID(snap chat.Snapshot) int64 {
	if snap.Selected == nil {
		return 0
	}
	return snap.Selected.ID
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "はい":
		return true
	}
	return false
}

// describe turns an error into a short user-facing message.
func describe(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "見つかりませんでした。"
	case errors.Is(err, domain.ErrConflict):
		return "この会話は別の操作の処理中です。"
	case errors.Is(err, domain.ErrBusy):
		return "翻訳中です。しばらくお待ちください。"
	case errors.Is(err, domain.ErrProvider):
		return "音声合成に失敗しました。"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "履歴サーバーに接続できませんでした。"
	}
	return err.Error()
}
