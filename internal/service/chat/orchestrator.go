package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/pkg/ctxutil"
)

// Orchestrator runs the translate action and the other transcript-level
// operations of a session.
type Orchestrator struct {
	session    *Session
	manager    *Manager
	translator translator
	store      store
	speech     synthesizer
	speakerID  int
	log        *slog.Logger

	submitting atomic.Bool
	now        func() time.Time
}

// NewOrchestrator wires an Orchestrator. speakerID is the voice used by Speak.
func NewOrchestrator(
	log *slog.Logger,
	session *Session,
	manager *Manager,
	translator translator,
	store store,
	speech synthesizer,
	speakerID int,
) *Orchestrator {
	return &Orchestrator{
		session:    session,
		manager:    manager,
		translator: translator,
		store:      store,
		speech:     speech,
		speakerID:  speakerID,
		log:        log.With("service", "chat"),
		now:        time.Now,
	}
}

// Submit translates text with the current dialect and direction.
//
// Blank input is ignored; anything else is shown, translated and stored
// exactly as typed. A submit while another is running returns ErrBusy
// and leaves the transcript untouched. Any failure after the user message is
// appended is reported to the user as FallbackMessage and logged; Submit
// itself then returns nil.
func (o *Orchestrator) Submit(ctx context.Context, text string) error {
	if domain.IsBlank(text) {
		return nil
	}
	if !o.submitting.CompareAndSwap(false, true) {
		return domain.ErrBusy
	}
	defer o.submitting.Store(false)

	ctx, requestID := ctxutil.EnsureRequestID(ctx)
	dialect, dir := o.session.settings()

	o.session.appendMessage(newUserMessage(text, o.now()))

	if err := o.translate(ctx, text, dialect, dir); err != nil {
		o.log.ErrorContext(ctx, "translate action failed",
			slog.String("request_id", requestID),
			slog.String("dialect", dialect.String()),
			slog.String("direction", dir.String()),
			slog.String("error", err.Error()),
		)
		o.session.appendMessage(newBotMessage(FallbackMessage, nil, nil, o.now()))
	}
	return nil
}

func (o *Orchestrator) translate(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) error {
	convID, err := o.manager.EnsureConversation(ctx)
	if err != nil {
		return err
	}

	translated, err := o.translator.Translate(ctx, text, dialect, dir)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	o.session.appendMessage(newBotMessage(translated, &dialect, &dir, o.now()))

	_, err = o.store.CreateHistory(ctx, domain.NewHistoryEntry{
		UserInput:      text,
		BotOutput:      translated,
		Dialect:        dialect,
		Direction:      dir,
		ConversationID: convID,
	})
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	// A failed refresh has already degraded the list and been logged.
	_ = o.manager.refreshHistory(ctx, &convID)
	return nil
}

// ReplayHistory shows a stored exchange: the transcript becomes exactly the
// entry's input and output, both stamped with the entry's creation time.
func (o *Orchestrator) ReplayHistory(entry domain.HistoryEntry) {
	dialect, dir := entry.Dialect, entry.Direction
	o.session.replaceTranscript(
		newUserMessage(entry.UserInput, entry.CreatedAt),
		newBotMessage(entry.BotOutput, &dialect, &dir, entry.CreatedAt),
	)
}

// Speak synthesizes text and acknowledges it in the transcript. On failure
// the transcript is left unchanged.
func (o *Orchestrator) Speak(ctx context.Context, text string, dialect domain.Dialect) ([]byte, error) {
	if domain.IsBlank(text) {
		return nil, domain.NewValidationError("text", "required")
	}
	ctx, _ = ctxutil.EnsureRequestID(ctx)

	audio, err := o.speech.Synthesize(ctx, text, o.speakerID)
	if err != nil {
		o.log.WarnContext(ctx, "speech synthesis failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("speak: %w", err)
	}

	ack := fmt.Sprintf("ずんだもんです！「%s」を%sで読み上げました〜！", text, dialect)
	o.session.appendMessage(newBotMessage(ack, nil, nil, o.now()))
	return audio, nil
}

// SetDialect changes the dialect used by subsequent submits.
func (o *Orchestrator) SetDialect(d domain.Dialect) error {
	if !d.IsValid() {
		return domain.NewValidationError("dialect", "unknown dialect")
	}
	o.session.setDialect(d)
	return nil
}

// SetDirection changes the direction used by subsequent submits.
func (o *Orchestrator) SetDirection(d domain.Direction) error {
	if !d.IsValid() {
		return domain.NewValidationError("direction", "unknown direction")
	}
	o.session.setDirection(d)
	return nil
}

// SwapDirection reverses the direction and returns the new one.
func (o *Orchestrator) SwapDirection() domain.Direction {
	return o.session.swapDirection()
}

// Snapshot returns the session state including whether a submit is running.
func (o *Orchestrator) Snapshot() Snapshot {
	snap := o.session.Snapshot()
	snap.Submitting = o.submitting.Load()
	return snap
}
