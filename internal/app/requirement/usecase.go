package requirement

import (
	"context"
	"errors"
	"time"

	"storyforge/internal/app/ports"
	"storyforge/internal/app/shared/keylock"
	"storyforge/internal/domain/story"
)

var ErrInvalidRequest = errors.New("invalid requirement request")

// UseCase attaches and fulfills the gates staff place on an action before it
// can publish. Fulfillment debits the ledger and mutates the aggregate inside
// one transaction, so a version conflict rolls the payment back with it.
type UseCase struct {
	TxManager ports.TxManager
	Locks     *keylock.KeyLock
	Actions   ports.ActionRepository
	Plots     ports.PlotRepository
	Ledger    ports.ParticipantLedger
	Armies    ports.ArmyDirectory
	Beats     ports.BeatRepository
	Notifier  ports.NotificationSink
	Metrics   ports.ActionMetrics
	Now       func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) run(ctx context.Context, actionID, op string, fn func(txCtx context.Context) error) error {
	body := func() error {
		return u.TxManager.RunInTx(ctx, fn)
	}
	var err error
	if u.Locks != nil {
		err = u.Locks.Do(actionID, body)
	} else {
		err = body()
	}
	u.record(op, err)
	return err
}

func (u UseCase) record(op string, err error) {
	if u.Metrics == nil {
		return
	}
	switch {
	case err == nil:
		u.Metrics.RecordSuccess(op)
	case errors.Is(err, ports.ErrConflict):
		u.Metrics.RecordConflict()
	case errors.Is(err, story.ErrSubmissionRejected), errors.Is(err, story.ErrPayment):
		u.Metrics.RecordRejection()
	default:
		u.Metrics.RecordFailure()
	}
}

func (u UseCase) notify(ctx context.Context, participantID, text string) {
	if u.Notifier != nil {
		u.Notifier.Notify(ctx, participantID, text)
	}
}

func (u UseCase) save(ctx context.Context, a *story.Action) error {
	expected := a.Version
	a.Version++
	return u.Actions.SaveWithVersion(ctx, *a, expected)
}

// pay debits the contributor for a resource kind, surfacing the ledger's
// payment error unchanged so callers can report the shortfall.
func (u UseCase) pay(ctx context.Context, participantID string, rt story.ResourceType, amount int) error {
	switch rt {
	case story.ResourceSilver:
		return u.Ledger.PaySilver(ctx, participantID, amount)
	case story.ResourceActionPoints:
		return u.Ledger.PayActionPoints(ctx, participantID, amount)
	default:
		return u.Ledger.PayResource(ctx, participantID, rt, amount)
	}
}
