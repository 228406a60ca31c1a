package assist

import (
	"context"
	"errors"
	"time"

	"storyforge/internal/app/ports"
	"storyforge/internal/app/shared/keylock"
	"storyforge/internal/domain/story"
)

var (
	ErrInvalidRequest = errors.New("invalid assist request")
	ErrNotEditable    = errors.New("assist is not editable")
)

// UseCase mutates assists through their parent action aggregate, so every
// operation here contends on the same lock and version as the owner's own
// edits.
type UseCase struct {
	TxManager ports.TxManager
	Locks     *keylock.KeyLock
	Actions   ports.ActionRepository
	Plots     ports.PlotRepository
	Ledger    ports.ParticipantLedger
	Orgs      ports.OrgDirectory
	Episodes  ports.EpisodeDirectory
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

func (u UseCase) notifyStaff(ctx context.Context, text string) {
	if u.Notifier != nil {
		u.Notifier.NotifyStaff(ctx, text)
	}
}

func (u UseCase) save(ctx context.Context, a *story.Action) error {
	expected := a.Version
	a.Version++
	return u.Actions.SaveWithVersion(ctx, *a, expected)
}

func (u UseCase) plotFor(ctx context.Context, a *story.Action) (*story.Plot, error) {
	if a.PlotID == "" {
		return nil, nil
	}
	plot, err := u.Plots.GetByID(ctx, a.PlotID)
	if err != nil {
		return nil, err
	}
	return &plot, nil
}

// submissionContext mirrors the owner-side resolver: assists share the
// parent's plot window and crowd checks, keyed by the parent's episode
// history.
func (u UseCase) submissionContext(ctx context.Context, a *story.Action) (story.SubmissionContext, error) {
	sc := story.SubmissionContext{Now: u.now()}
	plot, err := u.plotFor(ctx, a)
	if err != nil {
		return sc, err
	}
	sc.Plot = plot
	sc.EpisodeID, err = u.Episodes.CurrentEpisode(ctx)
	return sc, err
}

func (u UseCase) refundPool(ctx context.Context, participantID string, pool story.ResourcePool) error {
	for _, entry := range pool.RefundPlan() {
		var err error
		switch entry.Resource {
		case story.ResourceSilver:
			err = u.Ledger.GainSilver(ctx, participantID, entry.Amount)
		case story.ResourceActionPoints:
			err = u.Ledger.GainActionPoints(ctx, participantID, entry.Amount)
		default:
			err = u.Ledger.GainResource(ctx, participantID, entry.Resource, entry.Amount)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
