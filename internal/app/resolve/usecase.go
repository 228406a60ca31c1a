package resolve

import (
	"context"
	"errors"

	"storyforge/internal/app/ports"
	"storyforge/internal/app/shared/keylock"
	"storyforge/internal/domain/story"
)

var ErrInvalidRequest = errors.New("invalid resolve request")

// UseCase scores submitted actions. Rolling is idempotent: re-rolling after a
// tuning or contribution change simply overwrites the recorded outcome.
type UseCase struct {
	TxManager ports.TxManager
	Locks     *keylock.KeyLock
	Actions   ports.ActionRepository
	Traits    ports.TraitDirectory
	Outcomes  ports.OutcomeTables
	Metrics   ports.ActionMetrics
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
	case errors.Is(err, story.ErrSubmissionRejected):
		u.Metrics.RecordRejection()
	default:
		u.Metrics.RecordFailure()
	}
}

func (u UseCase) save(ctx context.Context, a *story.Action) error {
	expected := a.Version
	a.Version++
	return u.Actions.SaveWithVersion(ctx, *a, expected)
}

// weightedRoll turns a participant's raw proficiency numbers into the roll
// value the scorer consumes.
func (u UseCase) weightedRoll(ctx context.Context, participantID, stat, skill string) (int, error) {
	statVal, err := u.Traits.StatValue(ctx, participantID, stat)
	if err != nil {
		return 0, err
	}
	skillVal, err := u.Traits.SkillValue(ctx, participantID, skill)
	if err != nil {
		return 0, err
	}
	knack, err := u.Traits.KnackLevel(ctx, participantID, stat, skill)
	if err != nil {
		return 0, err
	}
	return u.Outcomes.WeightStat(statVal) + u.Outcomes.WeightSkill(skillVal) + u.Outcomes.WeightKnack(knack), nil
}
