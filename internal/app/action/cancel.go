package action

import (
	"context"
	"strings"

	"storyforge/internal/domain/story"
)

// Cancel refunds and removes every assist, then refunds the action itself.
// A never-submitted action is hard-deleted; anything that was ever submitted
// keeps its history under a terminal cancelled status.
//
// Each assist is refunded and removed in its own transaction: if the external
// ledger fails partway, the assists already processed stay refunded and a
// retry only handles the remainder.
func (u UseCase) Cancel(ctx context.Context, req CancelRequest) (CancelResponse, error) {
	if strings.TrimSpace(req.ActionID) == "" {
		return CancelResponse{}, ErrInvalidRequest
	}
	var out CancelResponse
	body := func() error {
		for {
			done, err := u.cancelNextAssist(ctx, req.ActionID)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			a, err := u.Actions.GetByID(txCtx, req.ActionID)
			if err != nil {
				return err
			}
			if a.Status.Terminal() {
				return story.Rejectf("That action has already been resolved.")
			}
			if err := u.refundPool(txCtx, a.OwnerID, a.Pool); err != nil {
				return err
			}
			if !a.Submitted() {
				if err := u.Actions.Delete(txCtx, a.ID); err != nil {
					return err
				}
				out = CancelResponse{Deleted: true}
				return nil
			}
			a.Status = story.StatusCancelled
			a.Editable = false
			if err := u.save(txCtx, &a); err != nil {
				return err
			}
			out = CancelResponse{}
			return nil
		})
	}

	var err error
	if u.Locks != nil {
		err = u.Locks.Do(req.ActionID, body)
	} else {
		err = body()
	}
	u.record("cancel", err)
	return out, err
}

// cancelNextAssist refunds and deletes one assist, committing before the next
// so the cascade is idempotent per assist. Returns done once none remain.
func (u UseCase) cancelNextAssist(ctx context.Context, actionID string) (bool, error) {
	done := false
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, actionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("That action has already been resolved.")
		}
		if len(a.Assists) == 0 {
			done = true
			return nil
		}
		s := a.Assists[0]
		// An assist with no story never paid anything.
		if s.Story != "" {
			if err := u.refundPool(txCtx, s.ParticipantID, s.Pool); err != nil {
				return err
			}
		}
		a.RemoveAssist(s.ID)
		return u.save(txCtx, &a)
	})
	return done, err
}
