package assist

import (
	"context"
	"fmt"

	"storyforge/internal/domain/story"
)

// Cancel withdraws the helper from the action, refunding everything their
// pool holds before the slot is removed.
func (u UseCase) Cancel(ctx context.Context, req CancelRequest) (CancelResponse, error) {
	if req.ActionID == "" || req.ParticipantID == "" {
		return CancelResponse{}, ErrInvalidRequest
	}

	var resp CancelResponse
	err := u.run(ctx, req.ActionID, "assist.cancel", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot withdraw from a cancelled or published action.")
		}
		s := a.Assist(req.ParticipantID)
		if s == nil {
			return story.Rejectf("You are not assisting this action.")
		}

		if plan := s.Pool.RefundPlan(); len(plan) > 0 {
			if err := u.refundPool(txCtx, s.ParticipantID, s.Pool); err != nil {
				return err
			}
			resp.Refunded = true
		}
		a.RemoveAssist(s.ID)
		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		u.notify(txCtx, a.OwnerID, fmt.Sprintf("%s has withdrawn their assist from action #%s.", req.ParticipantID, a.ID))
		return nil
	})
	return resp, err
}
