package requirement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storyforge/internal/domain/story"
)

// Add attaches a requirement, reopening the action for the players to meet
// it. Attaching the same entity requirement twice collapses to the existing
// one; resource and text kinds overwrite their parameters in place.
func (u UseCase) Add(ctx context.Context, req AddRequest) (AddResponse, error) {
	if req.ActionID == "" || req.Kind == "" {
		return AddResponse{}, ErrInvalidRequest
	}
	kind, ok := story.ParseRequirementKind(req.Kind)
	if !ok {
		return AddResponse{}, fmt.Errorf("%w: unknown requirement kind %q", ErrInvalidRequest, req.Kind)
	}
	if kind.IsResource() && req.Amount <= 0 {
		return AddResponse{}, fmt.Errorf("%w: resource requirements need a positive amount", ErrInvalidRequest)
	}
	if kind.IsEntity() && req.EntityID == "" {
		return AddResponse{}, fmt.Errorf("%w: entity requirements need an entity id", ErrInvalidRequest)
	}

	var resp AddResponse
	err := u.run(ctx, req.ActionID, "requirement.add", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot add requirements to a cancelled or published action.")
		}

		r, created := a.AttachRequirement(uuid.NewString(), kind, req.EntityID)
		if kind.IsResource() {
			r.TotalRequired = req.Amount
			r.MaxRate = req.MaxRate
		}
		if kind.IsText() {
			r.Text = req.Text
		}

		a.ReopenForPlayer()
		if err := u.save(txCtx, &a); err != nil {
			return err
		}

		if created {
			msg := fmt.Sprintf("A new requirement has been added to action #%s: %s", a.ID, r.Describe())
			u.notify(txCtx, a.OwnerID, msg)
			for i := range a.Assists {
				u.notify(txCtx, a.Assists[i].ParticipantID, msg)
			}
		}
		resp.RequirementID = r.ID
		resp.Created = created
		return nil
	})
	return resp, err
}
