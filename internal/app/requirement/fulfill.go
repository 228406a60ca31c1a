package requirement

import (
	"context"
	"fmt"

	"storyforge/internal/domain/story"
)

// Fulfill applies a participant's contribution to the matching requirement.
// The contributor must already be part of the scene: the owner with written
// narrative, or a helper with written story text.
func (u UseCase) Fulfill(ctx context.Context, req FulfillRequest) (FulfillResponse, error) {
	if req.ActionID == "" || req.ParticipantID == "" || req.Kind == "" {
		return FulfillResponse{}, ErrInvalidRequest
	}
	kind, ok := story.ParseRequirementKind(req.Kind)
	if !ok {
		return FulfillResponse{}, fmt.Errorf("%w: unknown requirement kind %q", ErrInvalidRequest, req.Kind)
	}

	var resp FulfillResponse
	err := u.run(ctx, req.ActionID, "requirement.fulfill", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot contribute to a cancelled or published action.")
		}

		pool, assistID, err := u.contributorPool(&a, req.ParticipantID)
		if err != nil {
			return err
		}

		// A staff-mandated edit round stays open past the plot deadline.
		if a.Status != story.StatusNeedsPlayerInput && a.PlotID != "" {
			plot, err := u.Plots.GetByID(txCtx, a.PlotID)
			if err != nil {
				return err
			}
			if err := plot.RaiseSubmissionErrors(u.now()); err != nil {
				return err
			}
		}

		r := a.FindRequirement(kind, req.EntityID)
		if r == nil {
			return story.Rejectf("There is no %s requirement on this action.", kind)
		}
		if met, err := r.MetFor(&a); err != nil {
			return err
		} else if met {
			return story.Rejectf("That requirement has already been satisfied.")
		}

		switch {
		case kind.IsResource():
			err = u.fulfillResource(txCtx, &a, r, pool, req)
		case kind == story.ReqForces:
			err = u.fulfillForces(txCtx, &a, r, assistID, req)
		case kind == story.ReqEvent:
			err = u.fulfillEvent(txCtx, r, req)
		default:
			r.FulfilledBy = req.ParticipantID
			r.Explanation = req.Explanation
		}
		if err != nil {
			return err
		}

		met, err := r.MetFor(&a)
		if err != nil {
			return err
		}
		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		if met {
			u.notify(txCtx, a.OwnerID,
				fmt.Sprintf("A requirement on action #%s has been met: %s", a.ID, r.Describe()))
		}
		resp.RequirementID = r.ID
		resp.Met = met
		resp.Progress = r.Progress(&a)
		return nil
	})
	return resp, err
}

// contributorPool resolves where a participant's spending is tracked. The
// owner banks into the action pool, helpers into their assist pool.
func (u UseCase) contributorPool(a *story.Action, participantID string) (*story.ResourcePool, string, error) {
	if participantID == a.OwnerID {
		if a.Narrative == "" {
			return nil, "", story.Rejectf("Write your action text before contributing.")
		}
		return &a.Pool, "", nil
	}
	s := a.Assist(participantID)
	if s == nil {
		return nil, "", story.Rejectf("You are not part of this action.")
	}
	if s.Story == "" {
		return nil, "", story.Rejectf("Write your assist text before contributing.")
	}
	return &s.Pool, s.ID, nil
}

func (u UseCase) fulfillResource(ctx context.Context, a *story.Action, r *story.Requirement, pool *story.ResourcePool, req FulfillRequest) error {
	if req.Amount <= 0 {
		return story.Rejectf("Contribution amounts must be positive.")
	}
	rt, ok := r.Kind.Resource()
	if !ok {
		return fmt.Errorf("%w: requirement %q is not a resource", story.ErrInvariant, r.Kind)
	}
	if r.ExceedsWeeklyRate(req.Amount) {
		return story.Rejectf("That exceeds the weekly rate limit. %s", r.Progress(a))
	}
	if a.TotalSpent(rt)+req.Amount > r.TotalRequired {
		return story.Rejectf("That is more than the requirement needs. %s", r.Progress(a))
	}
	if err := u.pay(ctx, req.ParticipantID, rt, req.Amount); err != nil {
		return err
	}
	pool.Add(rt, req.Amount)
	r.WeeklyTotal += req.Amount
	return nil
}

func (u UseCase) fulfillForces(ctx context.Context, a *story.Action, r *story.Requirement, assistID string, req FulfillRequest) error {
	if req.ArmyID == "" {
		return story.Rejectf("Name the army you are committing.")
	}
	army, err := u.Armies.Resolve(ctx, req.ArmyID)
	if err != nil {
		return err
	}
	handle, err := u.Armies.DispatchOrders(ctx, army, req.ParticipantID, a.ID, assistID)
	if err != nil {
		return err
	}
	a.Orders = append(a.Orders, handle)
	r.FulfilledBy = req.ParticipantID
	r.Explanation = req.Explanation
	return nil
}

func (u UseCase) fulfillEvent(ctx context.Context, r *story.Requirement, req FulfillRequest) error {
	if req.BeatID == "" {
		return story.Rejectf("Name the event you are pointing at.")
	}
	beat, err := u.Beats.GetByID(ctx, req.BeatID)
	if err != nil {
		return err
	}
	r.BeatID = beat.ID
	r.FulfilledBy = req.ParticipantID
	r.Explanation = req.Explanation
	return nil
}
