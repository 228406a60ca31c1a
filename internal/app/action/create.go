package action

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"storyforge/internal/domain/story"
)

// Create opens a new draft owned by the calling participant. A plot-bound
// draft is checked against the container's submission window up front so a
// player does not write into a closed crisis.
func (u UseCase) Create(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	if req.OwnerID == "" {
		return CreateResponse{}, ErrInvalidRequest
	}

	a := story.Action{
		ID:              uuid.NewString(),
		OwnerID:         req.OwnerID,
		PlotID:          strings.TrimSpace(req.PlotID),
		OrgID:           strings.TrimSpace(req.OrgID),
		Status:          story.StatusDraft,
		Editable:        true,
		Attending:       true,
		FreeAction:      req.FreeAction,
		PreferOffscreen: req.PreferOffscreen,
		Tuning:          story.DefaultRollTuning(),
		Version:         1,
	}

	var out CreateResponse
	err := u.run(ctx, a.ID, "create", func(txCtx context.Context) error {
		if a.PlotID != "" {
			plot, err := u.Plots.GetByID(txCtx, a.PlotID)
			if err != nil {
				return err
			}
			if err := plot.RaiseSubmissionErrors(u.now()); err != nil {
				return err
			}
		}
		if err := u.Actions.Create(txCtx, a); err != nil {
			return err
		}
		out = CreateResponse{Action: a}
		return nil
	})
	return out, err
}

// UpdateFields patches the owner's editable fields.
func (u UseCase) UpdateFields(ctx context.Context, req UpdateFieldsRequest) (story.Action, error) {
	if strings.TrimSpace(req.ActionID) == "" {
		return story.Action{}, ErrInvalidRequest
	}
	var out story.Action
	err := u.run(ctx, req.ActionID, "update_fields", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("That action has already been resolved.")
		}
		if !a.Editable {
			return ErrNotEditable
		}
		if req.Narrative != "" {
			a.Narrative = req.Narrative
		}
		if req.OOCIntent != "" {
			a.OOCIntent = req.OOCIntent
		}
		if req.Summary != "" {
			a.Summary = req.Summary
		}
		if req.StatUsed != "" {
			a.StatUsed = req.StatUsed
		}
		if req.SkillUsed != "" {
			a.SkillUsed = req.SkillUsed
		}
		if req.PreferOffscreen != nil {
			a.PreferOffscreen = *req.PreferOffscreen
		}
		if req.Attending != nil {
			a.Attending = *req.Attending
			if a.Attending {
				sc, err := u.submissionContext(txCtx, &a)
				if err != nil {
					return err
				}
				if err := a.ValidateAttendance(sc); err != nil {
					return err
				}
			}
		}
		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}
