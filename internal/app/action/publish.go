package action

import (
	"context"
	"fmt"
	"strings"

	"storyforge/internal/domain/story"
)

// Publish resolves the action: locks editing, stamps the resolution batch if
// one is given, completes any pending army orders and informs every
// participant. Defer instead parks the action as pending publish for the next
// batch. Only a needs-GM or pending-publish action may be published.
func (u UseCase) Publish(ctx context.Context, req PublishRequest) (PublishResponse, error) {
	if strings.TrimSpace(req.ActionID) == "" {
		return PublishResponse{}, ErrInvalidRequest
	}
	var out PublishResponse
	err := u.run(ctx, req.ActionID, "publish", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status != story.StatusNeedsGMInput && a.Status != story.StatusPendingPublish {
			return story.Rejectf("Action #%s is not awaiting resolution.", a.ID)
		}

		if req.Defer {
			a.Status = story.StatusPendingPublish
			a.Editable = false
			if req.ResolverNotes != "" {
				a.ResolverNotes = req.ResolverNotes
			}
			if err := u.save(txCtx, &a); err != nil {
				return err
			}
			out = PublishResponse{Action: a}
			return nil
		}

		if req.Outcome != "" {
			a.Outcome = req.Outcome
		}
		if req.ResolverNotes != "" {
			a.ResolverNotes = req.ResolverNotes
		}
		a.MarkPublished(strings.TrimSpace(req.BeatID))
		if err := u.save(txCtx, &a); err != nil {
			return err
		}

		msg := fmt.Sprintf("Action #%s has been resolved. Outcome: %s", a.ID, a.Outcome)
		u.notify(txCtx, a.OwnerID, msg)
		for i := range a.Assists {
			u.notify(txCtx, a.Assists[i].ParticipantID, msg)
		}
		if req.BeatID == "" {
			u.notifyStaff(txCtx, fmt.Sprintf("Action #%s published by %s.", a.ID, req.ResolverID))
		}
		out = PublishResponse{Action: a}
		return nil
	})
	return out, err
}

// LinkBeat back-links an already resolved action to a resolution batch.
func (u UseCase) LinkBeat(ctx context.Context, actionID, beatID string) error {
	if strings.TrimSpace(actionID) == "" || strings.TrimSpace(beatID) == "" {
		return ErrInvalidRequest
	}
	return u.run(ctx, actionID, "link_beat", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, actionID)
		if err != nil {
			return err
		}
		if a.BeatID != "" {
			return nil
		}
		a.BeatID = beatID
		return u.save(txCtx, &a)
	})
}
