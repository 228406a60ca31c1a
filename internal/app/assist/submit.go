package assist

import (
	"context"
	"fmt"
	"time"

	"storyforge/internal/domain/story"
)

// Submit locks the helper's contribution in. When the parent was waiting on
// player edits and this was the last open window, the whole action moves back
// to the adjudication queue.
func (u UseCase) Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	if req.ActionID == "" || req.ParticipantID == "" {
		return SubmitResponse{}, ErrInvalidRequest
	}

	var resp SubmitResponse
	err := u.run(ctx, req.ActionID, "assist.submit", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot submit to a cancelled or published action.")
		}
		s := a.Assist(req.ParticipantID)
		if s == nil {
			return story.Rejectf("You are not assisting this action.")
		}

		sc, err := u.submissionContext(txCtx, &a)
		if err != nil {
			return err
		}
		if err := a.ValidateAssistSubmission(s, sc); err != nil {
			return err
		}

		s.MarkSubmitted(u.now())
		if a.Status == story.StatusNeedsPlayerInput && len(a.EditableParticipants()) == 0 {
			a.Status = story.StatusNeedsGMInput
			u.notifyStaff(txCtx, fmt.Sprintf("Action #%s has all required input and is ready for review.", a.ID))
		}

		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		resp.AssistID = s.ID
		resp.SubmittedAt = s.SubmittedAt.UTC().Format(time.RFC3339)
		return nil
	})
	return resp, err
}
