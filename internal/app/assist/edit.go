package assist

import (
	"context"

	"storyforge/internal/domain/story"
)

// SetStory writes or replaces the helper's text fields. Writing the first
// story text charges the assist's one-time effort cost; the payment lands in
// the assist pool so it refunds on cancellation.
func (u UseCase) SetStory(ctx context.Context, req SetStoryRequest) (SetStoryResponse, error) {
	if req.ActionID == "" || req.ParticipantID == "" {
		return SetStoryResponse{}, ErrInvalidRequest
	}

	var resp SetStoryResponse
	err := u.run(ctx, req.ActionID, "assist.set_story", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot edit a cancelled or published action.")
		}
		s := a.Assist(req.ParticipantID)
		if s == nil {
			return story.Rejectf("You are not assisting this action.")
		}
		if !s.Editable {
			return ErrNotEditable
		}

		firstStory := s.Story == "" && req.Story != ""
		if firstStory && story.InitialAssistAPCost > 0 {
			if err := u.Ledger.PayActionPoints(txCtx, s.ParticipantID, story.InitialAssistAPCost); err != nil {
				return err
			}
			s.Pool.Add(story.ResourceActionPoints, story.InitialAssistAPCost)
		}

		if req.Story != "" {
			s.Story = req.Story
		}
		if req.OOCIntent != "" {
			s.OOCIntent = req.OOCIntent
		}
		if req.Summary != "" {
			s.Summary = req.Summary
		}
		if req.StatUsed != "" {
			s.StatUsed = req.StatUsed
		}
		if req.SkillUsed != "" {
			s.SkillUsed = req.SkillUsed
		}

		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		resp.AssistID = s.ID
		return nil
	})
	return resp, err
}

// ToggleAttendance flips whether the helper is physically present in the
// scene. Joining onscreen re-runs the crowd check so the cap cannot be
// bypassed after submission prompts.
func (u UseCase) ToggleAttendance(ctx context.Context, req ToggleAttendanceRequest) (ToggleAttendanceResponse, error) {
	if req.ActionID == "" || req.ParticipantID == "" {
		return ToggleAttendanceResponse{}, ErrInvalidRequest
	}

	var resp ToggleAttendanceResponse
	err := u.run(ctx, req.ActionID, "assist.attendance", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot edit a cancelled or published action.")
		}
		s := a.Assist(req.ParticipantID)
		if s == nil {
			return story.Rejectf("You are not assisting this action.")
		}

		s.Attending = req.Attending
		if req.Attending {
			sc, err := u.submissionContext(txCtx, &a)
			if err != nil {
				return err
			}
			if err := a.ValidateAttendance(sc); err != nil {
				return err
			}
		}

		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		resp.Attending = s.Attending
		return nil
	})
	return resp, err
}
