package action

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storyforge/internal/domain/story"
)

// Submit runs the preflight gate and advances the lifecycle. A draft that
// passes moves to needs-GM and sweeps its not-yet-submitted assists through
// submit-or-refund; a needs-player action moves on once nobody still has an
// open edit window. The first draft submit raises a one-time warning instead
// and requires a second call.
func (u UseCase) Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	if strings.TrimSpace(req.ActionID) == "" {
		return SubmitResponse{}, ErrInvalidRequest
	}
	var out SubmitResponse
	err := u.run(ctx, req.ActionID, "submit", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("That action has already been resolved.")
		}

		sc, err := u.submissionContext(txCtx, &a)
		if err != nil {
			return err
		}
		if err := a.ValidateSubmission(sc); err != nil {
			var rejected *story.SubmissionRejectedError
			if errors.As(err, &rejected) && rejected.Warning {
				// The warning consumed the one-time prompt; persist the
				// marker so the next submit goes through.
				if saveErr := u.save(txCtx, &a); saveErr != nil {
					return saveErr
				}
			}
			return err
		}

		var refunded []string
		wasDraft := a.Status == story.StatusDraft
		if wasDraft {
			a.Status = story.StatusNeedsGMInput
			refunded, err = u.sweepUnreadyAssists(txCtx, &a, sc)
			if err != nil {
				return err
			}
			u.notifyStaff(txCtx, fmt.Sprintf("%s submitted action #%s. %s", a.OwnerID, a.ID, a.Summary))
		}

		a.MarkSubmitted(sc.Now)

		if a.Status == story.StatusNeedsPlayerInput && len(a.EditableParticipants()) == 0 {
			a.Status = story.StatusNeedsGMInput
			u.notifyStaff(txCtx, fmt.Sprintf("Action #%s has been resubmitted for review.", a.ID))
		}

		// Submissions count against the once-per-episode budget: the owner's
		// for personal actions, the org's for crisis actions. The booking is
		// idempotent per action.
		if err := u.Actions.RecordEpisodeAction(txCtx, a.OwnerID, a.OrgID, sc.EpisodeID, a.ID); err != nil {
			return err
		}

		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		out = SubmitResponse{Action: a, RefundedAssists: refunded}
		return nil
	})
	return out, err
}

// sweepUnreadyAssists submits every assist that is ready and cancels-with-
// refund every one that is not, informing both parties.
func (u UseCase) sweepUnreadyAssists(ctx context.Context, a *story.Action, sc story.SubmissionContext) ([]string, error) {
	var refunded []string
	kept := a.Assists[:0]
	for i := range a.Assists {
		s := a.Assists[i]
		if s.SubmittedAt != nil {
			kept = append(kept, s)
			continue
		}
		if err := a.ValidateAssistSubmission(&s, sc); err != nil {
			if !errors.Is(err, story.ErrSubmissionRejected) {
				return nil, err
			}
			if s.Story != "" {
				if err := u.refundPool(ctx, s.ParticipantID, s.Pool); err != nil {
					return nil, err
				}
			}
			u.notify(ctx, a.OwnerID, fmt.Sprintf("Cancelling incomplete assist: %s", s.ParticipantID))
			u.notify(ctx, s.ParticipantID, fmt.Sprintf("Your assist for action #%s was incomplete and has been refunded.", a.ID))
			refunded = append(refunded, s.ParticipantID)
			continue
		}
		s.MarkSubmitted(sc.Now)
		kept = append(kept, s)
	}
	a.Assists = kept
	return refunded, nil
}
