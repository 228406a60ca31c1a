package assist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storyforge/internal/domain/story"
)

// Invite attaches a helper slot to the action. The slot starts empty; the
// helper pays nothing until they write their story text.
func (u UseCase) Invite(ctx context.Context, req InviteRequest) (InviteResponse, error) {
	if req.ActionID == "" || req.ParticipantID == "" {
		return InviteResponse{}, ErrInvalidRequest
	}

	var resp InviteResponse
	err := u.run(ctx, req.ActionID, "assist.invite", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot join a cancelled or published action.")
		}
		if a.OwnerID == req.ParticipantID {
			return story.Rejectf("You cannot assist your own action.")
		}
		if a.Assist(req.ParticipantID) != nil {
			return story.Rejectf("They are already attempting to assist this action.")
		}
		plot, err := u.plotFor(txCtx, &a)
		if err != nil {
			return err
		}
		if plot == nil {
			return story.Rejectf("All actions must be tied to a plot.")
		}
		if plot.Kind == story.PlotCrisis {
			if a.OrgID == "" {
				return story.Rejectf("No org selected for crisis.")
			}
			member, err := u.Orgs.IsActiveMember(txCtx, a.OrgID, req.ParticipantID)
			if err != nil {
				return err
			}
			if !member {
				return story.Rejectf("They are not an active member of the org taking this action.")
			}
		}

		s := story.Assist{
			ID:            uuid.NewString(),
			ActionID:      a.ID,
			ParticipantID: req.ParticipantID,
			Attending:     true,
			Editable:      true,
		}
		a.Assists = append(a.Assists, s)
		if err := u.save(txCtx, &a); err != nil {
			return err
		}

		resp.AssistID = s.ID
		u.notify(txCtx, req.ParticipantID,
			fmt.Sprintf("You have been invited to assist action #%s.", a.ID))
		return nil
	})
	return resp, err
}
