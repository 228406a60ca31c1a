package resolve

import (
	"context"

	"storyforge/internal/domain/story"
)

// SetDifficulty records the tier the roll must clear. Staff can re-pin it any
// time before publication.
func (u UseCase) SetDifficulty(ctx context.Context, req SetDifficultyRequest) (SetDifficultyResponse, error) {
	if req.ActionID == "" || req.TargetTier == "" {
		return SetDifficultyResponse{}, ErrInvalidRequest
	}

	var resp SetDifficultyResponse
	err := u.run(ctx, req.ActionID, "resolve.set_difficulty", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot set difficulty on a cancelled or published action.")
		}
		a.TargetTier = req.TargetTier
		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		resp.TargetTier = a.TargetTier
		return nil
	})
	return resp, err
}

// Roll scores the action against its target tier. The total is the owner's
// weighted roll plus the capped assist and resource pools; the outcome string
// is recorded on the action and overwritten on every re-roll.
func (u UseCase) Roll(ctx context.Context, req RollRequest) (RollResponse, error) {
	if req.ActionID == "" {
		return RollResponse{}, ErrInvalidRequest
	}

	var resp RollResponse
	err := u.run(ctx, req.ActionID, "resolve.roll", func(txCtx context.Context) error {
		a, err := u.Actions.GetByID(txCtx, req.ActionID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			return story.Rejectf("You cannot roll a cancelled or published action.")
		}
		if a.TargetTier == "" {
			return story.Rejectf("Set a difficulty tier before rolling.")
		}

		ownerRoll, err := u.weightedRoll(txCtx, a.OwnerID, a.StatUsed, a.SkillUsed)
		if err != nil {
			return err
		}
		assistRolls := make([]int, 0, len(a.Assists))
		for i := range a.Assists {
			s := &a.Assists[i]
			if s.Story == "" || s.StatUsed == "" || s.SkillUsed == "" {
				continue
			}
			roll, err := u.weightedRoll(txCtx, s.ParticipantID, s.StatUsed, s.SkillUsed)
			if err != nil {
				return err
			}
			assistRolls = append(assistRolls, roll)
		}

		total := a.RollTotal(ownerRoll, assistRolls)
		outcome, err := u.Outcomes.ResolveTier(total, a.TargetTier)
		if err != nil {
			return err
		}

		a.Outcome = outcome
		if err := u.save(txCtx, &a); err != nil {
			return err
		}
		resp.Total = total
		resp.Outcome = outcome
		return nil
	})
	return resp, err
}
