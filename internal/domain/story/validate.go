package story

import (
	"fmt"
	"strings"
	"time"
)

// SubmissionContext carries the externally sourced facts the validator needs:
// the container, the current episode and the prior-submission lookups, all
// resolved by the caller before validation starts.
type SubmissionContext struct {
	Now       time.Time
	Plot      *Plot
	EpisodeID string
	// Ids of other submitted actions this episode by the owning participant
	// (non-crisis) or by the contributing faction (crisis).
	PriorActionIDs []string
}

// RaiseSubmissionErrors is the container's own gate: resolved plots and plots
// past their deadline accept nothing.
func (p *Plot) RaiseSubmissionErrors(now time.Time) error {
	if p.Resolved {
		return Rejectf("%s has been marked as resolved.", p.Name)
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return Rejectf("It is past the deadline for %s.", p.Name)
	}
	return nil
}

// MissingFields lists the required fields not yet filled in.
func (a *Action) MissingFields() []string {
	var fields []string
	if a.Narrative == "" {
		fields = append(fields, "action text")
	}
	if a.OOCIntent == "" {
		fields = append(fields, "ooc intent")
	}
	if a.Summary == "" {
		fields = append(fields, "tldr")
	}
	if a.StatUsed == "" || a.SkillUsed == "" {
		fields = append(fields, "roll")
	}
	return fields
}

func (s *Assist) MissingFields() []string {
	var fields []string
	if s.Story == "" {
		fields = append(fields, "action text")
	}
	if s.OOCIntent == "" {
		fields = append(fields, "ooc intent")
	}
	if s.Summary == "" {
		fields = append(fields, "tldr")
	}
	if s.StatUsed == "" || s.SkillUsed == "" {
		fields = append(fields, "roll")
	}
	return fields
}

// ValidateSubmission runs the ordered preflight checks for the main action,
// short-circuiting on the first failure. The draft-only warning is raised
// last so a second submit can proceed past it.
func (a *Action) ValidateSubmission(sc SubmissionContext) error {
	if fields := a.MissingFields(); len(fields) > 0 {
		return Rejectf("Incomplete fields: %s", strings.Join(fields, ", "))
	}
	if err := a.checkPlotErrors(sc); err != nil {
		return err
	}
	if err := a.checkOvercrowd(); err != nil {
		return err
	}
	if err := a.checkRequirements(); err != nil {
		return err
	}
	return a.checkDraftWarning(sc)
}

// ValidateAssistSubmission gates an assist: its own fields plus the parent's
// plot and crowd checks, which it shares by delegation.
func (a *Action) ValidateAssistSubmission(s *Assist, sc SubmissionContext) error {
	if fields := s.MissingFields(); len(fields) > 0 {
		return Rejectf("Incomplete fields: %s", strings.Join(fields, ", "))
	}
	if err := a.checkPlotErrors(sc); err != nil {
		return err
	}
	return a.checkOvercrowd()
}

// ValidateAttendance gates stepping onscreen: the window and crowd checks
// apply, the text fields do not.
func (a *Action) ValidateAttendance(sc SubmissionContext) error {
	if err := a.checkPlotErrors(sc); err != nil {
		return err
	}
	return a.checkOvercrowd()
}

func (a *Action) checkPlotErrors(sc SubmissionContext) error {
	// A staff-mandated edit round skips the window check: the deadline
	// applies to new submissions, not to corrections staff asked for.
	if sc.Plot != nil && a.Status != StatusNeedsPlayerInput {
		if err := sc.Plot.RaiseSubmissionErrors(sc.Now); err != nil {
			return err
		}
	}
	return a.checkEpisodeBusy(sc)
}

func (a *Action) checkEpisodeBusy(sc SubmissionContext) error {
	if a.FreeAction {
		return nil
	}
	if sc.Plot != nil && sc.Plot.Kind == PlotCrisis {
		if a.OrgID == "" {
			return Rejectf("No org selected for crisis.")
		}
		if len(sc.PriorActionIDs) > 0 {
			return Rejectf("Org has already taken an action this episode: %s.", strings.Join(sc.PriorActionIDs, ", "))
		}
		return nil
	}
	if len(sc.PriorActionIDs) > 0 {
		return Rejectf("You have already taken an action this episode: %s.", strings.Join(sc.PriorActionIDs, ", "))
	}
	return nil
}

func (a *Action) checkOvercrowd() error {
	attendees := a.Attendees()
	if len(attendees) <= AttendingLimit || a.PreferOffscreen {
		return nil
	}
	excess := len(attendees) - AttendingLimit
	return Rejectf(
		"An onscreen action can have %d people attending in person. %d of you should "+
			"step back to a passive role, or the action can be marked as preferring "+
			"offscreen resolution. Current attendees: %s",
		AttendingLimit, excess, strings.Join(attendees, ", "))
}

func (a *Action) checkRequirements() error {
	unmet, err := a.UnmetRequirements()
	if err != nil {
		return err
	}
	if len(unmet) == 0 {
		return nil
	}
	lines := make([]string, 0, len(unmet))
	for _, r := range unmet {
		lines = append(lines, r.Describe())
	}
	return Rejectf("You have requirements that are not yet satisfied: %s", strings.Join(lines, "; "))
}

// checkDraftWarning raises the one-time prompt on a draft's first submission
// attempt, listing the assists that would be refunded and deleted.
func (a *Action) checkDraftWarning(sc SubmissionContext) error {
	if a.Status != StatusDraft {
		return nil
	}
	if a.PromptSentAt != nil {
		return nil
	}
	t := sc.Now
	a.PromptSentAt = &t
	var unready []string
	for i := range a.Assists {
		s := &a.Assists[i]
		if s.SubmittedAt != nil {
			continue
		}
		if err := a.ValidateAssistSubmission(s, sc); err != nil {
			unready = append(unready, s.ParticipantID)
		}
	}
	msg := "Before submitting this action, make certain that you have invited everyone " +
		"you wish to help and added any resources necessary. Invited players with " +
		"incomplete assists will have them deleted and refunded."
	if len(unready) > 0 {
		msg += fmt.Sprintf(" The following assistants are not ready and will be deleted: %s.", strings.Join(unready, ", "))
	}
	msg += " When ready, submit the action again."
	return &SubmissionRejectedError{Msg: msg, Warning: true, UnreadyAssists: unready}
}
