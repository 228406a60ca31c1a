package action

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storyforge/internal/domain/story"
)

func TestSubmit_WarnsOnceThenAdvances(t *testing.T) {
	f := newFixture()
	a := f.createCompleteDraft(t, "player-1")

	_, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: a.ID})
	var rejected *story.SubmissionRejectedError
	if !errors.As(err, &rejected) || !rejected.Warning {
		t.Fatalf("expected first-submit warning, got %v", err)
	}
	if f.get(t, a.ID).PromptSentAt == nil {
		t.Fatalf("warning should persist the prompt marker")
	}

	out, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: a.ID})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if out.Action.Status != story.StatusNeedsGMInput {
		t.Fatalf("expected needs_gm_input, got %s", out.Action.Status)
	}
	if out.Action.SubmittedAt == nil || !out.Action.SubmittedAt.Equal(fixedNow()) {
		t.Fatalf("expected submission stamped at fixed now, got %v", out.Action.SubmittedAt)
	}
	if out.Action.Editable {
		t.Fatalf("submitted action must not stay editable")
	}
	staff := f.rec.StaffNotices()
	if len(staff) != 1 || !strings.Contains(staff[0], "submitted action") {
		t.Fatalf("expected one staff notice about the submission, got %v", staff)
	}
}

func TestSubmit_RepeatSubmitLeavesStateAlone(t *testing.T) {
	f := newFixture()
	a := f.createCompleteDraft(t, "player-1")
	f.submitPastWarning(t, a.ID)
	before := f.get(t, a.ID)

	out, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: a.ID})
	if err != nil {
		t.Fatalf("repeat submit: %v", err)
	}
	if out.Action.Status != story.StatusNeedsGMInput {
		t.Fatalf("repeat submit must not advance status, got %s", out.Action.Status)
	}
	if len(out.RefundedAssists) != 0 {
		t.Fatalf("nothing to sweep on a repeat submit, got %v", out.RefundedAssists)
	}
	after := f.get(t, a.ID)
	if after.SubmittedAt == nil || !after.SubmittedAt.Equal(*before.SubmittedAt) {
		t.Fatalf("submission stamp must not move, got %v then %v", before.SubmittedAt, after.SubmittedAt)
	}
	if staff := f.rec.StaffNotices(); len(staff) != 1 {
		t.Fatalf("staff should hear about the submission once, got %v", staff)
	}
	if bal := f.store.Balance("player-1"); bal != (story.ResourcePool{}) {
		t.Fatalf("repeat submit must not touch the ledger, got %+v", bal)
	}
}

func TestSubmit_EnforcesEpisodeBudget(t *testing.T) {
	f := newFixture()
	first := f.createCompleteDraft(t, "player-1")
	f.submitPastWarning(t, first.ID)

	second := f.createCompleteDraft(t, "player-1")
	_, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: second.ID})
	if !errors.Is(err, story.ErrSubmissionRejected) || !strings.Contains(err.Error(), "already taken an action this episode") {
		t.Fatalf("expected episode budget rejection, got %v", err)
	}

	// A new episode resets the budget.
	f.store.SetCurrentEpisode("episode-2")
	resp := f.submitPastWarning(t, second.ID)
	if resp.Action.Status != story.StatusNeedsGMInput {
		t.Fatalf("expected submit in fresh episode to pass, got %s", resp.Action.Status)
	}
}

func TestSubmit_FreeActionSkipsEpisodeBudget(t *testing.T) {
	f := newFixture()
	first := f.createCompleteDraft(t, "player-1")
	f.submitPastWarning(t, first.ID)

	out, err := f.uc.Create(context.Background(), CreateRequest{OwnerID: "player-1", FreeAction: true})
	if err != nil {
		t.Fatalf("create free action: %v", err)
	}
	if _, err := f.uc.UpdateFields(context.Background(), UpdateFieldsRequest{
		ActionID:  out.Action.ID,
		Narrative: "A quick favor between scenes.",
		OOCIntent: "Minor errand.",
		Summary:   "Run an errand",
		StatUsed:  "charm",
		SkillUsed: "diplomacy",
	}); err != nil {
		t.Fatalf("update fields: %v", err)
	}
	resp := f.submitPastWarning(t, out.Action.ID)
	if resp.Action.Status != story.StatusNeedsGMInput {
		t.Fatalf("expected free action to submit, got %s", resp.Action.Status)
	}
}

func TestSubmit_IncompleteFieldsRejected(t *testing.T) {
	f := newFixture()
	out, err := f.uc.Create(context.Background(), CreateRequest{OwnerID: "player-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = f.uc.Submit(context.Background(), SubmitRequest{ActionID: out.Action.ID})
	if !errors.Is(err, story.ErrSubmissionRejected) || !strings.Contains(err.Error(), "Incomplete fields") {
		t.Fatalf("expected incomplete-fields rejection, got %v", err)
	}
}

func TestSubmit_SweepsUnreadyAssists(t *testing.T) {
	f := newFixture()
	a := f.createCompleteDraft(t, "player-1")
	f.attachAssist(t, a.ID, "helper-ready", true)

	// An unready helper with committed resources gets refunded on the sweep.
	stored := f.get(t, a.ID)
	stored.Assists = append(stored.Assists, story.Assist{
		ID:            "assist-helper-late",
		ActionID:      stored.ID,
		ParticipantID: "helper-late",
		Story:         "I was going to help but never finished writing.",
		Attending:     true,
		Editable:      true,
		Pool:          story.ResourcePool{Military: 100, ActionPoints: 10},
	})
	if err := f.uc.Actions.SaveWithVersion(context.Background(), stored, stored.Version); err != nil {
		t.Fatalf("seed assists: %v", err)
	}

	_, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: a.ID})
	var rejected *story.SubmissionRejectedError
	if !errors.As(err, &rejected) || !rejected.Warning {
		t.Fatalf("expected warning, got %v", err)
	}
	if len(rejected.UnreadyAssists) != 1 || rejected.UnreadyAssists[0] != "helper-late" {
		t.Fatalf("expected helper-late flagged unready, got %v", rejected.UnreadyAssists)
	}

	out, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: a.ID})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if len(out.RefundedAssists) != 1 || out.RefundedAssists[0] != "helper-late" {
		t.Fatalf("expected helper-late refunded, got %v", out.RefundedAssists)
	}
	if len(out.Action.Assists) != 1 || out.Action.Assists[0].ParticipantID != "helper-ready" {
		t.Fatalf("expected only the ready assist to survive, got %v", out.Action.Assists)
	}
	if out.Action.Assists[0].SubmittedAt == nil {
		t.Fatalf("surviving assist should be submitted by the sweep")
	}
	if bal := f.store.Balance("helper-late"); bal.Military != 100 || bal.ActionPoints != 10 {
		t.Fatalf("expected refund of 100 military and 10 ap, got %+v", bal)
	}
	if notes := f.rec.For("helper-late"); len(notes) != 1 || !strings.Contains(notes[0], "refunded") {
		t.Fatalf("expected refund notice for helper-late, got %v", notes)
	}
}

func TestSubmit_ResubmitClosesPlayerInputRound(t *testing.T) {
	f := newFixture()
	a := f.createCompleteDraft(t, "player-1")
	f.submitPastWarning(t, a.ID)

	stored := f.get(t, a.ID)
	stored.ReopenForPlayer()
	if err := f.uc.Actions.SaveWithVersion(context.Background(), stored, stored.Version); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	out, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: a.ID})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if out.Action.Status != story.StatusNeedsGMInput {
		t.Fatalf("expected resubmit to return to the review queue, got %s", out.Action.Status)
	}
	found := false
	for _, msg := range f.rec.StaffNotices() {
		if strings.Contains(msg, "resubmitted") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a resubmission staff notice, got %v", f.rec.StaffNotices())
	}
}

func TestSubmit_TerminalActionRejected(t *testing.T) {
	f := newFixture()
	a := f.createCompleteDraft(t, "player-1")
	stored := f.get(t, a.ID)
	stored.MarkPublished("")
	if err := f.uc.Actions.SaveWithVersion(context.Background(), stored, stored.Version); err != nil {
		t.Fatalf("seed published: %v", err)
	}

	_, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: a.ID})
	if !errors.Is(err, story.ErrSubmissionRejected) {
		t.Fatalf("expected terminal rejection, got %v", err)
	}
}
