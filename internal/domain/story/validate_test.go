package story

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func completeAction() *Action {
	return &Action{
		ID:        "a1",
		OwnerID:   "player-1",
		Status:    StatusDraft,
		Editable:  true,
		Attending: true,
		Narrative: "we ride at dawn",
		OOCIntent: "take the bridge",
		Summary:   "bridge assault",
		StatUsed:  "command",
		SkillUsed: "war",
	}
}

func TestValidateSubmission_IncompleteFields(t *testing.T) {
	a := completeAction()
	a.Summary = ""
	a.SkillUsed = ""

	err := a.ValidateSubmission(SubmissionContext{Now: time.Now()})
	if !errors.Is(err, ErrSubmissionRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if !strings.Contains(err.Error(), "tldr") || !strings.Contains(err.Error(), "roll") {
		t.Fatalf("expected missing field names in %q", err.Error())
	}
}

func TestValidateSubmission_PlotResolvedAndDeadline(t *testing.T) {
	a := completeAction()
	a.PromptSentAt = &time.Time{}

	resolved := &Plot{ID: "p1", Name: "The Siege", Resolved: true}
	err := a.ValidateSubmission(SubmissionContext{Now: time.Now(), Plot: resolved})
	if !errors.Is(err, ErrSubmissionRejected) || !strings.Contains(err.Error(), "resolved") {
		t.Fatalf("expected resolved rejection, got %v", err)
	}

	past := time.Now().Add(-time.Hour)
	expired := &Plot{ID: "p1", Name: "The Siege", EndDate: &past}
	err = a.ValidateSubmission(SubmissionContext{Now: time.Now(), Plot: expired})
	if !errors.Is(err, ErrSubmissionRejected) || !strings.Contains(err.Error(), "deadline") {
		t.Fatalf("expected deadline rejection, got %v", err)
	}
}

func TestValidateSubmission_EditRoundSkipsWindowCheck(t *testing.T) {
	a := completeAction()
	a.Status = StatusNeedsPlayerInput
	past := time.Now().Add(-time.Hour)
	expired := &Plot{ID: "p1", Name: "The Siege", EndDate: &past}

	if err := a.ValidateSubmission(SubmissionContext{Now: time.Now(), Plot: expired}); err != nil {
		t.Fatalf("staff-mandated edits should pass the window check, got %v", err)
	}
}

func TestValidateSubmission_EpisodeBusy(t *testing.T) {
	a := completeAction()
	a.PromptSentAt = &time.Time{}
	sc := SubmissionContext{Now: time.Now(), PriorActionIDs: []string{"a0"}}

	err := a.ValidateSubmission(sc)
	if !errors.Is(err, ErrSubmissionRejected) || !strings.Contains(err.Error(), "already taken an action") {
		t.Fatalf("expected busy rejection, got %v", err)
	}

	a.FreeAction = true
	if err := a.ValidateSubmission(sc); err != nil {
		t.Fatalf("free actions are exempt, got %v", err)
	}
}

func TestValidateSubmission_CrisisNeedsOrg(t *testing.T) {
	a := completeAction()
	a.PromptSentAt = &time.Time{}
	crisis := &Plot{ID: "p1", Name: "The Flood", Kind: PlotCrisis}

	err := a.ValidateSubmission(SubmissionContext{Now: time.Now(), Plot: crisis})
	if !errors.Is(err, ErrSubmissionRejected) || !strings.Contains(err.Error(), "org") {
		t.Fatalf("expected org rejection, got %v", err)
	}

	a.OrgID = "org-1"
	err = a.ValidateSubmission(SubmissionContext{Now: time.Now(), Plot: crisis, PriorActionIDs: []string{"a0"}})
	if !errors.Is(err, ErrSubmissionRejected) || !strings.Contains(err.Error(), "Org has already") {
		t.Fatalf("expected org busy rejection, got %v", err)
	}
}

func TestValidateSubmission_Overcrowd(t *testing.T) {
	a := completeAction()
	a.PromptSentAt = &time.Time{}
	for i := 0; i < AttendingLimit; i++ {
		a.Assists = append(a.Assists, Assist{
			ID:            fmt.Sprintf("s%d", i),
			ParticipantID: fmt.Sprintf("helper-%d", i),
			Story:         "present",
			Attending:     true,
		})
	}

	// Owner plus five attending assists is one over the limit.
	err := a.ValidateSubmission(SubmissionContext{Now: time.Now()})
	if !errors.Is(err, ErrSubmissionRejected) || !strings.Contains(err.Error(), "onscreen") {
		t.Fatalf("expected crowd rejection, got %v", err)
	}

	a.PreferOffscreen = true
	if err := a.ValidateSubmission(SubmissionContext{Now: time.Now()}); err != nil {
		t.Fatalf("offscreen preference lifts the cap, got %v", err)
	}
}

func TestValidateSubmission_UnmetRequirementsBlock(t *testing.T) {
	a := completeAction()
	a.PromptSentAt = &time.Time{}
	a.Requirements = []Requirement{{ID: "r1", Kind: ReqSilver, TotalRequired: 1000}}

	err := a.ValidateSubmission(SubmissionContext{Now: time.Now()})
	if !errors.Is(err, ErrSubmissionRejected) || !strings.Contains(err.Error(), "not yet satisfied") {
		t.Fatalf("expected requirement rejection, got %v", err)
	}
}

func TestValidateSubmission_DraftWarningOnce(t *testing.T) {
	a := completeAction()
	a.Assists = []Assist{{ID: "s1", ParticipantID: "helper-1"}}
	now := time.Now()

	err := a.ValidateSubmission(SubmissionContext{Now: now})
	var rejected *SubmissionRejectedError
	if !errors.As(err, &rejected) || !rejected.Warning {
		t.Fatalf("expected one-time warning, got %v", err)
	}
	if len(rejected.UnreadyAssists) != 1 || rejected.UnreadyAssists[0] != "helper-1" {
		t.Fatalf("expected helper-1 flagged unready, got %v", rejected.UnreadyAssists)
	}
	if a.PromptSentAt == nil {
		t.Fatalf("warning must stamp the prompt marker")
	}

	if err := a.ValidateSubmission(SubmissionContext{Now: now}); err != nil {
		t.Fatalf("second submit should pass the warning, got %v", err)
	}
}

func TestValidateAssistSubmission(t *testing.T) {
	a := completeAction()
	s := &Assist{ID: "s1", ParticipantID: "helper-1"}
	err := a.ValidateAssistSubmission(s, SubmissionContext{Now: time.Now()})
	if !errors.Is(err, ErrSubmissionRejected) {
		t.Fatalf("expected incomplete rejection, got %v", err)
	}

	s.Story = "i hold the flank"
	s.OOCIntent = "protect the owner"
	s.Summary = "flank guard"
	s.StatUsed = "dexterity"
	s.SkillUsed = "melee"
	if err := a.ValidateAssistSubmission(s, SubmissionContext{Now: time.Now()}); err != nil {
		t.Fatalf("complete assist should pass, got %v", err)
	}
}
