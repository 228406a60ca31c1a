package action

import (
	"context"
	"testing"
	"time"

	"storyforge/internal/adapter/notify"
	"storyforge/internal/adapter/repo/memory"
	"storyforge/internal/app/shared/keylock"
	"storyforge/internal/domain/story"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

type fixture struct {
	store *memory.Store
	rec   *notify.Recorder
	uc    UseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	rec := notify.NewRecorder()
	uc := UseCase{
		TxManager: memory.NewTxManager(store),
		Locks:     keylock.New(),
		Actions:   memory.NewActionRepo(store),
		Plots:     memory.NewPlotRepo(store),
		Ledger:    memory.NewLedgerRepo(store),
		Episodes:  memory.NewEpisodeRepo(store),
		Notifier:  rec,
		Now:       fixedNow,
	}
	return &fixture{store: store, rec: rec, uc: uc}
}

// createCompleteDraft opens a draft and fills in every required field so a
// submit passes the completeness check.
func (f *fixture) createCompleteDraft(t *testing.T, ownerID string) story.Action {
	t.Helper()
	out, err := f.uc.Create(context.Background(), CreateRequest{OwnerID: ownerID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	a, err := f.uc.UpdateFields(context.Background(), UpdateFieldsRequest{
		ActionID:  out.Action.ID,
		Narrative: "I scale the wall under cover of darkness.",
		OOCIntent: "Get inside without raising the alarm.",
		Summary:   "Sneak into the keep",
		StatUsed:  "dexterity",
		SkillUsed: "stealth",
	})
	if err != nil {
		t.Fatalf("update fields: %v", err)
	}
	return a
}

// submitPastWarning runs the two submits a fresh draft needs: the first
// consumes the one-time prompt, the second goes through.
func (f *fixture) submitPastWarning(t *testing.T, actionID string) SubmitResponse {
	t.Helper()
	if _, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: actionID}); err == nil {
		t.Fatalf("expected first submit to raise the warning")
	}
	out, err := f.uc.Submit(context.Background(), SubmitRequest{ActionID: actionID})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	return out
}

func (f *fixture) get(t *testing.T, actionID string) story.Action {
	t.Helper()
	a, err := f.uc.Actions.GetByID(context.Background(), actionID)
	if err != nil {
		t.Fatalf("get action %s: %v", actionID, err)
	}
	return a
}

// attachAssist splices a helper directly into the stored aggregate, filled
// in or not depending on ready.
func (f *fixture) attachAssist(t *testing.T, actionID, participantID string, ready bool) {
	t.Helper()
	a := f.get(t, actionID)
	s := story.Assist{
		ID:            "assist-" + participantID,
		ActionID:      a.ID,
		ParticipantID: participantID,
		Attending:     true,
		Editable:      true,
	}
	if ready {
		s.Story = "I keep watch from the rooftops."
		s.OOCIntent = "Cover the approach."
		s.Summary = "Overwatch"
		s.StatUsed = "perception"
		s.SkillUsed = "survival"
	}
	a.Assists = append(a.Assists, s)
	if err := f.uc.Actions.SaveWithVersion(context.Background(), a, a.Version); err != nil {
		t.Fatalf("seed assist: %v", err)
	}
}
