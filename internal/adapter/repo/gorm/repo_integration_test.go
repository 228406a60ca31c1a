package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("STORYFORGE_DB_DSN")
	if dsn == "" {
		t.Skip("STORYFORGE_DB_DSN is required for integration test")
	}
	return dsn
}

func TestActionRepo_AggregateRoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	actionID := "it-action-roundtrip"
	_ = db.Exec("DELETE FROM assists WHERE action_id = ?", actionID).Error
	_ = db.Exec("DELETE FROM requirements WHERE action_id = ?", actionID).Error
	_ = db.Exec("DELETE FROM army_orders WHERE action_id = ?", actionID).Error
	_ = db.Exec("DELETE FROM actions WHERE id = ?", actionID).Error

	repo := NewActionRepo(db)
	now := time.Now().UTC().Truncate(time.Second)
	seed := story.Action{
		ID:        actionID,
		OwnerID:   "it-owner",
		Status:    story.StatusDraft,
		Editable:  true,
		Attending: true,
		Narrative: "we march at dawn",
		Pool:      story.ResourcePool{Silver: 500, Military: 20},
		Tuning:    story.DefaultRollTuning(),
		Assists: []story.Assist{{
			ID:            actionID + "-assist",
			ActionID:      actionID,
			ParticipantID: "it-helper",
			Story:         "i scout ahead",
			Attending:     true,
			Editable:      true,
			Pool:          story.ResourcePool{Economic: 30},
			SubmittedAt:   &now,
		}},
		Requirements: []story.Requirement{{
			ID:            actionID + "-req",
			ActionID:      actionID,
			Kind:          story.ReqSilver,
			TotalRequired: 1000,
			MaxRate:       200,
			WeeklyTotal:   150,
		}},
		Orders: []story.OrderHandle{{
			ID:     actionID + "-order",
			ArmyID: "it-army",
		}},
		Version: 1,
	}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, actionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Pool.Silver != 500 || got.Pool.Military != 20 {
		t.Fatalf("pool mismatch: %+v", got.Pool)
	}
	if len(got.Assists) != 1 || got.Assists[0].Pool.Economic != 30 {
		t.Fatalf("assists mismatch: %+v", got.Assists)
	}
	if got.Assists[0].SubmittedAt == nil {
		t.Fatalf("expected assist submitted_at to survive")
	}
	if len(got.Requirements) != 1 || got.Requirements[0].WeeklyTotal != 150 {
		t.Fatalf("requirements mismatch: %+v", got.Requirements)
	}
	if got.Tuning.Silver.Divisor != story.DefaultSilverDivisor {
		t.Fatalf("tuning mismatch: %+v", got.Tuning)
	}

	got.Status = story.StatusNeedsGMInput
	expected := got.Version
	got.Version++
	if err := repo.SaveWithVersion(ctx, got, expected); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, got, expected); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
}

func TestLedgerRepo_PayAndRefund(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	participantID := "it-ledger"
	_ = db.Exec("DELETE FROM participant_assets WHERE participant_id = ?", participantID).Error

	ledger := NewLedgerRepo(db)
	if err := ledger.GainSilver(ctx, participantID, 300); err != nil {
		t.Fatalf("gain: %v", err)
	}
	if err := ledger.PaySilver(ctx, participantID, 200); err != nil {
		t.Fatalf("pay: %v", err)
	}

	err = ledger.PaySilver(ctx, participantID, 200)
	var pe *story.PaymentError
	if !errors.As(err, &pe) {
		t.Fatalf("expected payment error on overdraft, got %v", err)
	}
	if !errors.Is(err, story.ErrPayment) {
		t.Fatalf("expected payment sentinel, got %v", err)
	}
}
