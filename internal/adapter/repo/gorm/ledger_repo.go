package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storyforge/internal/adapter/repo/gorm/model"
	"storyforge/internal/domain/story"

	"gorm.io/gorm"
)

// LedgerRepo debits and credits the participant_assets balance row. It runs
// against the ambient transaction, so a failed aggregate save rolls a debit
// back with it. Debits are guarded in SQL: the balance column must still
// cover the amount when the update lands.
type LedgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) LedgerRepo {
	return LedgerRepo{db: db}
}

func (r LedgerRepo) PaySilver(ctx context.Context, participantID string, amount int) error {
	return r.pay(ctx, participantID, story.ResourceSilver, amount)
}

func (r LedgerRepo) GainSilver(ctx context.Context, participantID string, amount int) error {
	return r.gain(ctx, participantID, story.ResourceSilver, amount)
}

func (r LedgerRepo) PayResource(ctx context.Context, participantID string, t story.ResourceType, amount int) error {
	return r.pay(ctx, participantID, t, amount)
}

func (r LedgerRepo) GainResource(ctx context.Context, participantID string, t story.ResourceType, amount int) error {
	return r.gain(ctx, participantID, t, amount)
}

func (r LedgerRepo) PayActionPoints(ctx context.Context, participantID string, amount int) error {
	return r.pay(ctx, participantID, story.ResourceActionPoints, amount)
}

func (r LedgerRepo) GainActionPoints(ctx context.Context, participantID string, amount int) error {
	return r.gain(ctx, participantID, story.ResourceActionPoints, amount)
}

func column(t story.ResourceType) (string, error) {
	switch t {
	case story.ResourceSilver:
		return "silver", nil
	case story.ResourceMilitary:
		return "military", nil
	case story.ResourceEconomic:
		return "economic", nil
	case story.ResourceSocial:
		return "social", nil
	case story.ResourceActionPoints:
		return "action_points", nil
	}
	return "", fmt.Errorf("%w: unknown resource type %q", story.ErrInvariant, t)
}

func (r LedgerRepo) pay(ctx context.Context, participantID string, t story.ResourceType, amount int) error {
	col, err := column(t)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)
	res := db.Model(&model.ParticipantAssets{}).
		Where("participant_id = ? AND "+col+" >= ?", participantID, amount).
		Updates(map[string]any{
			col:          gorm.Expr(col+" - ?", amount),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &story.PaymentError{Resource: t, Amount: amount}
	}
	return nil
}

func (r LedgerRepo) gain(ctx context.Context, participantID string, t story.ResourceType, amount int) error {
	col, err := column(t)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)
	res := db.Model(&model.ParticipantAssets{}).
		Where("participant_id = ?", participantID).
		Updates(map[string]any{
			col:          gorm.Expr(col+" + ?", amount),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// First credit for an unseen participant creates the row.
		m := model.ParticipantAssets{ParticipantID: participantID, UpdatedAt: time.Now()}
		switch t {
		case story.ResourceSilver:
			m.Silver = int64(amount)
		case story.ResourceMilitary:
			m.Military = int64(amount)
		case story.ResourceEconomic:
			m.Economic = int64(amount)
		case story.ResourceSocial:
			m.Social = int64(amount)
		case story.ResourceActionPoints:
			m.ActionPoints = int64(amount)
		}
		if err := db.Create(&m).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return nil
}
