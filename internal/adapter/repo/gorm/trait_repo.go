package gormrepo

import (
	"context"
	"errors"

	"storyforge/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

// TraitRepo reads raw proficiency numbers. A participant without a recorded
// trait simply rolls it at zero.
type TraitRepo struct {
	db *gorm.DB
}

func NewTraitRepo(db *gorm.DB) TraitRepo {
	return TraitRepo{db: db}
}

func (r TraitRepo) StatValue(ctx context.Context, participantID, stat string) (int, error) {
	return r.traitValue(ctx, participantID, "stat", stat)
}

func (r TraitRepo) SkillValue(ctx context.Context, participantID, skill string) (int, error) {
	return r.traitValue(ctx, participantID, "skill", skill)
}

func (r TraitRepo) KnackLevel(ctx context.Context, participantID, stat, skill string) (int, error) {
	var m model.ParticipantKnack
	err := getDBFromCtx(ctx, r.db).
		Where("participant_id = ? AND stat = ? AND skill = ?", participantID, stat, skill).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return int(m.Level), nil
}

func (r TraitRepo) traitValue(ctx context.Context, participantID, kind, name string) (int, error) {
	var m model.ParticipantTrait
	err := getDBFromCtx(ctx, r.db).
		Where("participant_id = ? AND kind = ? AND name = ?", participantID, kind, name).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return int(m.Value), nil
}
