package gormrepo

import (
	"context"
	"errors"

	"storyforge/internal/adapter/repo/gorm/model"
	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"

	"gorm.io/gorm"
)

type BeatRepo struct {
	db *gorm.DB
}

func NewBeatRepo(db *gorm.DB) BeatRepo {
	return BeatRepo{db: db}
}

func (r BeatRepo) Create(ctx context.Context, beat story.Beat) error {
	return getDBFromCtx(ctx, r.db).Create(&model.Beat{
		ID:        beat.ID,
		PlotID:    beat.PlotID,
		EpisodeID: beat.EpisodeID,
		Summary:   beat.Summary,
		StaffNote: beat.StaffNote,
		CreatedAt: beat.CreatedAt,
	}).Error
}

func (r BeatRepo) GetByID(ctx context.Context, id string) (story.Beat, error) {
	var m model.Beat
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return story.Beat{}, ports.ErrNotFound
		}
		return story.Beat{}, err
	}
	return story.Beat{
		ID:        m.ID,
		PlotID:    m.PlotID,
		EpisodeID: m.EpisodeID,
		Summary:   m.Summary,
		StaffNote: m.StaffNote,
		CreatedAt: m.CreatedAt,
	}, nil
}
