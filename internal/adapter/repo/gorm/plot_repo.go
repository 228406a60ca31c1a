package gormrepo

import (
	"context"
	"errors"

	"storyforge/internal/adapter/repo/gorm/model"
	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"

	"gorm.io/gorm"
)

type PlotRepo struct {
	db *gorm.DB
}

func NewPlotRepo(db *gorm.DB) PlotRepo {
	return PlotRepo{db: db}
}

func (r PlotRepo) GetByID(ctx context.Context, id string) (story.Plot, error) {
	var m model.Plot
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return story.Plot{}, ports.ErrNotFound
		}
		return story.Plot{}, err
	}
	return story.Plot{
		ID:       m.ID,
		Name:     m.Name,
		Kind:     story.PlotKind(m.Kind),
		Resolved: m.Resolved,
		EndDate:  m.EndDate,
	}, nil
}
