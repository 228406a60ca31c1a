package gormrepo

import (
	"context"
	"errors"

	"storyforge/internal/adapter/repo/gorm/model"
	"storyforge/internal/app/ports"

	"gorm.io/gorm"
)

type OrgRepo struct {
	db *gorm.DB
}

func NewOrgRepo(db *gorm.DB) OrgRepo {
	return OrgRepo{db: db}
}

func (r OrgRepo) IsActiveMember(ctx context.Context, orgID, participantID string) (bool, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).
		Model(&model.OrgMember{}).
		Where("org_id = ? AND participant_id = ? AND active", orgID, participantID).
		Count(&count).Error
	return count > 0, err
}

// EpisodeRepo answers the current play period: the newest episode without a
// finish mark.
type EpisodeRepo struct {
	db *gorm.DB
}

func NewEpisodeRepo(db *gorm.DB) EpisodeRepo {
	return EpisodeRepo{db: db}
}

func (r EpisodeRepo) CurrentEpisode(ctx context.Context) (string, error) {
	var m model.Episode
	err := getDBFromCtx(ctx, r.db).
		Where("finished_at IS NULL").
		Order("started_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	return m.ID, nil
}
