package gormrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storyforge/internal/adapter/repo/gorm/model"
	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"

	"gorm.io/gorm"
)

// ArmyRepo resolves armies by id first, then by exact name, and writes the
// order rows a forces requirement dispatches.
type ArmyRepo struct {
	db *gorm.DB
}

func NewArmyRepo(db *gorm.DB) ArmyRepo {
	return ArmyRepo{db: db}
}

func (r ArmyRepo) Resolve(ctx context.Context, idOrName string) (story.Army, error) {
	db := getDBFromCtx(ctx, r.db)
	var m model.Army
	err := db.Where("id = ?", idOrName).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("name = ?", idOrName).First(&m).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return story.Army{}, ports.ErrNotFound
		}
		return story.Army{}, err
	}
	return story.Army{ID: m.ID, Name: m.Name, OwnerID: m.OwnerID}, nil
}

func (r ArmyRepo) DispatchOrders(ctx context.Context, army story.Army, participantID, actionID, assistID string) (story.OrderHandle, error) {
	handle := story.OrderHandle{
		ID:       uuid.NewString(),
		ArmyID:   army.ID,
		AssistID: assistID,
	}
	err := getDBFromCtx(ctx, r.db).Create(&model.ArmyOrder{
		ID:       handle.ID,
		ActionID: actionID,
		AssistID: assistID,
		ArmyID:   army.ID,
	}).Error
	if err != nil {
		return story.OrderHandle{}, err
	}
	return handle, nil
}
