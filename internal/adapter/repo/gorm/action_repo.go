package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storyforge/internal/adapter/repo/gorm/model"
	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"

	"gorm.io/gorm"
)

// ActionRepo persists the action aggregate across four tables. Child rows
// carry no version of their own; the version column on the action row guards
// the whole aggregate, and saves rewrite the children under that guard.
type ActionRepo struct {
	db *gorm.DB
}

func NewActionRepo(db *gorm.DB) ActionRepo {
	return ActionRepo{db: db}
}

func (r ActionRepo) GetByID(ctx context.Context, id string) (story.Action, error) {
	db := getDBFromCtx(ctx, r.db)

	var m model.Action
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return story.Action{}, ports.ErrNotFound
		}
		return story.Action{}, err
	}

	var assists []model.Assist
	if err := db.Where("action_id = ?", id).Order("id").Find(&assists).Error; err != nil {
		return story.Action{}, err
	}
	var reqs []model.Requirement
	if err := db.Where("action_id = ?", id).Order("id").Find(&reqs).Error; err != nil {
		return story.Action{}, err
	}
	var orders []model.ArmyOrder
	if err := db.Where("action_id = ?", id).Order("id").Find(&orders).Error; err != nil {
		return story.Action{}, err
	}

	return toDomainAction(m, assists, reqs, orders)
}

func (r ActionRepo) Create(ctx context.Context, a story.Action) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := toModelAction(a)
	if err != nil {
		return err
	}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	return r.writeChildren(db, a)
}

func (r ActionRepo) SaveWithVersion(ctx context.Context, a story.Action, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := toModelAction(a)
	if err != nil {
		return err
	}

	res := db.Model(&model.Action{}).
		Where("id = ? AND version = ?", a.ID, expectedVersion).
		Updates(map[string]any{
			"org_id":           m.OrgID,
			"plot_id":          m.PlotID,
			"beat_id":          m.BeatID,
			"status":           m.Status,
			"editable":         m.Editable,
			"attending":        m.Attending,
			"prefer_offscreen": m.PreferOffscreen,
			"free_action":      m.FreeAction,
			"narrative":        m.Narrative,
			"ooc_intent":       m.OocIntent,
			"summary":          m.Summary,
			"stat_used":        m.StatUsed,
			"skill_used":       m.SkillUsed,
			"target_tier":      m.TargetTier,
			"outcome":          m.Outcome,
			"resolver_notes":   m.ResolverNotes,
			"silver":           m.Silver,
			"military":         m.Military,
			"economic":         m.Economic,
			"social":           m.Social,
			"action_points":    m.ActionPoints,
			"tuning":           m.Tuning,
			"submitted_at":     m.SubmittedAt,
			"prompt_sent_at":   m.PromptSentAt,
			"version":          m.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}

	// The version check above already serialized us; rewriting the children
	// wholesale is simpler than diffing them.
	for _, table := range []any{&model.Assist{}, &model.Requirement{}, &model.ArmyOrder{}} {
		if err := db.Where("action_id = ?", a.ID).Delete(table).Error; err != nil {
			return err
		}
	}
	return r.writeChildren(db, a)
}

func (r ActionRepo) Delete(ctx context.Context, id string) error {
	db := getDBFromCtx(ctx, r.db)
	for _, table := range []any{&model.Assist{}, &model.Requirement{}, &model.ArmyOrder{}, &model.EpisodeAction{}} {
		if err := db.Where("action_id = ?", id).Delete(table).Error; err != nil {
			return err
		}
	}
	return db.Where("id = ?", id).Delete(&model.Action{}).Error
}

func (r ActionRepo) ListSubmittedByOwnerInEpisode(ctx context.Context, ownerID, episodeID, excludeID string) ([]string, error) {
	var ids []string
	err := getDBFromCtx(ctx, r.db).
		Model(&model.EpisodeAction{}).
		Where("owner_id = ? AND episode_id = ? AND action_id <> ?", ownerID, episodeID, excludeID).
		Pluck("action_id", &ids).Error
	return ids, err
}

func (r ActionRepo) ListSubmittedByOrgInEpisode(ctx context.Context, orgID, episodeID, excludeID string) ([]string, error) {
	var ids []string
	err := getDBFromCtx(ctx, r.db).
		Model(&model.EpisodeAction{}).
		Where("org_id = ? AND episode_id = ? AND action_id <> ?", orgID, episodeID, excludeID).
		Pluck("action_id", &ids).Error
	return ids, err
}

func (r ActionRepo) RecordEpisodeAction(ctx context.Context, ownerID, orgID, episodeID, actionID string) error {
	db := getDBFromCtx(ctx, r.db)
	var count int64
	if err := db.Model(&model.EpisodeAction{}).Where("action_id = ?", actionID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&model.EpisodeAction{
		ActionID:  actionID,
		OwnerID:   ownerID,
		OrgID:     orgID,
		EpisodeID: episodeID,
		CreatedAt: time.Now(),
	}).Error
}

func (r ActionRepo) ListResolvedWithoutBeat(ctx context.Context, plotID string) ([]story.Action, error) {
	db := getDBFromCtx(ctx, r.db)
	var ids []string
	err := db.Model(&model.Action{}).
		Where("plot_id = ? AND beat_id = '' AND status IN ?", plotID,
			[]string{string(story.StatusPendingPublish), string(story.StatusPublished), string(story.StatusCancelled)}).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	out := make([]story.Action, 0, len(ids))
	for _, id := range ids {
		a, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r ActionRepo) writeChildren(db *gorm.DB, a story.Action) error {
	if len(a.Assists) > 0 {
		rows := make([]model.Assist, 0, len(a.Assists))
		for _, s := range a.Assists {
			rows = append(rows, model.Assist{
				ID:            s.ID,
				ActionID:      a.ID,
				ParticipantID: s.ParticipantID,
				Story:         s.Story,
				OocIntent:     s.OOCIntent,
				Summary:       s.Summary,
				StatUsed:      s.StatUsed,
				SkillUsed:     s.SkillUsed,
				Attending:     s.Attending,
				Editable:      s.Editable,
				Silver:        int64(s.Pool.Silver),
				Military:      int64(s.Pool.Military),
				Economic:      int64(s.Pool.Economic),
				Social:        int64(s.Pool.Social),
				ActionPoints:  int64(s.Pool.ActionPoints),
				SubmittedAt:   s.SubmittedAt,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(a.Requirements) > 0 {
		rows := make([]model.Requirement, 0, len(a.Requirements))
		for _, q := range a.Requirements {
			rows = append(rows, model.Requirement{
				ID:            q.ID,
				ActionID:      a.ID,
				Kind:          string(q.Kind),
				TotalRequired: int64(q.TotalRequired),
				MaxRate:       int64(q.MaxRate),
				WeeklyTotal:   int64(q.WeeklyTotal),
				EntityID:      q.EntityID,
				FulfilledBy:   q.FulfilledBy,
				Text:          q.Text,
				Explanation:   q.Explanation,
				BeatID:        q.BeatID,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(a.Orders) > 0 {
		rows := make([]model.ArmyOrder, 0, len(a.Orders))
		for _, o := range a.Orders {
			rows = append(rows, model.ArmyOrder{
				ID:       o.ID,
				ActionID: a.ID,
				AssistID: o.AssistID,
				ArmyID:   o.ArmyID,
				Complete: o.Complete,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func toModelAction(a story.Action) (model.Action, error) {
	tuning, err := json.Marshal(a.Tuning)
	if err != nil {
		return model.Action{}, err
	}
	return model.Action{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		OrgID:           a.OrgID,
		PlotID:          a.PlotID,
		BeatID:          a.BeatID,
		Status:          string(a.Status),
		Editable:        a.Editable,
		Attending:       a.Attending,
		PreferOffscreen: a.PreferOffscreen,
		FreeAction:      a.FreeAction,
		Narrative:       a.Narrative,
		OocIntent:       a.OOCIntent,
		Summary:         a.Summary,
		StatUsed:        a.StatUsed,
		SkillUsed:       a.SkillUsed,
		TargetTier:      a.TargetTier,
		Outcome:         a.Outcome,
		ResolverNotes:   a.ResolverNotes,
		Silver:          int64(a.Pool.Silver),
		Military:        int64(a.Pool.Military),
		Economic:        int64(a.Pool.Economic),
		Social:          int64(a.Pool.Social),
		ActionPoints:    int64(a.Pool.ActionPoints),
		Tuning:          tuning,
		SubmittedAt:     a.SubmittedAt,
		PromptSentAt:    a.PromptSentAt,
		Version:         a.Version,
	}, nil
}

func toDomainAction(m model.Action, assists []model.Assist, reqs []model.Requirement, orders []model.ArmyOrder) (story.Action, error) {
	var tuning story.RollTuning
	if len(m.Tuning) > 0 {
		if err := json.Unmarshal(m.Tuning, &tuning); err != nil {
			return story.Action{}, err
		}
	}

	a := story.Action{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		OrgID:           m.OrgID,
		PlotID:          m.PlotID,
		BeatID:          m.BeatID,
		Status:          story.Status(m.Status),
		Editable:        m.Editable,
		Attending:       m.Attending,
		PreferOffscreen: m.PreferOffscreen,
		FreeAction:      m.FreeAction,
		Narrative:       m.Narrative,
		OOCIntent:       m.OocIntent,
		Summary:         m.Summary,
		StatUsed:        m.StatUsed,
		SkillUsed:       m.SkillUsed,
		TargetTier:      m.TargetTier,
		Outcome:         m.Outcome,
		ResolverNotes:   m.ResolverNotes,
		Pool: story.ResourcePool{
			Silver:       int(m.Silver),
			Military:     int(m.Military),
			Economic:     int(m.Economic),
			Social:       int(m.Social),
			ActionPoints: int(m.ActionPoints),
		},
		Tuning:       tuning,
		SubmittedAt:  m.SubmittedAt,
		PromptSentAt: m.PromptSentAt,
		Version:      m.Version,
	}

	for _, s := range assists {
		a.Assists = append(a.Assists, story.Assist{
			ID:            s.ID,
			ActionID:      s.ActionID,
			ParticipantID: s.ParticipantID,
			Story:         s.Story,
			OOCIntent:     s.OocIntent,
			Summary:       s.Summary,
			StatUsed:      s.StatUsed,
			SkillUsed:     s.SkillUsed,
			Attending:     s.Attending,
			Editable:      s.Editable,
			Pool: story.ResourcePool{
				Silver:       int(s.Silver),
				Military:     int(s.Military),
				Economic:     int(s.Economic),
				Social:       int(s.Social),
				ActionPoints: int(s.ActionPoints),
			},
			SubmittedAt: s.SubmittedAt,
		})
	}
	for _, q := range reqs {
		a.Requirements = append(a.Requirements, story.Requirement{
			ID:            q.ID,
			ActionID:      q.ActionID,
			Kind:          story.RequirementKind(q.Kind),
			TotalRequired: int(q.TotalRequired),
			MaxRate:       int(q.MaxRate),
			WeeklyTotal:   int(q.WeeklyTotal),
			EntityID:      q.EntityID,
			FulfilledBy:   q.FulfilledBy,
			Text:          q.Text,
			Explanation:   q.Explanation,
			BeatID:        q.BeatID,
		})
	}
	for _, o := range orders {
		a.Orders = append(a.Orders, story.OrderHandle{
			ID:       o.ID,
			ArmyID:   o.ArmyID,
			AssistID: o.AssistID,
			Complete: o.Complete,
		})
	}
	return a, nil
}
