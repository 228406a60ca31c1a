package memory

import (
	"context"

	"github.com/google/uuid"

	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"
)

type ArmyRepo struct {
	store *Store
}

func NewArmyRepo(store *Store) ArmyRepo {
	return ArmyRepo{store: store}
}

func (r ArmyRepo) Resolve(_ context.Context, idOrName string) (story.Army, error) {
	if a, ok := r.store.armies[idOrName]; ok {
		return a, nil
	}
	for _, a := range r.store.armies {
		if a.Name == idOrName {
			return a, nil
		}
	}
	return story.Army{}, ports.ErrNotFound
}

func (r ArmyRepo) DispatchOrders(_ context.Context, army story.Army, participantID, actionID, assistID string) (story.OrderHandle, error) {
	return story.OrderHandle{
		ID:       uuid.NewString(),
		ArmyID:   army.ID,
		AssistID: assistID,
	}, nil
}

type OrgRepo struct {
	store *Store
}

func NewOrgRepo(store *Store) OrgRepo {
	return OrgRepo{store: store}
}

func (r OrgRepo) IsActiveMember(_ context.Context, orgID, participantID string) (bool, error) {
	return r.store.orgMembers[memberKey(orgID, participantID)], nil
}

type EpisodeRepo struct {
	store *Store
}

func NewEpisodeRepo(store *Store) EpisodeRepo {
	return EpisodeRepo{store: store}
}

func (r EpisodeRepo) CurrentEpisode(_ context.Context) (string, error) {
	return r.store.currentEpisode, nil
}

type TraitRepo struct {
	store *Store
}

func NewTraitRepo(store *Store) TraitRepo {
	return TraitRepo{store: store}
}

func (r TraitRepo) StatValue(_ context.Context, participantID, stat string) (int, error) {
	return r.store.traits[traitKey(participantID, "stat", stat)], nil
}

func (r TraitRepo) SkillValue(_ context.Context, participantID, skill string) (int, error) {
	return r.store.traits[traitKey(participantID, "skill", skill)], nil
}

func (r TraitRepo) KnackLevel(_ context.Context, participantID, stat, skill string) (int, error) {
	return r.store.knacks[traitKey(participantID, stat, skill)], nil
}
