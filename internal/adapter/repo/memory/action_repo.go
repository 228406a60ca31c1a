package memory

import (
	"context"
	"sort"

	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"
)

type ActionRepo struct {
	store *Store
}

func NewActionRepo(store *Store) ActionRepo {
	return ActionRepo{store: store}
}

func (r ActionRepo) GetByID(_ context.Context, id string) (story.Action, error) {
	a, ok := r.store.actions[id]
	if !ok {
		return story.Action{}, ports.ErrNotFound
	}
	return cloneAction(a), nil
}

func (r ActionRepo) Create(_ context.Context, a story.Action) error {
	if _, ok := r.store.actions[a.ID]; ok {
		return ports.ErrConflict
	}
	r.store.actions[a.ID] = cloneAction(a)
	return nil
}

func (r ActionRepo) SaveWithVersion(_ context.Context, a story.Action, expectedVersion int64) error {
	current, ok := r.store.actions[a.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.actions[a.ID] = cloneAction(a)
	return nil
}

func (r ActionRepo) Delete(_ context.Context, id string) error {
	delete(r.store.actions, id)
	delete(r.store.bookings, id)
	return nil
}

func (r ActionRepo) ListSubmittedByOwnerInEpisode(_ context.Context, ownerID, episodeID, excludeID string) ([]string, error) {
	var ids []string
	for actionID, b := range r.store.bookings {
		if actionID == excludeID {
			continue
		}
		if b.OwnerID == ownerID && b.EpisodeID == episodeID {
			ids = append(ids, actionID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r ActionRepo) ListSubmittedByOrgInEpisode(_ context.Context, orgID, episodeID, excludeID string) ([]string, error) {
	var ids []string
	for actionID, b := range r.store.bookings {
		if actionID == excludeID {
			continue
		}
		if b.OrgID == orgID && b.EpisodeID == episodeID {
			ids = append(ids, actionID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r ActionRepo) RecordEpisodeAction(_ context.Context, ownerID, orgID, episodeID, actionID string) error {
	if _, ok := r.store.bookings[actionID]; ok {
		return nil
	}
	r.store.bookings[actionID] = episodeBooking{OwnerID: ownerID, OrgID: orgID, EpisodeID: episodeID}
	return nil
}

func (r ActionRepo) ListResolvedWithoutBeat(_ context.Context, plotID string) ([]story.Action, error) {
	var out []story.Action
	for _, a := range r.store.actions {
		if a.PlotID != plotID || a.BeatID != "" {
			continue
		}
		switch a.Status {
		case story.StatusPendingPublish, story.StatusPublished, story.StatusCancelled:
			out = append(out, cloneAction(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
