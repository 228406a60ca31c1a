package memory

import (
	"context"

	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"
)

type PlotRepo struct {
	store *Store
}

func NewPlotRepo(store *Store) PlotRepo {
	return PlotRepo{store: store}
}

func (r PlotRepo) GetByID(_ context.Context, id string) (story.Plot, error) {
	p, ok := r.store.plots[id]
	if !ok {
		return story.Plot{}, ports.ErrNotFound
	}
	return p, nil
}

type BeatRepo struct {
	store *Store
}

func NewBeatRepo(store *Store) BeatRepo {
	return BeatRepo{store: store}
}

func (r BeatRepo) Create(_ context.Context, beat story.Beat) error {
	if _, ok := r.store.beats[beat.ID]; ok {
		return ports.ErrConflict
	}
	r.store.beats[beat.ID] = beat
	return nil
}

func (r BeatRepo) GetByID(_ context.Context, id string) (story.Beat, error) {
	b, ok := r.store.beats[id]
	if !ok {
		return story.Beat{}, ports.ErrNotFound
	}
	return b, nil
}
