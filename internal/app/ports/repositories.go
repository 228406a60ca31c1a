package ports

import (
	"context"

	"storyforge/internal/domain/story"
)

// ActionRepository persists the whole action aggregate: the action row plus
// its assists, requirements and order handles. SaveWithVersion must reject a
// stale Version with ErrConflict so at most one mutation per action lands.
type ActionRepository interface {
	GetByID(ctx context.Context, id string) (story.Action, error)
	Create(ctx context.Context, a story.Action) error
	SaveWithVersion(ctx context.Context, a story.Action, expectedVersion int64) error
	// Delete hard-removes the aggregate; only cancellation of a
	// never-submitted action reaches this.
	Delete(ctx context.Context, id string) error

	// The per-episode uniqueness lookups return the ids of other submitted
	// actions counted against the limit, excluding excludeID.
	ListSubmittedByOwnerInEpisode(ctx context.Context, ownerID, episodeID, excludeID string) ([]string, error)
	ListSubmittedByOrgInEpisode(ctx context.Context, orgID, episodeID, excludeID string) ([]string, error)
	// RecordEpisodeAction books a submission against the episode, keyed by
	// owner and, for crisis actions, the contributing org; idempotent per
	// action.
	RecordEpisodeAction(ctx context.Context, ownerID, orgID, episodeID, actionID string) error

	// ListResolvedWithoutBeat returns the plot's actions awaiting a
	// resolution batch: pending publish, published or cancelled, no beat yet.
	ListResolvedWithoutBeat(ctx context.Context, plotID string) ([]story.Action, error)
}

type PlotRepository interface {
	GetByID(ctx context.Context, id string) (story.Plot, error)
}

type BeatRepository interface {
	Create(ctx context.Context, beat story.Beat) error
	GetByID(ctx context.Context, id string) (story.Beat, error)
}
