package ports

import (
	"context"

	"storyforge/internal/domain/story"
)

// ArmyDirectory resolves armies by id or exact name and dispatches orders
// binding an army to an action. Resolve returns ErrNotFound for unknown
// armies.
type ArmyDirectory interface {
	Resolve(ctx context.Context, idOrName string) (story.Army, error)
	DispatchOrders(ctx context.Context, army story.Army, participantID, actionID, assistID string) (story.OrderHandle, error)
}

// OrgDirectory answers faction membership for crisis assist eligibility.
type OrgDirectory interface {
	IsActiveMember(ctx context.Context, orgID, participantID string) (bool, error)
}

// EpisodeDirectory supplies the current period id. Callers thread it into
// every period-scoped check; the engine never reads it from ambient state.
type EpisodeDirectory interface {
	CurrentEpisode(ctx context.Context) (string, error)
}

// TraitDirectory exposes the acting character's raw proficiency numbers.
type TraitDirectory interface {
	StatValue(ctx context.Context, participantID, stat string) (int, error)
	SkillValue(ctx context.Context, participantID, skill string) (int, error)
	KnackLevel(ctx context.Context, participantID, stat, skill string) (int, error)
}

// OutcomeTables weights raw proficiency values and maps a roll total against
// a target tier to a discrete outcome.
type OutcomeTables interface {
	WeightStat(value int) int
	WeightSkill(value int) int
	WeightKnack(level int) int
	ResolveTier(total int, targetTier string) (string, error)
}

// NotificationSink is fire-and-forget: implementations swallow their own
// failures, the core never blocks on delivery.
type NotificationSink interface {
	Notify(ctx context.Context, participantID, text string)
	NotifyStaff(ctx context.Context, text string)
}
