package ports

import (
	"context"

	"storyforge/internal/domain/story"
)

// ParticipantLedger is the capability to move resources against a
// participant's external holdings. Pay calls return *story.PaymentError when
// the participant cannot afford the amount; Gain calls never fail for
// balance reasons. The engine holds participant ids, never live participant
// objects.
type ParticipantLedger interface {
	PaySilver(ctx context.Context, participantID string, amount int) error
	GainSilver(ctx context.Context, participantID string, amount int) error
	PayResource(ctx context.Context, participantID string, t story.ResourceType, amount int) error
	GainResource(ctx context.Context, participantID string, t story.ResourceType, amount int) error
	PayActionPoints(ctx context.Context, participantID string, amount int) error
	GainActionPoints(ctx context.Context, participantID string, amount int) error
}
