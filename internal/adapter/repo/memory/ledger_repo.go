package memory

import (
	"context"

	"storyforge/internal/domain/story"
)

type LedgerRepo struct {
	store *Store
}

func NewLedgerRepo(store *Store) LedgerRepo {
	return LedgerRepo{store: store}
}

func (r LedgerRepo) PaySilver(ctx context.Context, participantID string, amount int) error {
	return r.pay(participantID, story.ResourceSilver, amount)
}

func (r LedgerRepo) GainSilver(ctx context.Context, participantID string, amount int) error {
	return r.gain(participantID, story.ResourceSilver, amount)
}

func (r LedgerRepo) PayResource(ctx context.Context, participantID string, t story.ResourceType, amount int) error {
	return r.pay(participantID, t, amount)
}

func (r LedgerRepo) GainResource(ctx context.Context, participantID string, t story.ResourceType, amount int) error {
	return r.gain(participantID, t, amount)
}

func (r LedgerRepo) PayActionPoints(ctx context.Context, participantID string, amount int) error {
	return r.pay(participantID, story.ResourceActionPoints, amount)
}

func (r LedgerRepo) GainActionPoints(ctx context.Context, participantID string, amount int) error {
	return r.gain(participantID, story.ResourceActionPoints, amount)
}

func (r LedgerRepo) pay(participantID string, t story.ResourceType, amount int) error {
	p, ok := r.store.balances[participantID]
	if !ok || p.Amount(t) < amount {
		return &story.PaymentError{Resource: t, Amount: amount}
	}
	p.Add(t, -amount)
	return nil
}

func (r LedgerRepo) gain(participantID string, t story.ResourceType, amount int) error {
	p, ok := r.store.balances[participantID]
	if !ok {
		p = &story.ResourcePool{}
		r.store.balances[participantID] = p
	}
	p.Add(t, amount)
	return nil
}
