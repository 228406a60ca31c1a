package story

import "time"

func (a *Action) Submitted() bool {
	return a.SubmittedAt != nil
}

// TotalSpent is the action's own counter plus every assist's counter for the
// type; requirement checks always read this, never a single pool.
func (a *Action) TotalSpent(t ResourceType) int {
	total := a.Pool.Amount(t)
	for i := range a.Assists {
		total += a.Assists[i].Pool.Amount(t)
	}
	return total
}

func (a *Action) Assist(participantID string) *Assist {
	for i := range a.Assists {
		if a.Assists[i].ParticipantID == participantID {
			return &a.Assists[i]
		}
	}
	return nil
}

func (a *Action) AssistByID(id string) *Assist {
	for i := range a.Assists {
		if a.Assists[i].ID == id {
			return &a.Assists[i]
		}
	}
	return nil
}

func (a *Action) RemoveAssist(id string) {
	for i := range a.Assists {
		if a.Assists[i].ID == id {
			a.Assists = append(a.Assists[:i], a.Assists[i+1:]...)
			return
		}
	}
}

// Attendees counts everyone physically present: the owner plus every assist,
// minus anyone flagged offscreen. An invited helper who has not written yet
// still takes up a spot in the scene.
func (a *Action) Attendees() []string {
	var out []string
	if a.Attending {
		out = append(out, a.OwnerID)
	}
	for i := range a.Assists {
		if a.Assists[i].Attending {
			out = append(out, a.Assists[i].ParticipantID)
		}
	}
	return out
}

// EditableParticipants lists who still has an open edit window.
func (a *Action) EditableParticipants() []string {
	var out []string
	if a.Editable {
		out = append(out, a.OwnerID)
	}
	for i := range a.Assists {
		if a.Assists[i].Editable {
			out = append(out, a.Assists[i].ParticipantID)
		}
	}
	return out
}

// MarkSubmitted stamps the submission timestamp once and closes the owner's
// edit window.
func (a *Action) MarkSubmitted(now time.Time) {
	if a.SubmittedAt == nil {
		t := now
		a.SubmittedAt = &t
	}
	a.Editable = false
}

func (s *Assist) MarkSubmitted(now time.Time) {
	if s.SubmittedAt == nil {
		t := now
		s.SubmittedAt = &t
	}
	s.Editable = false
}

// ReopenForPlayer forces the action back to the players, typically because a
// new requirement landed.
func (a *Action) ReopenForPlayer() {
	a.Status = StatusNeedsPlayerInput
	a.Editable = true
}

// MarkPublished locks the action and completes any pending army orders.
func (a *Action) MarkPublished(beatID string) {
	a.Status = StatusPublished
	a.Editable = false
	if beatID != "" {
		a.BeatID = beatID
	}
	for i := range a.Orders {
		a.Orders[i].Complete = true
	}
}

// RefundPlan lists the non-zero refunds owed for a pool: effort points first,
// then the capital types, then currency.
type RefundEntry struct {
	Resource ResourceType
	Amount   int
}

func (p ResourcePool) RefundPlan() []RefundEntry {
	var out []RefundEntry
	for _, t := range []ResourceType{ResourceActionPoints, ResourceMilitary, ResourceEconomic, ResourceSocial, ResourceSilver} {
		if amt := p.Amount(t); amt > 0 {
			out = append(out, RefundEntry{Resource: t, Amount: amt})
		}
	}
	return out
}
