package story

import "fmt"

type RequirementKind string

const (
	ReqSilver       RequirementKind = "silver"
	ReqMilitary     RequirementKind = "military"
	ReqEconomic     RequirementKind = "economic"
	ReqSocial       RequirementKind = "social"
	ReqActionPoints RequirementKind = "action_points"
	ReqClue         RequirementKind = "clue"
	ReqRevelation   RequirementKind = "revelation"
	ReqSkillNode    RequirementKind = "skill_node"
	ReqSpell        RequirementKind = "spell"
	ReqItem         RequirementKind = "item"
	ReqForces       RequirementKind = "forces"
	ReqEvent        RequirementKind = "event"
)

func RequirementKinds() []RequirementKind {
	return []RequirementKind{
		ReqSilver, ReqMilitary, ReqEconomic, ReqSocial, ReqActionPoints,
		ReqClue, ReqRevelation, ReqSkillNode, ReqSpell, ReqItem,
		ReqForces, ReqEvent,
	}
}

// ParseRequirementKind accepts the aliases players actually type.
func ParseRequirementKind(s string) (RequirementKind, bool) {
	switch s {
	case "silver":
		return ReqSilver, true
	case "military", "military resources":
		return ReqMilitary, true
	case "economic", "economic resources":
		return ReqEconomic, true
	case "social", "social resources":
		return ReqSocial, true
	case "ap", "action points", "action_points":
		return ReqActionPoints, true
	case "clue":
		return ReqClue, true
	case "revelation":
		return ReqRevelation, true
	case "skillnode", "skill_node", "skill node":
		return ReqSkillNode, true
	case "spell":
		return ReqSpell, true
	case "item":
		return ReqItem, true
	case "army", "forces":
		return ReqForces, true
	case "event", "rfr":
		return ReqEvent, true
	}
	return "", false
}

func (k RequirementKind) IsResource() bool {
	switch k {
	case ReqSilver, ReqMilitary, ReqEconomic, ReqSocial, ReqActionPoints:
		return true
	}
	return false
}

// IsEntity reports the kinds fulfilled by naming an owned entity; duplicates
// on the same entity id collapse to one requirement.
func (k RequirementKind) IsEntity() bool {
	switch k {
	case ReqClue, ReqRevelation, ReqSkillNode, ReqSpell, ReqItem:
		return true
	}
	return false
}

func (k RequirementKind) IsText() bool {
	return k == ReqForces || k == ReqEvent
}

func (k RequirementKind) Resource() (ResourceType, bool) {
	switch k {
	case ReqSilver:
		return ResourceSilver, true
	case ReqMilitary:
		return ResourceMilitary, true
	case ReqEconomic:
		return ResourceEconomic, true
	case ReqSocial:
		return ResourceSocial, true
	case ReqActionPoints:
		return ResourceActionPoints, true
	}
	return "", false
}

// Requirement gates publication of an action. Resource kinds are met by
// amounts; every other kind is met by its fulfillment marker, never by amount.
type Requirement struct {
	ID            string          `json:"id"`
	ActionID      string          `json:"action_id"`
	Kind          RequirementKind `json:"kind"`
	TotalRequired int             `json:"total_required,omitempty"`
	MaxRate       int             `json:"max_rate,omitempty"`
	WeeklyTotal   int             `json:"weekly_total,omitempty"`
	EntityID      string          `json:"entity_id,omitempty"`
	FulfilledBy   string          `json:"fulfilled_by,omitempty"`
	Text          string          `json:"text,omitempty"`
	Explanation   string          `json:"explanation,omitempty"`
	BeatID        string          `json:"beat_id,omitempty"`
}

// MetFor reports whether the requirement is satisfied on the given action.
func (r Requirement) MetFor(a *Action) (bool, error) {
	if r.Kind.IsEntity() {
		return r.FulfilledBy != "", nil
	}
	switch r.Kind {
	case ReqEvent:
		return r.BeatID != "", nil
	case ReqForces:
		return len(a.Orders) > 0, nil
	}
	rt, ok := r.Kind.Resource()
	if !ok {
		return false, fmt.Errorf("%w: unknown requirement kind %q", ErrInvariant, r.Kind)
	}
	return a.TotalSpent(rt) >= r.TotalRequired, nil
}

func (r Requirement) ExceedsWeeklyRate(amount int) bool {
	if r.MaxRate <= 0 {
		return false
	}
	return r.WeeklyTotal+amount > r.MaxRate
}

// Progress renders the running totals the way rejection messages embed them.
func (r Requirement) Progress(a *Action) string {
	rt, ok := r.Kind.Resource()
	if !ok {
		if r.FulfilledBy != "" {
			return "Fulfilled by: " + r.FulfilledBy
		}
		return "Fulfilled by: no one yet"
	}
	msg := ""
	if r.MaxRate > 0 {
		msg = fmt.Sprintf("Current Week: %d/%d, ", r.WeeklyTotal, r.MaxRate)
	}
	return msg + fmt.Sprintf("Progress: %d/%d", a.TotalSpent(rt), r.TotalRequired)
}

// Describe names the requirement for player-facing notices.
func (r Requirement) Describe() string {
	if rt, ok := r.Kind.Resource(); ok {
		msg := fmt.Sprintf("%s: %d", rt, r.TotalRequired)
		if r.MaxRate > 0 {
			msg += fmt.Sprintf(" (max per week: %d)", r.MaxRate)
		}
		return msg
	}
	if r.Kind.IsText() {
		return fmt.Sprintf("%s: %s", r.Kind, r.Text)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.EntityID)
}

// FindRequirement returns the open resource/text requirement for the kind, or
// for entity kinds the first one matching the entity id. First match wins when
// duplicates exist.
func (a *Action) FindRequirement(kind RequirementKind, entityID string) *Requirement {
	for i := range a.Requirements {
		r := &a.Requirements[i]
		if r.Kind != kind {
			continue
		}
		if kind.IsEntity() && r.EntityID != entityID {
			continue
		}
		return r
	}
	return nil
}

func (a *Action) RequirementsOfKind(kind RequirementKind) []*Requirement {
	var out []*Requirement
	for i := range a.Requirements {
		if a.Requirements[i].Kind == kind {
			out = append(out, &a.Requirements[i])
		}
	}
	return out
}

// UnmetRequirements returns every attached requirement that is not satisfied.
func (a *Action) UnmetRequirements() ([]*Requirement, error) {
	var unmet []*Requirement
	for i := range a.Requirements {
		met, err := a.Requirements[i].MetFor(a)
		if err != nil {
			return nil, err
		}
		if !met {
			unmet = append(unmet, &a.Requirements[i])
		}
	}
	return unmet, nil
}

// AttachRequirement gets-or-creates a requirement for the kind (and entity id
// for entity kinds) and reports whether it was newly created. Attaching always
// reopens the action for player edits; the caller handles that transition.
func (a *Action) AttachRequirement(id string, kind RequirementKind, entityID string) (*Requirement, bool) {
	if existing := a.FindRequirement(kind, entityID); existing != nil {
		return existing, false
	}
	a.Requirements = append(a.Requirements, Requirement{
		ID:       id,
		ActionID: a.ID,
		Kind:     kind,
		EntityID: entityID,
	})
	return &a.Requirements[len(a.Requirements)-1], true
}
