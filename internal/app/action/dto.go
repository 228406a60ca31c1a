package action

import "storyforge/internal/domain/story"

type CreateRequest struct {
	OwnerID         string `json:"owner_id"`
	PlotID          string `json:"plot_id,omitempty"`
	OrgID           string `json:"org_id,omitempty"`
	FreeAction      bool   `json:"free_action,omitempty"`
	PreferOffscreen bool   `json:"prefer_offscreen,omitempty"`
}

type CreateResponse struct {
	Action story.Action `json:"action"`
}

// UpdateFieldsRequest patches the owner-editable fields; empty strings leave
// a field untouched.
type UpdateFieldsRequest struct {
	ActionID        string `json:"action_id"`
	Narrative       string `json:"narrative,omitempty"`
	OOCIntent       string `json:"ooc_intent,omitempty"`
	Summary         string `json:"summary,omitempty"`
	StatUsed        string `json:"stat_used,omitempty"`
	SkillUsed       string `json:"skill_used,omitempty"`
	PreferOffscreen *bool  `json:"prefer_offscreen,omitempty"`
	// Attending flips whether the owner is physically in the scene; joining
	// onscreen re-runs the crowd check.
	Attending *bool `json:"attending,omitempty"`
}

type SubmitRequest struct {
	ActionID string `json:"action_id"`
}

type SubmitResponse struct {
	Action story.Action `json:"action"`
	// RefundedAssists lists helpers whose incomplete assists were cancelled
	// and refunded during this submit.
	RefundedAssists []string `json:"refunded_assists,omitempty"`
}

type CancelRequest struct {
	ActionID string `json:"action_id"`
}

type CancelResponse struct {
	// Deleted is true when the never-submitted action was hard-removed
	// instead of soft-cancelled.
	Deleted bool `json:"deleted"`
}

type PublishRequest struct {
	ActionID      string `json:"action_id"`
	ResolverID    string `json:"resolver_id,omitempty"`
	Outcome       string `json:"outcome,omitempty"`
	ResolverNotes string `json:"resolver_notes,omitempty"`
	BeatID        string `json:"beat_id,omitempty"`
	// Defer parks the action as pending publish so the next resolution batch
	// flushes it.
	Defer bool `json:"defer,omitempty"`
}

type PublishResponse struct {
	Action story.Action `json:"action"`
}
