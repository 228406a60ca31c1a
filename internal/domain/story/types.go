package story

import "time"

type Status string

const (
	StatusDraft            Status = "draft"
	StatusNeedsPlayerInput Status = "needs_player_input"
	StatusNeedsGMInput     Status = "needs_gm_input"
	StatusCancelled        Status = "cancelled"
	StatusPendingPublish   Status = "pending_publish"
	StatusPublished        Status = "published"
)

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusPublished
}

type ResourceType string

const (
	ResourceSilver       ResourceType = "silver"
	ResourceMilitary     ResourceType = "military"
	ResourceEconomic     ResourceType = "economic"
	ResourceSocial       ResourceType = "social"
	ResourceActionPoints ResourceType = "action_points"
)

func ResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceSilver,
		ResourceMilitary,
		ResourceEconomic,
		ResourceSocial,
		ResourceActionPoints,
	}
}

func IsResourceType(t ResourceType) bool {
	for _, rt := range ResourceTypes() {
		if t == rt {
			return true
		}
	}
	return false
}

// ResourcePool is the per-participant ledger of amounts already committed to
// an action or assist, one counter per resource type.
type ResourcePool struct {
	Silver       int `json:"silver"`
	Military     int `json:"military"`
	Economic     int `json:"economic"`
	Social       int `json:"social"`
	ActionPoints int `json:"action_points"`
}

func (p ResourcePool) Amount(t ResourceType) int {
	switch t {
	case ResourceSilver:
		return p.Silver
	case ResourceMilitary:
		return p.Military
	case ResourceEconomic:
		return p.Economic
	case ResourceSocial:
		return p.Social
	case ResourceActionPoints:
		return p.ActionPoints
	}
	return 0
}

func (p *ResourcePool) Add(t ResourceType, amount int) {
	switch t {
	case ResourceSilver:
		p.Silver += amount
	case ResourceMilitary:
		p.Military += amount
	case ResourceEconomic:
		p.Economic += amount
	case ResourceSocial:
		p.Social += amount
	case ResourceActionPoints:
		p.ActionPoints += amount
	}
}

func (p ResourcePool) Empty() bool {
	return p.Silver == 0 && p.Military == 0 && p.Economic == 0 && p.Social == 0 && p.ActionPoints == 0
}

// PointCost converts committed resources into roll points: Divisor resources
// buy one point, Cap bounds the points from that source. Cap 0 disables the
// source entirely.
type PointCost struct {
	Divisor int `json:"divisor"`
	Cap     int `json:"cap"`
}

type RollTuning struct {
	Silver             PointCost `json:"silver"`
	Military           PointCost `json:"military"`
	Economic           PointCost `json:"economic"`
	Social             PointCost `json:"social"`
	ActionPoints       PointCost `json:"action_points"`
	Assists            PointCost `json:"assists"`
	AdditionalModifier int       `json:"additional_modifier"`
}

// OrderHandle records army orders dispatched for this action. Forces
// requirements check order existence, publish marks them complete.
type OrderHandle struct {
	ID       string `json:"id"`
	ArmyID   string `json:"army_id"`
	AssistID string `json:"assist_id,omitempty"`
	Complete bool   `json:"complete"`
}

type Action struct {
	ID              string        `json:"id"`
	OwnerID         string        `json:"owner_id"`
	OrgID           string        `json:"org_id,omitempty"`
	PlotID          string        `json:"plot_id,omitempty"`
	BeatID          string        `json:"beat_id,omitempty"`
	Status          Status        `json:"status"`
	Editable        bool          `json:"editable"`
	Attending       bool          `json:"attending"`
	PreferOffscreen bool          `json:"prefer_offscreen"`
	FreeAction      bool          `json:"free_action"`
	Narrative       string        `json:"narrative"`
	OOCIntent       string        `json:"ooc_intent"`
	Summary         string        `json:"summary"`
	StatUsed        string        `json:"stat_used"`
	SkillUsed       string        `json:"skill_used"`
	TargetTier      string        `json:"target_tier,omitempty"`
	Outcome         string        `json:"outcome,omitempty"`
	ResolverNotes   string        `json:"resolver_notes,omitempty"`
	Pool            ResourcePool  `json:"pool"`
	Tuning          RollTuning    `json:"tuning"`
	Orders          []OrderHandle `json:"orders,omitempty"`
	Assists         []Assist      `json:"assists,omitempty"`
	Requirements    []Requirement `json:"requirements,omitempty"`
	SubmittedAt     *time.Time    `json:"submitted_at,omitempty"`
	PromptSentAt    *time.Time    `json:"prompt_sent_at,omitempty"`
	Version         int64         `json:"version"`
}

// Assist is a second participant's contribution to exactly one action.
// Status and plot binding are derived from the parent, never stored here.
type Assist struct {
	ID            string       `json:"id"`
	ActionID      string       `json:"action_id"`
	ParticipantID string       `json:"participant_id"`
	Story         string       `json:"story"`
	OOCIntent     string       `json:"ooc_intent"`
	Summary       string       `json:"summary"`
	StatUsed      string       `json:"stat_used"`
	SkillUsed     string       `json:"skill_used"`
	Attending     bool         `json:"attending"`
	Pool          ResourcePool `json:"pool"`
	SubmittedAt   *time.Time   `json:"submitted_at,omitempty"`
	Editable      bool         `json:"editable"`
}

type PlotKind string

const (
	PlotCrisis        PlotKind = "crisis"
	PlotGMRun         PlotKind = "gm_plot"
	PlotPlayerRun     PlotKind = "player_run"
	PlotPitch         PlotKind = "pitch"
	PlotPersonalStory PlotKind = "personal_story"
)

// Plot is the read-side view of the container an action belongs to; only the
// fields that gate submission are carried here.
type Plot struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Kind     PlotKind   `json:"kind"`
	Resolved bool       `json:"resolved"`
	EndDate  *time.Time `json:"end_date,omitempty"`
}

type Beat struct {
	ID        string    `json:"id"`
	PlotID    string    `json:"plot_id"`
	EpisodeID string    `json:"episode_id,omitempty"`
	Summary   string    `json:"summary"`
	StaffNote string    `json:"staff_note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Army struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id,omitempty"`
}
