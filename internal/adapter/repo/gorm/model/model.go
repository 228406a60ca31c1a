// Package model holds the table mappings for the postgres adapter. Column
// names follow gorm's snake_case convention; anything structured that the
// engine never filters on is stored as jsonb.
package model

import "time"

type Action struct {
	ID              string `gorm:"primaryKey"`
	OwnerID         string `gorm:"index"`
	OrgID           string
	PlotID          string `gorm:"index"`
	BeatID          string
	Status          string
	Editable        bool
	Attending       bool
	PreferOffscreen bool
	FreeAction      bool
	Narrative       string
	OocIntent       string
	Summary         string
	StatUsed        string
	SkillUsed       string
	TargetTier      string
	Outcome         string
	ResolverNotes   string
	Silver          int64
	Military        int64
	Economic        int64
	Social          int64
	ActionPoints    int64
	Tuning          []byte `gorm:"type:jsonb"`
	SubmittedAt     *time.Time
	PromptSentAt    *time.Time
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Action) TableName() string { return "actions" }

type Assist struct {
	ID            string `gorm:"primaryKey"`
	ActionID      string `gorm:"index"`
	ParticipantID string
	Story         string
	OocIntent     string
	Summary       string
	StatUsed      string
	SkillUsed     string
	Attending     bool
	Editable      bool
	Silver        int64
	Military      int64
	Economic      int64
	Social        int64
	ActionPoints  int64
	SubmittedAt   *time.Time
}

func (Assist) TableName() string { return "assists" }

type Requirement struct {
	ID            string `gorm:"primaryKey"`
	ActionID      string `gorm:"index"`
	Kind          string
	TotalRequired int64
	MaxRate       int64
	WeeklyTotal   int64
	EntityID      string
	FulfilledBy   string
	Text          string
	Explanation   string
	BeatID        string
}

func (Requirement) TableName() string { return "requirements" }

type ArmyOrder struct {
	ID       string `gorm:"primaryKey"`
	ActionID string `gorm:"index"`
	AssistID string
	ArmyID   string
	Complete bool
}

func (ArmyOrder) TableName() string { return "army_orders" }

type Plot struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	Kind     string
	Resolved bool
	EndDate  *time.Time
}

func (Plot) TableName() string { return "plots" }

type Beat struct {
	ID        string `gorm:"primaryKey"`
	PlotID    string `gorm:"index"`
	EpisodeID string
	Summary   string
	StaffNote string
	CreatedAt time.Time
}

func (Beat) TableName() string { return "beats" }

// EpisodeAction books one submission against the once-per-episode budget.
type EpisodeAction struct {
	ActionID  string `gorm:"primaryKey"`
	OwnerID   string `gorm:"index"`
	OrgID     string `gorm:"index"`
	EpisodeID string
	CreatedAt time.Time
}

func (EpisodeAction) TableName() string { return "episode_actions" }

// ParticipantAssets is the spendable-balance row the ledger debits and
// credits.
type ParticipantAssets struct {
	ParticipantID string `gorm:"primaryKey"`
	Silver        int64
	Military      int64
	Economic      int64
	Social        int64
	ActionPoints  int64
	UpdatedAt     time.Time
}

func (ParticipantAssets) TableName() string { return "participant_assets" }

type Army struct {
	ID      string `gorm:"primaryKey"`
	Name    string `gorm:"index"`
	OwnerID string
}

func (Army) TableName() string { return "armies" }

type OrgMember struct {
	OrgID         string `gorm:"primaryKey"`
	ParticipantID string `gorm:"primaryKey"`
	Active        bool
}

func (OrgMember) TableName() string { return "org_members" }

// Episode rows mark play periods; the open one has no finished_at.
type Episode struct {
	ID         string `gorm:"primaryKey"`
	Name       string
	StartedAt  time.Time
	FinishedAt *time.Time
}

func (Episode) TableName() string { return "episodes" }

// ParticipantTrait is one raw proficiency number: kind is "stat" or "skill".
type ParticipantTrait struct {
	ParticipantID string `gorm:"primaryKey"`
	Kind          string `gorm:"primaryKey"`
	Name          string `gorm:"primaryKey"`
	Value         int64
}

func (ParticipantTrait) TableName() string { return "participant_traits" }

// ParticipantKnack is a practiced stat-and-skill pairing.
type ParticipantKnack struct {
	ParticipantID string `gorm:"primaryKey"`
	Stat          string `gorm:"primaryKey"`
	Skill         string `gorm:"primaryKey"`
	Level         int64
}

func (ParticipantKnack) TableName() string { return "participant_knacks" }
