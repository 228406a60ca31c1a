package requirement

// AddRequest attaches a staff-set requirement to an action. Resource kinds
// take an amount and an optional weekly rate cap; forces and event kinds take
// free text describing what is needed; entity kinds take the entity id.
type AddRequest struct {
	ActionID string `json:"action_id"`
	Kind     string `json:"kind"`
	Amount   int    `json:"amount,omitempty"`
	MaxRate  int    `json:"max_rate,omitempty"`
	EntityID string `json:"entity_id,omitempty"`
	Text     string `json:"text,omitempty"`
}

type AddResponse struct {
	RequirementID string `json:"requirement_id"`
	Created       bool   `json:"created"`
}

// FulfillRequest is a participant's attempt to satisfy a requirement.
// Resource kinds read Amount; forces kinds read ArmyID; event kinds read
// BeatID; entity kinds need only the matching EntityID.
type FulfillRequest struct {
	ActionID      string `json:"action_id"`
	ParticipantID string `json:"participant_id"`
	Kind          string `json:"kind"`
	Amount        int    `json:"amount,omitempty"`
	EntityID      string `json:"entity_id,omitempty"`
	ArmyID        string `json:"army_id,omitempty"`
	BeatID        string `json:"beat_id,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
}

type FulfillResponse struct {
	RequirementID string `json:"requirement_id"`
	Met           bool   `json:"met"`
	Progress      string `json:"progress,omitempty"`
}
