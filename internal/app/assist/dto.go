package assist

// InviteRequest asks to join an action as a helper.
type InviteRequest struct {
	ActionID      string `json:"action_id"`
	ParticipantID string `json:"participant_id"`
}

type InviteResponse struct {
	AssistID string `json:"assist_id"`
}

// SetStoryRequest records or replaces the helper's in-character text.
// The first time a helper writes story text they pay the assist
// action-point cost, if one is configured.
type SetStoryRequest struct {
	ActionID      string `json:"action_id"`
	ParticipantID string `json:"participant_id"`
	Story         string `json:"story"`
	OOCIntent     string `json:"ooc_intent"`
	Summary       string `json:"summary"`
	StatUsed      string `json:"stat_used"`
	SkillUsed     string `json:"skill_used"`
}

type SetStoryResponse struct {
	AssistID string `json:"assist_id"`
}

type SubmitRequest struct {
	ActionID      string `json:"action_id"`
	ParticipantID string `json:"participant_id"`
}

type SubmitResponse struct {
	AssistID    string `json:"assist_id"`
	SubmittedAt string `json:"submitted_at"`
}

type CancelRequest struct {
	ActionID      string `json:"action_id"`
	ParticipantID string `json:"participant_id"`
}

type CancelResponse struct {
	Refunded bool `json:"refunded"`
}

type ToggleAttendanceRequest struct {
	ActionID      string `json:"action_id"`
	ParticipantID string `json:"participant_id"`
	Attending     bool   `json:"attending"`
}

type ToggleAttendanceResponse struct {
	Attending bool `json:"attending"`
}
