package resolve

// SetDifficultyRequest pins the target tier the roll will be judged against.
type SetDifficultyRequest struct {
	ActionID   string `json:"action_id"`
	TargetTier string `json:"target_tier"`
}

type SetDifficultyResponse struct {
	TargetTier string `json:"target_tier"`
}

type RollRequest struct {
	ActionID string `json:"action_id"`
}

type RollResponse struct {
	Total   int    `json:"total"`
	Outcome string `json:"outcome"`
}
