package beat

// CreateRequest opens a resolution batch on a plot. Every resolved action on
// the plot that is not yet tied to a batch gets attached; actions parked as
// pending publish are published with the new batch as their beat.
type CreateRequest struct {
	PlotID    string `json:"plot_id"`
	Summary   string `json:"summary"`
	StaffNote string `json:"staff_note,omitempty"`
}

type CreateResponse struct {
	BeatID    string   `json:"beat_id"`
	Published []string `json:"published,omitempty"`
	Linked    []string `json:"linked,omitempty"`
}
