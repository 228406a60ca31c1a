package notify

import (
	"context"
	"sync"
)

// Recorder captures notices for tests.
type Recorder struct {
	mu    sync.Mutex
	Sent  map[string][]string
	Staff []string
}

func NewRecorder() *Recorder {
	return &Recorder{Sent: make(map[string][]string)}
}

func (r *Recorder) Notify(_ context.Context, participantID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sent[participantID] = append(r.Sent[participantID], text)
}

func (r *Recorder) NotifyStaff(_ context.Context, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Staff = append(r.Staff, text)
}

func (r *Recorder) For(participantID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Sent[participantID]...)
}

func (r *Recorder) StaffNotices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Staff...)
}
