package inmemory

import "sync"

type Snapshot struct {
	OperationTotal     uint64            `json:"operation_total"`
	OperationSuccess   uint64            `json:"operation_success"`
	OperationConflict  uint64            `json:"operation_conflict"`
	OperationRejection uint64            `json:"operation_rejection"`
	OperationFailure   uint64            `json:"operation_failure"`
	ByOperation        map[string]uint64 `json:"by_operation"`
}

type Recorder struct {
	mu        sync.Mutex
	success   uint64
	conflict  uint64
	rejection uint64
	failure   uint64
	byOp      map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOp: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOp[op]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordRejection() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejection++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		OperationSuccess:   r.success,
		OperationConflict:  r.conflict,
		OperationRejection: r.rejection,
		OperationFailure:   r.failure,
		OperationTotal:     r.success + r.conflict + r.rejection + r.failure,
		ByOperation:        make(map[string]uint64, len(r.byOp)),
	}
	for k, v := range r.byOp {
		out.ByOperation[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
