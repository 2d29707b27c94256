package inmemory

import (
	"maps"
	"sync"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"
)

type Snapshot struct {
	TransformTotal    uint64            `json:"transform_total"`
	TransformAccepted uint64            `json:"transform_accepted"`
	TransformRejected uint64            `json:"transform_rejected"`
	SaveFailures      uint64            `json:"save_failures"`
	ByOperation       map[string]uint64 `json:"by_operation"`
	ByRejectReason    map[string]uint64 `json:"by_reject_reason"`
}

type Recorder struct {
	mu        sync.Mutex
	accepted  uint64
	rejected  uint64
	saveFails uint64
	byOp      map[string]uint64
	byReason  map[string]uint64
}

var _ ports.TransformMetrics = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		byOp:     map[string]uint64{},
		byReason: map[string]uint64{},
	}
}

func (r *Recorder) RecordAccepted(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted++
	r.byOp[op]++
}

func (r *Recorder) RecordRejected(op string, reason player.RejectReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byOp[op]++
	r.byReason[string(reason)]++
}

func (r *Recorder) RecordSaveFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveFails++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		TransformAccepted: r.accepted,
		TransformRejected: r.rejected,
		TransformTotal:    r.accepted + r.rejected,
		SaveFailures:      r.saveFails,
		ByOperation:       maps.Clone(r.byOp),
		ByRejectReason:    maps.Clone(r.byReason),
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
