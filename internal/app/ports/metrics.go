package ports

import "hugoland/internal/domain/player"

type TransformMetrics interface {
	RecordAccepted(op string)
	RecordRejected(op string, reason player.RejectReason)
	RecordSaveFailure()
}
