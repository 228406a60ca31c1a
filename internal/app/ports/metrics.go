package ports

type ActionMetrics interface {
	RecordSuccess(op string)
	RecordConflict()
	RecordRejection()
	RecordFailure()
}
