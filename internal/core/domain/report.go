package domain

// ResourceUpdate is a notification drained from the cache's update queue.
// The set of update kinds is closed to this package but may grow.
type ResourceUpdate interface {
	resourceUpdate()
}

// AnalyzeResourceReport reports the validity of a resource after analysis.
type AnalyzeResourceReport struct {
	ID    string
	Valid bool
}

func (AnalyzeResourceReport) resourceUpdate() {}
