package models

import "time"

// PageBatch is the set of records parsed from a single catalog page. Pages
// are always kept whole: a batch is appended to a run in its entirety or not
// at all.
type PageBatch []*Record

// AggregationRun accumulates the outcome of one multi-page collection pass.
// Records only ever grows; a run that stops early still carries everything
// gathered up to the stop.
type AggregationRun struct {
	Category     string
	TargetCount  int
	Records      []*Record
	PagesVisited int
	RowFailures  int
	Duplicates   int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Append adds a full page batch to the run.
func (run *AggregationRun) Append(batch PageBatch) {
	run.Records = append(run.Records, batch...)
}

// ReachedTarget reports whether the run holds at least TargetCount records.
// A non-positive target means unbounded collection.
func (run *AggregationRun) ReachedTarget() bool {
	return run.TargetCount > 0 && len(run.Records) >= run.TargetCount
}

// Duration reports wall time of the run.
func (run *AggregationRun) Duration() time.Duration {
	return run.FinishedAt.Sub(run.StartedAt)
}
