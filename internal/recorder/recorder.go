package recorder

import "time"

// RunRecord is the audit row written after each pipeline run. Write-only
// history for later inspection; never read back by a run.
type RunRecord struct {
	Symbol   string
	BarDate  time.Time
	Close    float64
	RSI      float64
	Signal   string
	Notified bool
}

// Recorder persists run history.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
