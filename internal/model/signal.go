package model

import "time"

// Signal is the three-state trading signal derived from RSI.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// AnalysisResult is the output of one pipeline run. Derived once,
// never mutated, used only to build the notification text.
type AnalysisResult struct {
	Symbol string
	Date   time.Time
	Close  float64
	RSI    float64 // 0..100
	Signal Signal

	// Context indicators for the report. Zero when the window is
	// too short to compute them.
	SMA50    float64
	High30   float64
	Low30    float64
	HasSMA50 bool
	HasRange bool
}
