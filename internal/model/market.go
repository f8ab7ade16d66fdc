package model

import "time"

// RawTable is the provider's tabular output before column resolution.
// Column naming is not guaranteed: a flat "Close", a compound
// "Close_^NSEI" style header, or a single unnamed numeric column are
// all shapes seen upstream.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// PricePoint is one cleaned (date, close) observation.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the canonical close series for analysis,
// ascending by date. Built fresh per run and discarded after.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// Closes returns the close values in date order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent point. Callers must check Len first.
func (s *PriceSeries) Last() PricePoint {
	return s.Points[len(s.Points)-1]
}

func (s *PriceSeries) Len() int { return len(s.Points) }
