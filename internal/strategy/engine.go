package strategy

import (
	"errors"
	"fmt"

	"IndexPulse/internal/calculator"
	"IndexPulse/internal/model"
)

// ErrInsufficientData indicates the series is too short for a valid RSI
// at the final row.
var ErrInsufficientData = errors.New("insufficient data for analysis")

// Policy holds the configurable analysis parameters.
type Policy struct {
	RSIPeriod int
	BuyBelow  float64
	SellAbove float64
}

// DefaultPolicy returns the conventional RSI(14) 30/70 setup.
func DefaultPolicy() Policy {
	return Policy{RSIPeriod: 14, BuyBelow: 30, SellAbove: 70}
}

// Classify maps an RSI value to a trading signal under the policy.
func (p Policy) Classify(rsi float64) model.Signal {
	switch {
	case rsi < p.BuyBelow:
		return model.SignalBuy
	case rsi > p.SellAbove:
		return model.SignalSell
	default:
		return model.SignalHold
	}
}

// Evaluate computes the RSI series over the closes and classifies the
// value at the final row. Fails before any computation when the series
// cannot yield a valid RSI there.
func Evaluate(series *model.PriceSeries, policy Policy) (*model.AnalysisResult, error) {
	if series.Len() < policy.RSIPeriod+1 {
		return nil, fmt.Errorf("%w: have %d rows, need %d",
			ErrInsufficientData, series.Len(), policy.RSIPeriod+1)
	}

	closes := series.Closes()
	rsi, err := calculator.RSISeries(closes, policy.RSIPeriod)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}
	last := series.Last()
	lastRSI := rsi[len(rsi)-1]

	result := &model.AnalysisResult{
		Symbol: series.Symbol,
		Date:   last.Date,
		Close:  last.Close,
		RSI:    lastRSI,
		Signal: policy.Classify(lastRSI),
	}

	// Context indicators, best effort only.
	if sma, err := calculator.CalculateSMA(closes, 50); err == nil {
		result.SMA50 = sma
		result.HasSMA50 = true
	}
	if high, low, err := calculator.CalculateRange(closes, 30); err == nil {
		result.High30 = high
		result.Low30 = low
		result.HasRange = true
	}

	return result, nil
}
