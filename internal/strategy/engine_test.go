package strategy

import (
	"errors"
	"testing"
	"time"

	"IndexPulse/internal/model"
)

func seriesFromCloses(closes []float64) *model.PriceSeries {
	s := &model.PriceSeries{Symbol: "^NSEI"}
	n := len(closes)
	for i, c := range closes {
		s.Points = append(s.Points, model.PricePoint{
			Date:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i-n),
			Close: c,
		})
	}
	return s
}

func TestEvaluate_MonotonicRisingIsSell(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)*20.0/19.0 // 100 -> 120
	}
	res, err := Evaluate(seriesFromCloses(closes), DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RSI < 99.9 {
		t.Errorf("expected RSI near 100 for all gains, got %.2f", res.RSI)
	}
	if res.Signal != model.SignalSell {
		t.Errorf("expected SELL, got %s", res.Signal)
	}
}

func TestEvaluate_MonotonicFallingIsBuy(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 120 - float64(i)
	}
	res, err := Evaluate(seriesFromCloses(closes), DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RSI > 0.1 {
		t.Errorf("expected RSI near 0 for all losses, got %.2f", res.RSI)
	}
	if res.Signal != model.SignalBuy {
		t.Errorf("expected BUY, got %s", res.Signal)
	}
}

func TestEvaluate_AlternatingIsHold(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
		if i%2 == 1 {
			closes[i] = 101
		}
	}
	res, err := Evaluate(seriesFromCloses(closes), DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RSI < 30 || res.RSI > 70 {
		t.Fatalf("expected mid-band RSI, got %.2f", res.RSI)
	}
	if res.Signal != model.SignalHold {
		t.Errorf("expected HOLD, got %s", res.Signal)
	}
}

func TestEvaluate_InsufficientData(t *testing.T) {
	closes := make([]float64, 14)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	res, err := Evaluate(seriesFromCloses(closes), DefaultPolicy())
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if res != nil {
		t.Error("expected no partial result")
	}
}

func TestEvaluate_ResultFields(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i%5)
	}
	series := seriesFromCloses(closes)
	res, err := Evaluate(series, DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := series.Last()
	if res.Close != last.Close || !res.Date.Equal(last.Date) {
		t.Errorf("result not anchored to final row: %+v vs %+v", res, last)
	}
	if !res.HasSMA50 {
		t.Error("expected SMA50 context with 60 closes")
	}
	if !res.HasRange {
		t.Error("expected 30-point range context")
	}
}

func TestClassify_Thresholds(t *testing.T) {
	p := DefaultPolicy()
	cases := []struct {
		rsi  float64
		want model.Signal
	}{
		{10, model.SignalBuy},
		{29.99, model.SignalBuy},
		{30, model.SignalHold},
		{50, model.SignalHold},
		{70, model.SignalHold},
		{70.01, model.SignalSell},
		{95, model.SignalSell},
	}
	for _, c := range cases {
		if got := p.Classify(c.rsi); got != c.want {
			t.Errorf("Classify(%.2f) = %s, want %s", c.rsi, got, c.want)
		}
	}
}
