package calculator

import (
	"math"
	"testing"
)

func risingCloses(n int, start, step float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return closes
}

func TestRSISeries_AllGains(t *testing.T) {
	rsi, err := RSISeries(risingCloses(20, 100, 1), 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rsi[len(rsi)-1]; got != 100 {
		t.Errorf("expected RSI 100 for monotonic gains, got %.2f", got)
	}
}

func TestRSISeries_AllLosses(t *testing.T) {
	rsi, err := RSISeries(risingCloses(20, 120, -1), 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rsi[len(rsi)-1]; got != 0 {
		t.Errorf("expected RSI 0 for monotonic losses, got %.2f", got)
	}
}

func TestRSISeries_WarmupIsNaN(t *testing.T) {
	rsi, err := RSISeries(risingCloses(20, 100, 1), 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 14; i++ {
		if !math.IsNaN(rsi[i]) {
			t.Errorf("expected NaN at warmup row %d, got %.2f", i, rsi[i])
		}
	}
	if math.IsNaN(rsi[14]) {
		t.Error("expected valid RSI at row 14")
	}
}

func TestRSISeries_Bounds(t *testing.T) {
	closes := []float64{100, 102, 99, 103, 98, 105, 97, 104, 101, 100,
		102, 99, 103, 98, 105, 97, 104, 101, 100, 102}
	rsi, err := RSISeries(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 14; i < len(rsi); i++ {
		if rsi[i] < 0 || rsi[i] > 100 {
			t.Errorf("RSI out of bounds at %d: %.2f", i, rsi[i])
		}
	}
}

func TestRSISeries_NotEnoughData(t *testing.T) {
	if _, err := RSISeries(risingCloses(14, 100, 1), 14); err == nil {
		t.Fatal("expected error for 14 closes with period 14")
	}
	if _, err := RSISeries(nil, 14); err == nil {
		t.Fatal("expected error for empty closes")
	}
	if _, err := RSISeries(risingCloses(20, 100, 1), 0); err == nil {
		t.Fatal("expected error for non-positive period")
	}
}

func TestCalculateSMA(t *testing.T) {
	sma, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sma != 3 {
		t.Errorf("expected SMA 3, got %.2f", sma)
	}
	if _, err := CalculateSMA([]float64{1, 2}, 5); err == nil {
		t.Fatal("expected error for short input")
	}
}

func TestCalculateRange(t *testing.T) {
	high, low, err := CalculateRange([]float64{5, 1, 9, 3}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 9 || low != 1 {
		t.Errorf("expected 9/1, got %.1f/%.1f", high, low)
	}

	// Window smaller than input only scans the tail.
	high, low, err = CalculateRange([]float64{100, 1, 2, 3}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 3 || low != 1 {
		t.Errorf("expected 3/1 over tail window, got %.1f/%.1f", high, low)
	}
}
