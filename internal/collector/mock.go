package collector

import (
	"strconv"
	"time"

	"IndexPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Table *model.RawTable
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyTable(_, _, _ string) (*model.RawTable, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Table != nil {
		return m.Table, nil
	}
	return GenerateTable(100, 30), nil
}

// GenerateTable builds a flat daily table with the given closes ending today.
// basePrice drifts slightly so the series is not constant.
func GenerateTable(basePrice float64, count int) *model.RawTable {
	table := &model.RawTable{Columns: []string{"Date", "Close"}}
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		table.Rows = append(table.Rows, []string{
			time.Now().AddDate(0, 0, -(count - i)).Format("2006-01-02"),
			strconv.FormatFloat(p, 'f', 2, 64),
		})
	}
	return table
}

// TableFromCloses builds a canonical Date|Close table from explicit closes,
// one bar per day ending today.
func TableFromCloses(closes []float64) *model.RawTable {
	table := &model.RawTable{Columns: []string{"Date", "Close"}}
	n := len(closes)
	for i, c := range closes {
		table.Rows = append(table.Rows, []string{
			time.Now().AddDate(0, 0, -(n - i)).Format("2006-01-02"),
			strconv.FormatFloat(c, 'f', 4, 64),
		})
	}
	return table
}
