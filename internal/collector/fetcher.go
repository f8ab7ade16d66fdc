package collector

import (
	"errors"

	"IndexPulse/internal/model"
)

// ErrNoData indicates the provider returned an error payload or zero rows.
var ErrNoData = errors.New("no data returned by provider")

// Fetcher defines the interface for fetching raw market data.
// One attempt per call; retry policy belongs to the caller, and the
// pipeline deliberately has none.
type Fetcher interface {
	FetchDailyTable(symbol, period, interval string) (*model.RawTable, error)
	Name() string
}
