// Package normalize reshapes the provider's raw table into the canonical
// (date, close) series. Upstream column naming is inconsistent, so close
// column selection is a single explicit ordered policy rather than
// cascading conditionals scattered through the fetchers.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"IndexPulse/internal/model"
)

// ErrEmptySeries indicates no valid rows remained after cleaning.
var ErrEmptySeries = errors.New("no valid rows in price series")

// ColumnError reports a close column that could not be resolved,
// carrying the full set of column names found.
type ColumnError struct {
	Columns []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("cannot resolve close column, columns found: %v", e.Columns)
}

// Rule identifies which resolution rule selected the close column.
type Rule int

const (
	RuleExact    Rule = iota // column named exactly "Close"
	RuleCompound             // compound field+ticker header, e.g. "Close_^NSEI"
	RuleSingle               // single remaining non-date column
)

// compound header separators seen across providers
var compoundSeps = []string{"|", "_", ".", " "}

func isDateName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "date", "datetime", "time", "timestamp", "index":
		return true
	}
	return false
}

// ResolveCloseColumn applies the ordered resolution policy and returns the
// index of the close column plus the rule that matched. Rules are tried in
// order and the first match wins, so an exact "Close" always beats a
// compound "Close_^NSEI" header.
func ResolveCloseColumn(columns []string) (int, Rule, error) {
	// Rule 1: unambiguous exact "Close" (case-insensitive).
	exact := -1
	for i, c := range columns {
		if strings.EqualFold(strings.TrimSpace(c), "Close") {
			if exact >= 0 {
				exact = -1
				break
			}
			exact = i
		}
	}
	if exact >= 0 {
		return exact, RuleExact, nil
	}

	// Rule 2: compound field+ticker header whose field part is "Close".
	compound := -1
	for i, c := range columns {
		if !hasCloseField(c) {
			continue
		}
		if compound >= 0 {
			compound = -1
			break
		}
		compound = i
	}
	if compound >= 0 {
		return compound, RuleCompound, nil
	}

	// Rule 3: exactly one non-date column remains.
	single := -1
	count := 0
	for i, c := range columns {
		if isDateName(c) {
			continue
		}
		single = i
		count++
	}
	if count == 1 {
		return single, RuleSingle, nil
	}

	return -1, 0, &ColumnError{Columns: columns}
}

func hasCloseField(name string) bool {
	for _, sep := range compoundSeps {
		parts := strings.Split(name, sep)
		if len(parts) < 2 {
			continue
		}
		for _, p := range parts {
			if strings.EqualFold(strings.TrimSpace(p), "Close") {
				return true
			}
		}
	}
	return false
}

// resolveDateColumn picks the date column: a date-named column if present,
// otherwise the first column that is not the close column.
func resolveDateColumn(columns []string, closeIdx int) int {
	for i, c := range columns {
		if isDateName(c) {
			return i
		}
	}
	for i := range columns {
		if i != closeIdx {
			return i
		}
	}
	return -1
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// Unix seconds, another shape seen from JSON providers.
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil && sec > 0 {
		return time.Unix(sec, 0).UTC(), true
	}
	return time.Time{}, false
}

// Series converts a raw table into a cleaned, date-ascending PriceSeries.
// Rows whose close value cannot be parsed as a positive number are dropped,
// never substituted. Normalizing an already-canonical Date|Close table is
// the identity.
func Series(symbol string, table *model.RawTable) (*model.PriceSeries, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrEmptySeries)
	}

	closeIdx, _, err := ResolveCloseColumn(table.Columns)
	if err != nil {
		return nil, err
	}
	dateIdx := resolveDateColumn(table.Columns, closeIdx)
	if dateIdx < 0 || dateIdx == closeIdx {
		return nil, &ColumnError{Columns: table.Columns}
	}

	series := &model.PriceSeries{Symbol: symbol}
	for _, row := range table.Rows {
		if closeIdx >= len(row) || dateIdx >= len(row) {
			continue // ragged row
		}
		date, ok := parseDate(row[dateIdx])
		if !ok {
			continue
		}
		close, err := strconv.ParseFloat(strings.TrimSpace(row[closeIdx]), 64)
		if err != nil || math.IsNaN(close) || math.IsInf(close, 0) || close <= 0 {
			continue
		}
		series.Points = append(series.Points, model.PricePoint{Date: date, Close: close})
	}
	if len(series.Points) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrEmptySeries)
	}

	sort.SliceStable(series.Points, func(i, j int) bool {
		return series.Points[i].Date.Before(series.Points[j].Date)
	})
	return series, nil
}
