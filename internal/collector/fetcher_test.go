package collector

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const chartJSON = `{
  "chart": {
    "result": [{
      "timestamp": [1735689600, 1735776000, 1735862400],
      "indicators": {
        "quote": [{
          "open":   [100.0, null, 102.0],
          "high":   [101.0, null, 103.0],
          "low":    [99.0,  null, 101.0],
          "close":  [100.5, null, 102.5],
          "volume": [1000,  null, 1200]
        }]
      }
    }],
    "error": null
  }
}`

func TestYahooFetcher_BuildsFlatTable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("range") != "6mo" || r.URL.Query().Get("interval") != "1d" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, chartJSON)
	}))
	defer ts.Close()

	f := NewYahooFetcher("")
	f.BaseURL = ts.URL

	table, err := f.FetchDailyTable("^NSEI", "6mo", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Columns) != 6 || table.Columns[4] != "Close" {
		t.Fatalf("unexpected columns: %v", table.Columns)
	}
	// Null bar is skipped, two remain.
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows after null bar skip, got %d", len(table.Rows))
	}
	if table.Rows[0][4] != "100.5" {
		t.Errorf("unexpected close cell: %q", table.Rows[0][4])
	}
}

func TestYahooFetcher_APIErrorIsNoData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	}))
	defer ts.Close()

	f := NewYahooFetcher("")
	f.BaseURL = ts.URL

	_, err := f.FetchDailyTable("BOGUS", "6mo", "1d")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCSVFetcher_PassesHeaderThrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Date,Open_^NSEI,Close_^NSEI\n2025-01-01,99,100\n2025-01-02,100,101\n")
	}))
	defer ts.Close()

	f := NewCSVFetcher(ts.URL, "")
	table, err := f.FetchDailyTable("^NSEI", "6mo", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Columns[2] != "Close_^NSEI" {
		t.Errorf("header not passed through: %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(table.Rows))
	}
}

func TestCSVFetcher_EmptyBodyIsNoData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	f := NewCSVFetcher(ts.URL, "")
	_, err := f.FetchDailyTable("^NSEI", "6mo", "1d")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCSVFetcher_HeaderOnlyIsNoData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Date,Close\n")
	}))
	defer ts.Close()

	f := NewCSVFetcher(ts.URL, "")
	_, err := f.FetchDailyTable("^NSEI", "6mo", "1d")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
