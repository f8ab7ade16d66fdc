package collector

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"IndexPulse/internal/model"
)

// CSVFetcher implements Fetcher against a generic CSV quote endpoint
// (Stooq-style: one header row, one bar per line). The upstream header
// row is passed through untouched; some providers emit compound
// field+ticker headers like "Close_^NSEI", which column resolution
// handles downstream.
type CSVFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewCSVFetcher creates a fetcher for the given CSV endpoint with optional proxy support.
func NewCSVFetcher(baseURL, proxyURL string) *CSVFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CSVFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CSVFetcher) Name() string { return "csv" }

func (f *CSVFetcher) FetchDailyTable(symbol, period, interval string) (*model.RawTable, error) {
	u := fmt.Sprintf("%s?symbol=%s&period=%s&interval=%s",
		f.BaseURL, url.QueryEscape(symbol), period, interval)

	resp, err := f.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("csv fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("csv: status %d, body: %s", resp.StatusCode, string(body))
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1 // tolerate ragged rows, dropped during cleaning

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv %s: %w", symbol, ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("csv read header: %w", err)
	}

	table := &model.RawTable{Columns: header}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read row: %w", err)
		}
		table.Rows = append(table.Rows, rec)
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("csv %s: %w", symbol, ErrNoData)
	}
	return table, nil
}
