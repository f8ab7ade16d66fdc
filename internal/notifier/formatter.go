package notifier

import (
	"fmt"
	"strings"

	"IndexPulse/internal/model"
)

// FormatSummary formats an analysis result into the notification text.
func FormatSummary(res *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 %s summary %s\n", res.Symbol, res.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Close: %.2f\n", res.Close))
	b.WriteString(fmt.Sprintf("RSI(14): %.1f\n", res.RSI))
	b.WriteString(fmt.Sprintf("Signal: %s", res.Signal))

	if res.HasSMA50 {
		b.WriteString(fmt.Sprintf("\nSMA50: %.2f", res.SMA50))
	}
	if res.HasRange {
		b.WriteString(fmt.Sprintf("\n30d range: %.2f ~ %.2f", res.Low30, res.High30))
	}

	return b.String()
}

// FormatError formats a fatal pipeline error for the best-effort
// error notification.
func FormatError(symbol string, err error) string {
	return fmt.Sprintf("❗ %s bot error: %v", symbol, err)
}
