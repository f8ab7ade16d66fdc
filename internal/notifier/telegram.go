package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// TelegramNotifier sends messages via the Telegram Bot API.
// Delivery is best effort: a failed or unconfigured send never aborts
// the run, it only logs.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	APIBase  string // overridable for tests
	Client   *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		APIBase:  "https://api.telegram.org",
		Client: &http.Client{
			Timeout:   20 * time.Second,
			Transport: transport,
		},
	}
}

// Configured reports whether both bot token and chat id are present.
func (t *TelegramNotifier) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Send sends a message to the configured chat. Success is any 2xx status.
func (t *TelegramNotifier) Send(text string) error {
	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", t.APIBase, t.BotToken)
	payload := map[string]string{
		"chat_id": t.ChatID,
		"text":    text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := t.Client.Post(apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// Notify delivers the message best effort. Missing credentials skip the
// network call entirely; delivery errors are logged and swallowed.
// Returns true when the message was actually delivered.
func (t *TelegramNotifier) Notify(text string) bool {
	if !t.Configured() {
		log.Printf("[WARN] telegram credentials missing, logging locally:\n%s", text)
		return false
	}
	if err := t.Send(text); err != nil {
		log.Printf("[WARN] telegram send failed: %v, message was:\n%s", err, text)
		return false
	}
	log.Println("[INFO] telegram notification sent")
	return true
}
