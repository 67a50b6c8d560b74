package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"cc-analytics-go/internal/logger"
)

var httpClient = &http.Client{
	Timeout: 12 * time.Second,
}

// Client pushes metric snapshots to a webhook (Slack-style JSON POST).
type Client struct {
	webhookURL string
}

func NewClient(webhookURL string) *Client {
	return &Client{webhookURL: webhookURL}
}

// Push sends the payload as JSON, retrying transient failures with
// exponential backoff for up to 12 seconds.
func (c *Client) Push(payload interface{}) error {
	if c.webhookURL == "" {
		return errors.New("webhook URL not configured")
	}
	log := logger.New().WithComponent("notify")

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second

	var lastErr error
	operation := func() error {
		resp, err := httpClient.Post(c.webhookURL, "application/json", bytes.NewReader(body))
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			b, _ := io.ReadAll(resp.Body)
			lastErr = fmt.Errorf("server error: %s", b)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			b, _ := io.ReadAll(resp.Body)
			lastErr = fmt.Errorf("webhook rejected request: %s", b)
			return backoff.Permanent(lastErr)
		}
		return nil
	}

	if err := backoff.Retry(operation, bo); err != nil {
		log.WithError(lastErr).Warn("webhook push failed")
		return lastErr
	}
	log.Info("webhook push delivered")
	return nil
}
