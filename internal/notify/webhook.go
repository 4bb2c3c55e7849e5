package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookNotifier POSTs status-change events to the configured dispatcher URL.
type WebhookNotifier struct {
	HTTPClient *http.Client
	URL        string
	AuthToken  string
}

func (n WebhookNotifier) StatusChanged(ctx context.Context, ev StatusChanged) error {
	if n.URL == "" {
		return fmt.Errorf("missing webhook url")
	}
	client := n.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(ev); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+n.AuthToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the dispatcher's error body so operators can see why
		// notifications stopped going out.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(b) > 0 {
			return fmt.Errorf("notify webhook error: status=%d body=%s", resp.StatusCode, string(b))
		}
		return fmt.Errorf("notify webhook error: status=%d", resp.StatusCode)
	}
	return nil
}
