package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"claimflow/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const (
	notifyTimeout     = 10 * time.Second
	maxNotifyInterval = 2 * time.Second
)

// WebhookNotifier posts submission events to a configured webhook URL.
// Delivery is best-effort: failures are retried with exponential backoff
// within a bounded window and then logged, never surfaced to the submission
// path.

type WebhookNotifier struct {
	url    string
	client *http.Client
	log    *logrus.Entry
}

var _ interfaces.ISubmissionNotifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier returns nil when no URL is configured; callers treat a
// nil notifier as "notifications disabled".
func NewWebhookNotifier(url string, logger *logrus.Logger) *WebhookNotifier {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		log:    logger.WithField("component", "webhook_notifier"),
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, event interfaces.SubmissionEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		n.log.WithError(err).Error("event marshal failed")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	policy := backoff.NewExponentialBackOff()
	policy.MaxInterval = maxNotifyInterval

	deliver := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("webhook rejected event: HTTP %d", resp.StatusCode))
		}
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}

	if err := backoff.Retry(deliver, backoff.WithContext(policy, ctx)); err != nil {
		n.log.WithError(err).WithFields(logrus.Fields{
			"event_type": event.Type,
			"claim_id":   event.ClaimID,
		}).Warn("event delivery failed")
		return
	}
	n.log.WithFields(logrus.Fields{
		"event_type": event.Type,
		"claim_id":   event.ClaimID,
	}).Debug("event delivered")
}
