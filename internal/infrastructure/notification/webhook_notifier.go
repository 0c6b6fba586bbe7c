package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"
)

var ErrMissingNotificationWebhookURL = errors.New("missing NOTIFICATION_WEBHOOK_URL")

// WebhookNotifier posts authorization notifications to the chat/notification
// channel. Delivery is fire-and-forget from the protocol's point of view:
// the caller records the request whether or not the client was reached.
//
// Supported env vars:
//   - NOTIFICATION_WEBHOOK_URL
//   - NOTIFICATION_MOCK (1/true/yes/on/mock to log instead of posting)
type WebhookNotifier struct {
	url      string
	http     *http.Client
	mockMode bool
}

var _ interfaces.IClientNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) (*WebhookNotifier, error) {
	if isNotificationMockEnabled() {
		log.Printf("[notification][webhook] mock mode enabled")
		return &WebhookNotifier{mockMode: true}, nil
	}

	url = strings.TrimSpace(url)
	if url == "" {
		log.Printf("[notification][webhook] missing NOTIFICATION_WEBHOOK_URL")
		return nil, ErrMissingNotificationWebhookURL
	}

	return &WebhookNotifier{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type authorizationNotification struct {
	WorkOrderID             string  `json:"work_order_id"`
	AuthorizationID         string  `json:"authorization_id"`
	Reason                  string  `json:"reason"`
	Details                 string  `json:"details,omitempty"`
	EstimatedAdditionalCost float64 `json:"estimated_additional_cost,omitempty"`
	SentAt                  string  `json:"sent_at"`
}

func (n *WebhookNotifier) NotifyAuthorizationRequested(ctx context.Context, req entities.AuthorizationRequest) error {
	if n.mockMode {
		log.Printf("[notification][webhook] mock notify work_order_id=%s authorization_id=%s", req.WorkOrderID, req.ID)
		return nil
	}

	payload, err := json.Marshal(authorizationNotification{
		WorkOrderID:             req.WorkOrderID,
		AuthorizationID:         req.ID,
		Reason:                  req.Reason,
		Details:                 req.Details,
		EstimatedAdditionalCost: req.EstimatedAdditionalCost,
		SentAt:                  req.SentAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("notification delivery failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	log.Printf("[notification][webhook] delivered work_order_id=%s authorization_id=%s", req.WorkOrderID, req.ID)
	return nil
}

func isNotificationMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
