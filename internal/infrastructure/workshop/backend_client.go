package workshop

import (
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

var ErrMissingWorkshopBackendURL = errors.New("missing WORKSHOP_BACKEND_URL")

// BackendClient talks to the workshop backend-of-record over HTTP.
//
// Supported env vars:
//   - WORKSHOP_BACKEND_URL (e.g. http://workshop-backend:8080)
//   - WORKSHOP_BACKEND_MOCK (1/true/yes/on/mock to skip the real backend)
//
// The backend only implements the narrow transition endpoints below; remaining
// statuses live solely in the local override table. In mock mode every call
// succeeds and ReportedStatus reports nothing, which makes the local records
// fully authoritative.
type BackendClient struct {
	baseURL  string
	http     *http.Client
	mockMode bool
}

var _ interfaces.IWorkshopBackend = (*BackendClient)(nil)

func NewBackendClient(baseURL string) (*BackendClient, error) {
	if isWorkshopBackendMockEnabled() {
		log.Printf("[workshop][backend] mock mode enabled")
		return &BackendClient{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[workshop][backend] missing WORKSHOP_BACKEND_URL")
		return nil, ErrMissingWorkshopBackendURL
	}

	return &BackendClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *BackendClient) StartExecution(ctx context.Context, workOrderID string) error {
	return c.postTransition(ctx, workOrderID, "start")
}

func (c *BackendClient) EnterQualityControl(ctx context.Context, workOrderID string) error {
	return c.postTransition(ctx, workOrderID, "quality-control")
}

func (c *BackendClient) Complete(ctx context.Context, workOrderID string) error {
	return c.postTransition(ctx, workOrderID, "complete")
}

func (c *BackendClient) Cancel(ctx context.Context, workOrderID string) error {
	return c.postTransition(ctx, workOrderID, "cancel")
}

func (c *BackendClient) ReportedStatus(ctx context.Context, workOrderID string) (entities.WorkOrderStatus, error) {
	if c.mockMode {
		return "", nil
	}

	url := fmt.Sprintf("%s/work-orders/%s/status", c.baseURL, workOrderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("workshop backend status read failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return entities.WorkOrderStatus(payload.Status), nil
}

func (c *BackendClient) postTransition(ctx context.Context, workOrderID, action string) error {
	if c.mockMode {
		log.Printf("[workshop][backend] mock transition work_order_id=%s action=%s", workOrderID, action)
		return nil
	}

	url := fmt.Sprintf("%s/work-orders/%s/%s", c.baseURL, workOrderID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("workshop backend %s failed: status=%d body=%s", action, resp.StatusCode, string(body))
	}
	log.Printf("[workshop][backend] transition accepted work_order_id=%s action=%s", workOrderID, action)
	return nil
}

func isWorkshopBackendMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("WORKSHOP_BACKEND_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
