package billing

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

	"mecanica_os/internal/usecase/interfaces"
)

var ErrMissingBillingServiceURL = errors.New("missing BILLING_SERVICE_URL")

// estimateRequest mirrors the payload the billing service accepts on
// POST /v1/estimates.
type estimateRequest struct {
	ServiceOrderID string                      `json:"service_order_id"`
	Services       []interfaces.InvoiceService `json:"services"`
}

// InvoicingClient hands a completed work order to the billing service so it
// can open the estimate/payment flow.
//
// Supported env vars:
//   - BILLING_SERVICE_URL (e.g. http://billing-service:8080)
//   - BILLING_GATEWAY_MOCK (1/true/yes/on/mock to skip the real service)
type InvoicingClient struct {
	baseURL  string
	http     *http.Client
	mockMode bool
}

var _ interfaces.IInvoicingGateway = (*InvoicingClient)(nil)

func NewInvoicingClient(baseURL string) (*InvoicingClient, error) {
	if isBillingGatewayMockEnabled() {
		log.Printf("[billing][gateway] mock mode enabled")
		return &InvoicingClient{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[billing][gateway] missing BILLING_SERVICE_URL")
		return nil, ErrMissingBillingServiceURL
	}

	return &InvoicingClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *InvoicingClient) CreateEstimate(ctx context.Context, workOrderID string, services []interfaces.InvoiceService) error {
	if c.mockMode {
		log.Printf("[billing][gateway] mock estimate created work_order_id=%s services=%d", workOrderID, len(services))
		return nil
	}

	payload, err := json.Marshal(estimateRequest{ServiceOrderID: workOrderID, Services: services})
	if err != nil {
		return err
	}

	url := c.baseURL + "/v1/estimates"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("billing service estimate creation failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	log.Printf("[billing][gateway] estimate created work_order_id=%s services=%d", workOrderID, len(services))
	return nil
}

func isBillingGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("BILLING_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
