package interfaces

import "context"

// InvoiceService is one priced service line sent to the billing service when a
// work order is completed. The shape matches the estimate payload accepted by
// the billing-service API.
type InvoiceService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// IInvoicingGateway abstracts the billing-service integration invoked once,
// synchronously, when a work order reaches its completed status. A failure is
// reported to the caller but never reverts the transition.
type IInvoicingGateway interface {
	CreateEstimate(ctx context.Context, workOrderID string, services []InvoiceService) error
}
