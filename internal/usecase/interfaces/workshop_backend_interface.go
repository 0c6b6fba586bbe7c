package interfaces

import (
	"context"
	"mecanica_os/internal/domain/entities"
)

// IWorkshopBackend abstracts the workshop backend-of-record.
//
// The backend only exposes narrow, purpose-built transition operations plus a
// read of the status it currently reports. Statuses with no matching operation
// (awaiting parts, awaiting approval, delivered) exist only in the local
// status override table. All calls are best-effort from the lifecycle's point
// of view: a failure never rolls back the local write that preceded it.
type IWorkshopBackend interface {
	StartExecution(ctx context.Context, workOrderID string) error
	EnterQualityControl(ctx context.Context, workOrderID string) error
	Complete(ctx context.Context, workOrderID string) error
	Cancel(ctx context.Context, workOrderID string) error
	ReportedStatus(ctx context.Context, workOrderID string) (entities.WorkOrderStatus, error)
}
