package interfaces

import (
	"context"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/pkg"
)

// IWorkOrderAutoStarter receives the task-start cascade signal.
//
// AutoStart attempts the open -> in-execution transition when the order is
// still open and does nothing otherwise, which makes the cascade idempotent.
// The task write that triggered it is already durable; an error here reports
// an inconsistent state to surface, never a rollback.
type IWorkOrderAutoStarter interface {
	AutoStart(ctx context.Context, workOrderID string) error
}

// IWorkOrderGate is the slice of the lifecycle manager driven by the
// authorization protocol.
type IWorkOrderGate interface {
	RequestApproval(ctx context.Context, workOrderID string) (entities.WorkOrder, []pkg.Warning, error)
	EnterQualityControl(ctx context.Context, workOrderID string) (entities.WorkOrder, []pkg.Warning, error)
}
