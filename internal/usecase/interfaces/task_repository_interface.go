package interfaces

import (
	"context"
	"mecanica_os/internal/domain/entities"
)

// ITaskRepository abstracts DynamoDB persistence for Task.
//
// The OS service must be able to:
//   - create tasks manually or from approved quotation line items
//   - list every task of a work order ordered by creation
//   - advance a task through its state machine
//   - delete a task while the owning work order is still mutable

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Task, error)
	UpdateStatus(ctx context.Context, id string, status entities.TaskStatus) (entities.Task, error)
	Delete(ctx context.Context, id string) error
}
