package usecase

import (
	"context"
	"strings"

	"mecanica_os/internal/usecase/interfaces"
)

// ICostUseCase derives the total cost of a work order from its tasks' service
// prices. Pure projection: no stored state, recomputed on every read.
//
// Cancelled tasks are deliberately included in the sum; whether they should be
// excluded is an open billing-policy question and this service keeps the
// observed behavior until the product decides.

type ICostUseCase interface {
	TotalCost(ctx context.Context, workOrderID string) (float64, error)
}

type CostUseCase struct {
	workOrderRepo interfaces.IWorkOrderRepository
	taskRepo      interfaces.ITaskRepository
	serviceTypes  interfaces.IServiceTypeRepository
}

var _ ICostUseCase = (*CostUseCase)(nil)

func NewCostUseCase(
	workOrderRepo interfaces.IWorkOrderRepository,
	taskRepo interfaces.ITaskRepository,
	serviceTypes interfaces.IServiceTypeRepository,
) *CostUseCase {
	return &CostUseCase{workOrderRepo: workOrderRepo, taskRepo: taskRepo, serviceTypes: serviceTypes}
}

func (u *CostUseCase) TotalCost(ctx context.Context, workOrderID string) (float64, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return 0, ErrInvalidWorkOrderID
	}

	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return 0, err
	}
	if wo.ID == "" {
		return 0, ErrWorkOrderNotFound
	}

	tasks, err := u.taskRepo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, t := range tasks {
		st, err := u.serviceTypes.GetByID(ctx, t.ServiceTypeID)
		if err != nil {
			return 0, err
		}
		if st.ID == "" {
			return 0, ErrServiceTypeNotFound
		}
		total += st.Price
	}
	return total, nil
}
