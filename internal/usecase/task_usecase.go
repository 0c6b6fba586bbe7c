package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound            = errors.New("task not found")
	ErrInvalidTaskID           = errors.New("invalid task id")
	ErrInvalidServiceTypeID    = errors.New("invalid service_type_id")
	ErrInvalidTaskPriority     = errors.New("invalid task priority")
	ErrInvalidTaskStatus       = errors.New("invalid task status")
	ErrIllegalTaskTransition   = errors.New("illegal task status transition")
	ErrWorkOrderClosedForTasks = errors.New("work order no longer accepts task changes")
	ErrServiceTypeNotFound     = errors.New("service type not found")
)

// TaskStatusChange is the outcome of a task transition: the updated task plus
// any warnings from the auto-start cascade. The cascade runs strictly after
// the task write is durable and its failure never rolls the task back.
type TaskStatusChange struct {
	Task     entities.Task
	Warnings []pkg.Warning
}

// ITaskUseCase owns task creation, deletion and status transitions inside a
// work order. No task may be mutated once the owning order is completed,
// delivered or cancelled.

type ITaskUseCase interface {
	AddTask(ctx context.Context, workOrderID string, item WorkOrderItem) (entities.Task, error)
	RemoveTask(ctx context.Context, taskID string) error
	SetTaskStatus(ctx context.Context, taskID string, newStatus entities.TaskStatus) (TaskStatusChange, error)
	TasksOf(ctx context.Context, workOrderID string) ([]entities.Task, error)
	AllDone(ctx context.Context, workOrderID string) (bool, error)
}

type TaskUseCase struct {
	repo          interfaces.ITaskRepository
	workOrderRepo interfaces.IWorkOrderRepository
	serviceTypes  interfaces.IServiceTypeRepository
	autoStarter   interfaces.IWorkOrderAutoStarter
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(
	repo interfaces.ITaskRepository,
	workOrderRepo interfaces.IWorkOrderRepository,
	serviceTypes interfaces.IServiceTypeRepository,
	autoStarter interfaces.IWorkOrderAutoStarter,
) *TaskUseCase {
	return &TaskUseCase{
		repo:          repo,
		workOrderRepo: workOrderRepo,
		serviceTypes:  serviceTypes,
		autoStarter:   autoStarter,
	}
}

func (u *TaskUseCase) AddTask(ctx context.Context, workOrderID string, item WorkOrderItem) (entities.Task, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Task{}, ErrInvalidWorkOrderID
	}
	serviceTypeID := strings.TrimSpace(item.ServiceTypeID)
	if serviceTypeID == "" {
		return entities.Task{}, ErrInvalidServiceTypeID
	}
	priority := item.Priority
	if priority == 0 {
		priority = entities.TaskPriorityDefault
	}
	if priority < entities.TaskPriorityMin || priority > entities.TaskPriorityMax {
		return entities.Task{}, ErrInvalidTaskPriority
	}

	wo, err := u.mutableWorkOrder(ctx, workOrderID)
	if err != nil {
		return entities.Task{}, err
	}

	st, err := u.serviceTypes.GetByID(ctx, serviceTypeID)
	if err != nil {
		return entities.Task{}, err
	}
	if st.ID == "" {
		return entities.Task{}, ErrServiceTypeNotFound
	}

	now := time.Now().UTC()
	t := entities.Task{
		ID:             uuid.NewString(),
		WorkOrderID:    wo.ID,
		ServiceTypeID:  serviceTypeID,
		Description:    item.Description,
		Priority:       priority,
		Status:         entities.TaskStatusPending,
		EstimatedHours: item.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TaskUseCase) RemoveTask(ctx context.Context, taskID string) error {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return ErrInvalidTaskID
	}

	t, err := u.repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if t.ID == "" {
		return ErrTaskNotFound
	}

	if _, err := u.mutableWorkOrder(ctx, t.WorkOrderID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, taskID)
}

func (u *TaskUseCase) SetTaskStatus(ctx context.Context, taskID string, newStatus entities.TaskStatus) (TaskStatusChange, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return TaskStatusChange{}, ErrInvalidTaskID
	}
	if !newStatus.IsValid() {
		return TaskStatusChange{}, ErrInvalidTaskStatus
	}

	t, err := u.repo.GetByID(ctx, taskID)
	if err != nil {
		return TaskStatusChange{}, err
	}
	if t.ID == "" {
		return TaskStatusChange{}, ErrTaskNotFound
	}

	if _, err := u.mutableWorkOrder(ctx, t.WorkOrderID); err != nil {
		return TaskStatusChange{}, err
	}

	if !t.Status.CanTransitionTo(newStatus) {
		return TaskStatusChange{}, ErrIllegalTaskTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, taskID, newStatus)
	if err != nil {
		return TaskStatusChange{}, err
	}
	if updated.ID == "" {
		return TaskStatusChange{}, ErrTaskNotFound
	}
	log.Printf("[task][usecase] status changed task_id=%s work_order_id=%s old=%s new=%s", updated.ID, updated.WorkOrderID, t.Status, newStatus)

	change := TaskStatusChange{Task: updated}
	if newStatus == entities.TaskStatusInProgress && u.autoStarter != nil {
		if err := u.autoStarter.AutoStart(ctx, updated.WorkOrderID); err != nil {
			change.Warnings = append(change.Warnings, pkg.NewWarning(
				WarnAutoStartFailed,
				"task started but the work order could not be started; use force-start to reconcile",
			))
		}
	}
	return change, nil
}

func (u *TaskUseCase) TasksOf(ctx context.Context, workOrderID string) ([]entities.Task, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

// AllDone reports whether the order's task set is non-empty and fully done.
// An order with zero tasks is never "all done".
func (u *TaskUseCase) AllDone(ctx context.Context, workOrderID string) (bool, error) {
	tasks, err := u.TasksOf(ctx, workOrderID)
	if err != nil {
		return false, err
	}
	return allTasksDone(tasks), nil
}

func (u *TaskUseCase) mutableWorkOrder(ctx context.Context, workOrderID string) (entities.WorkOrder, error) {
	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if wo.Status.IsClosedForTaskChanges() {
		return entities.WorkOrder{}, ErrWorkOrderClosedForTasks
	}
	return wo, nil
}
