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
	ErrWorkOrderNotFound          = errors.New("work order not found")
	ErrInvalidClientID            = errors.New("invalid client_id")
	ErrInvalidVehicleID           = errors.New("invalid vehicle_id")
	ErrWorkOrderTerminal          = errors.New("work order is in a terminal status")
	ErrIllegalWorkOrderTransition = errors.New("illegal work order status transition")
	ErrPendingTasks               = errors.New("work order has tasks not yet done")
)

// Warning codes attached to successful operations whose follow-up failed.
const (
	WarnBackendSyncFailed    = "BACKEND_SYNC_FAILED"
	WarnAutoStartFailed      = "WORK_ORDER_AUTO_START_FAILED"
	WarnInvoicingFailed      = "INVOICING_FAILED"
	WarnNotificationFailed   = "CLIENT_NOTIFICATION_FAILED"
	WarnWorkOrderNotAdvanced = "WORK_ORDER_NOT_ADVANCED"
)

// WorkOrderItem is one service line of a registration command. Approved
// quotations create one item per approved service.
type WorkOrderItem struct {
	ServiceTypeID  string
	Description    string
	EstimatedHours float64
	Priority       int
}

// RegisterWorkOrderCommand carries everything needed to open a new work order,
// whether from a quotation approval or a manual registration at the counter.
type RegisterWorkOrderCommand struct {
	ClientID                string
	VehicleID               string
	AdvisorID               string
	MechanicID              string
	ReceptionNotes          string
	OdometerIn              int64
	EstimatedCompletionDate *time.Time
	EstimatedHours          float64
	Items                   []WorkOrderItem
}

// IWorkOrderUseCase owns the work-order state machine.
//
// Every transition follows the same discipline: validate the guard, write the
// new status locally, best-effort sync the workshop backend, and always finish
// with a status-override write regardless of the sync outcome. Sync failures
// surface as warnings on an otherwise successful operation, never as errors.

type IWorkOrderUseCase interface {
	Register(ctx context.Context, cmd RegisterWorkOrderCommand) (entities.WorkOrder, []entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Start(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	ForceStart(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	Pause(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	Resume(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	RequestApproval(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	EnterQualityControl(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	Complete(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	Close(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	Cancel(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error)
	AutoStart(ctx context.Context, id string) error
}

type WorkOrderUseCase struct {
	repo         interfaces.IWorkOrderRepository
	taskRepo     interfaces.ITaskRepository
	serviceTypes interfaces.IServiceTypeRepository
	overrides    IStatusOverrideUseCase
	backend      interfaces.IWorkshopBackend
	invoicing    interfaces.IInvoicingGateway
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)
var _ interfaces.IWorkOrderAutoStarter = (*WorkOrderUseCase)(nil)
var _ interfaces.IWorkOrderGate = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	taskRepo interfaces.ITaskRepository,
	serviceTypes interfaces.IServiceTypeRepository,
	overrides IStatusOverrideUseCase,
	backend interfaces.IWorkshopBackend,
	invoicing interfaces.IInvoicingGateway,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		repo:         repo,
		taskRepo:     taskRepo,
		serviceTypes: serviceTypes,
		overrides:    overrides,
		backend:      backend,
		invoicing:    invoicing,
	}
}

func (u *WorkOrderUseCase) Register(ctx context.Context, cmd RegisterWorkOrderCommand) (entities.WorkOrder, []entities.Task, error) {
	clientID := strings.TrimSpace(cmd.ClientID)
	if clientID == "" {
		return entities.WorkOrder{}, nil, ErrInvalidClientID
	}
	vehicleID := strings.TrimSpace(cmd.VehicleID)
	if vehicleID == "" {
		return entities.WorkOrder{}, nil, ErrInvalidVehicleID
	}

	for _, item := range cmd.Items {
		if err := u.validateItem(ctx, item); err != nil {
			return entities.WorkOrder{}, nil, err
		}
	}

	now := time.Now().UTC()
	wo := entities.WorkOrder{
		ID:                      uuid.NewString(),
		ClientID:                clientID,
		VehicleID:               vehicleID,
		AdvisorID:               strings.TrimSpace(cmd.AdvisorID),
		MechanicID:              strings.TrimSpace(cmd.MechanicID),
		Status:                  entities.WorkOrderStatusOpen,
		ReceptionNotes:          cmd.ReceptionNotes,
		OdometerIn:              cmd.OdometerIn,
		EstimatedCompletionDate: cmd.EstimatedCompletionDate,
		EstimatedHours:          cmd.EstimatedHours,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	created, err := u.repo.Create(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}

	tasks := make([]entities.Task, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		priority := item.Priority
		if priority == 0 {
			priority = entities.TaskPriorityDefault
		}
		t := entities.Task{
			ID:             uuid.NewString(),
			WorkOrderID:    created.ID,
			ServiceTypeID:  strings.TrimSpace(item.ServiceTypeID),
			Description:    item.Description,
			Priority:       priority,
			Status:         entities.TaskStatusPending,
			EstimatedHours: item.EstimatedHours,
			CreatedAt:      time.Now().UTC(),
			UpdatedAt:      time.Now().UTC(),
		}
		createdTask, err := u.taskRepo.Create(ctx, t)
		if err != nil {
			return entities.WorkOrder{}, nil, err
		}
		tasks = append(tasks, createdTask)
	}

	if err := u.overrides.Set(ctx, created.ID, created.Status); err != nil {
		return entities.WorkOrder{}, nil, err
	}
	return created, tasks, nil
}

func (u *WorkOrderUseCase) validateItem(ctx context.Context, item WorkOrderItem) error {
	serviceTypeID := strings.TrimSpace(item.ServiceTypeID)
	if serviceTypeID == "" {
		return ErrInvalidServiceTypeID
	}
	if item.Priority != 0 && (item.Priority < entities.TaskPriorityMin || item.Priority > entities.TaskPriorityMax) {
		return ErrInvalidTaskPriority
	}
	st, err := u.serviceTypes.GetByID(ctx, serviceTypeID)
	if err != nil {
		return err
	}
	if st.ID == "" {
		return ErrServiceTypeNotFound
	}
	return nil
}

// GetByID resolves the merged status: the backend-reported value is fetched
// best-effort and run through the override merge. The merged value is never
// cached; the backend can change out of band between calls.
func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	reported := wo.Status
	if u.backend != nil {
		if backendStatus, err := u.backend.ReportedStatus(ctx, id); err != nil {
			log.Printf("[workorder][usecase] backend status read failed work_order_id=%s err=%v", id, err)
		} else if backendStatus.IsValid() {
			reported = backendStatus
		}
	}

	resolved, err := u.overrides.Resolve(ctx, id, reported)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	wo.Status = resolved
	return wo, nil
}

func (u *WorkOrderUseCase) Start(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	return u.transition(ctx, id, entities.WorkOrderStatusInProgress)
}

// ForceStart is the operator remedy for a failed auto-start cascade: an
// idempotent retry of open -> in-execution. Calling it on an order already in
// execution succeeds without side effects.
func (u *WorkOrderUseCase) ForceStart(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, nil, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, nil, ErrWorkOrderNotFound
	}
	if wo.Status == entities.WorkOrderStatusInProgress {
		return wo, nil, nil
	}
	return u.transition(ctx, id, entities.WorkOrderStatusInProgress)
}

func (u *WorkOrderUseCase) Pause(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	return u.transition(ctx, id, entities.WorkOrderStatusAwaitingParts)
}

// Resume returns an order to execution, either from the parts wait or as the
// administrative rework path out of quality control.
func (u *WorkOrderUseCase) Resume(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	return u.transition(ctx, id, entities.WorkOrderStatusInProgress)
}

func (u *WorkOrderUseCase) RequestApproval(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	return u.transition(ctx, id, entities.WorkOrderStatusAwaitingApproval)
}

// EnterQualityControl admits an order to the quality gate. Legal only while
// every task of a non-empty task set is done; an order with zero tasks can
// never reach quality control.
func (u *WorkOrderUseCase) EnterQualityControl(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, nil, ErrInvalidWorkOrderID
	}

	tasks, err := u.taskRepo.ListByWorkOrderID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}
	if !allTasksDone(tasks) {
		return entities.WorkOrder{}, nil, ErrPendingTasks
	}
	return u.transition(ctx, id, entities.WorkOrderStatusQualityControl)
}

// Complete closes the quality gate and hands the order to the billing service.
// An invoicing failure is reported as a warning: the order stays completed and
// invoicing must be retried externally.
func (u *WorkOrderUseCase) Complete(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	wo, warnings, err := u.transition(ctx, id, entities.WorkOrderStatusCompleted)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}

	if warn := u.sendInvoice(ctx, wo.ID); warn != nil {
		warnings = append(warnings, *warn)
	}
	return wo, warnings, nil
}

func (u *WorkOrderUseCase) Close(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	return u.transition(ctx, id, entities.WorkOrderStatusClosed)
}

// Cancel is legal from any non-terminal status and is irreversible.
func (u *WorkOrderUseCase) Cancel(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, nil, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, nil, ErrWorkOrderNotFound
	}
	if wo.Status.IsTerminal() {
		return entities.WorkOrder{}, nil, ErrWorkOrderTerminal
	}
	return u.applyTransition(ctx, wo, entities.WorkOrderStatusCancelled)
}

// AutoStart is the cascade target of a task entering execution. It only acts
// while the order is still open, which makes a second invocation a no-op.
// The task write already succeeded when this runs; a failure here leaves an
// open order with a task in execution and must be remedied with ForceStart.
func (u *WorkOrderUseCase) AutoStart(ctx context.Context, id string) error {
	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if wo.ID == "" {
		return ErrWorkOrderNotFound
	}
	if wo.Status != entities.WorkOrderStatusOpen {
		return nil
	}

	_, _, err = u.applyTransition(ctx, wo, entities.WorkOrderStatusInProgress)
	if err != nil {
		log.Printf("[workorder][usecase] inconsistent state: order open with task in execution work_order_id=%s err=%v", id, err)
	}
	return err
}

func (u *WorkOrderUseCase) transition(ctx context.Context, id string, next entities.WorkOrderStatus) (entities.WorkOrder, []pkg.Warning, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, nil, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, nil, ErrWorkOrderNotFound
	}
	if wo.Status.IsTerminal() {
		return entities.WorkOrder{}, nil, ErrWorkOrderTerminal
	}
	if !wo.Status.CanTransitionTo(next) {
		return entities.WorkOrder{}, nil, ErrIllegalWorkOrderTransition
	}
	return u.applyTransition(ctx, wo, next)
}

// applyTransition commits the local write, best-effort syncs the backend and
// always writes the override afterwards, whatever the sync outcome.
func (u *WorkOrderUseCase) applyTransition(ctx context.Context, wo entities.WorkOrder, next entities.WorkOrderStatus) (entities.WorkOrder, []pkg.Warning, error) {
	updated, err := u.repo.UpdateStatus(ctx, wo.ID, next)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, nil, ErrWorkOrderNotFound
	}

	var warnings []pkg.Warning
	if err := u.syncBackend(ctx, wo.ID, next); err != nil {
		log.Printf("[workorder][usecase] backend sync failed work_order_id=%s status=%s err=%v", wo.ID, next, err)
		warnings = append(warnings, pkg.NewWarning(WarnBackendSyncFailed, "workshop backend could not be synchronized; local status is authoritative"))
	}

	if err := u.overrides.Set(ctx, wo.ID, next); err != nil {
		return entities.WorkOrder{}, nil, err
	}
	return updated, warnings, nil
}

// syncBackend maps a status to the backend's narrow transition operation.
// Statuses with no matching operation live only in the override table.
func (u *WorkOrderUseCase) syncBackend(ctx context.Context, id string, status entities.WorkOrderStatus) error {
	if u.backend == nil {
		return nil
	}
	switch status {
	case entities.WorkOrderStatusInProgress:
		return u.backend.StartExecution(ctx, id)
	case entities.WorkOrderStatusQualityControl:
		return u.backend.EnterQualityControl(ctx, id)
	case entities.WorkOrderStatusCompleted:
		return u.backend.Complete(ctx, id)
	case entities.WorkOrderStatusCancelled:
		return u.backend.Cancel(ctx, id)
	}
	return nil
}

func (u *WorkOrderUseCase) sendInvoice(ctx context.Context, workOrderID string) *pkg.Warning {
	if u.invoicing == nil {
		log.Printf("[workorder][usecase] invoicing gateway not configured work_order_id=%s", workOrderID)
		w := pkg.NewWarning(WarnInvoicingFailed, "invoicing gateway not configured; invoice must be created manually")
		return &w
	}

	tasks, err := u.taskRepo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		log.Printf("[workorder][usecase] invoicing task read failed work_order_id=%s err=%v", workOrderID, err)
		w := pkg.NewWarning(WarnInvoicingFailed, "could not assemble the invoice; it must be retried externally")
		return &w
	}

	services := make([]interfaces.InvoiceService, 0, len(tasks))
	for _, t := range tasks {
		st, err := u.serviceTypes.GetByID(ctx, t.ServiceTypeID)
		if err != nil || st.ID == "" {
			log.Printf("[workorder][usecase] invoicing price lookup failed work_order_id=%s service_type_id=%s err=%v", workOrderID, t.ServiceTypeID, err)
			w := pkg.NewWarning(WarnInvoicingFailed, "could not price the invoice; it must be retried externally")
			return &w
		}
		services = append(services, interfaces.InvoiceService{
			ID:          t.ID,
			Name:        st.Name,
			Description: t.Description,
			Price:       st.Price,
		})
	}

	if err := u.invoicing.CreateEstimate(ctx, workOrderID, services); err != nil {
		log.Printf("[workorder][usecase] invoicing call failed work_order_id=%s err=%v", workOrderID, err)
		w := pkg.NewWarning(WarnInvoicingFailed, "billing service rejected the invoice; it must be retried externally")
		return &w
	}
	return nil
}

func allTasksDone(tasks []entities.Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if t.Status != entities.TaskStatusDone {
			return false
		}
	}
	return true
}
