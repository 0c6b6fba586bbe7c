package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_os/internal/domain/entities"
	mock_interfaces "mecanica_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workOrderFixture struct {
	repo         *mock_interfaces.MockIWorkOrderRepository
	taskRepo     *mock_interfaces.MockITaskRepository
	serviceTypes *mock_interfaces.MockIServiceTypeRepository
	overrideRepo *mock_interfaces.MockIStatusOverrideRepository
	backend      *mock_interfaces.MockIWorkshopBackend
	invoicing    *mock_interfaces.MockIInvoicingGateway
	uc           *WorkOrderUseCase
}

func newWorkOrderFixture(ctrl *gomock.Controller) *workOrderFixture {
	f := &workOrderFixture{
		repo:         mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		taskRepo:     mock_interfaces.NewMockITaskRepository(ctrl),
		serviceTypes: mock_interfaces.NewMockIServiceTypeRepository(ctrl),
		overrideRepo: mock_interfaces.NewMockIStatusOverrideRepository(ctrl),
		backend:      mock_interfaces.NewMockIWorkshopBackend(ctrl),
		invoicing:    mock_interfaces.NewMockIInvoicingGateway(ctrl),
	}
	f.uc = NewWorkOrderUseCase(
		f.repo,
		f.taskRepo,
		f.serviceTypes,
		NewStatusOverrideUseCase(f.overrideRepo),
		f.backend,
		f.invoicing,
	)
	return f
}

func (f *workOrderFixture) expectOverridePut() {
	f.overrideRepo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.StatusOverrideEntry{})).DoAndReturn(
		func(_ context.Context, e entities.StatusOverrideEntry) (entities.StatusOverrideEntry, error) {
			return e, nil
		},
	)
}

func workOrderWithStatus(status entities.WorkOrderStatus) entities.WorkOrder {
	return entities.WorkOrder{
		ID:        "os-1",
		ClientID:  "client-1",
		VehicleID: "vehicle-1",
		Status:    status,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestWorkOrderUseCase_Register(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil, nil, nil, nil, nil)
		_, _, err := uc.Register(context.Background(), RegisterWorkOrderCommand{ClientID: "  ", VehicleID: "v-1"})
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("invalid vehicle id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil, nil, nil, nil, nil)
		_, _, err := uc.Register(context.Background(), RegisterWorkOrderCommand{ClientID: "c-1", VehicleID: ""})
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("item with unknown service type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.serviceTypes.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{}, nil)

		_, _, err := f.uc.Register(context.Background(), RegisterWorkOrderCommand{
			ClientID:  "c-1",
			VehicleID: "v-1",
			Items:     []WorkOrderItem{{ServiceTypeID: "st-1"}},
		})
		if !errors.Is(err, ErrServiceTypeNotFound) {
			t.Fatalf("expected ErrServiceTypeNotFound, got %v", err)
		}
	})

	t.Run("item with out of range priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		_, _, err := f.uc.Register(context.Background(), RegisterWorkOrderCommand{
			ClientID:  "c-1",
			VehicleID: "v-1",
			Items:     []WorkOrderItem{{ServiceTypeID: "st-1", Priority: 9}},
		})
		if !errors.Is(err, ErrInvalidTaskPriority) {
			t.Fatalf("expected ErrInvalidTaskPriority, got %v", err)
		}
	})

	t.Run("creates order open with pending tasks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.serviceTypes.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{ID: "st-1", Price: 100}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
				if wo.ID == "" || wo.Status != entities.WorkOrderStatusOpen {
					t.Fatalf("unexpected work order: %+v", wo)
				}
				return wo, nil
			},
		)
		f.taskRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Task{})).DoAndReturn(
			func(_ context.Context, task entities.Task) (entities.Task, error) {
				if task.Status != entities.TaskStatusPending {
					t.Fatalf("expected pending task, got %s", task.Status)
				}
				if task.Priority != entities.TaskPriorityDefault {
					t.Fatalf("expected default priority, got %d", task.Priority)
				}
				return task, nil
			},
		)
		f.expectOverridePut()

		wo, tasks, err := f.uc.Register(context.Background(), RegisterWorkOrderCommand{
			ClientID:  " c-1 ",
			VehicleID: "v-1",
			Items:     []WorkOrderItem{{ServiceTypeID: "st-1"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.ClientID != "c-1" {
			t.Fatalf("expected trimmed client id, got %q", wo.ClientID)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
	})
}

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{}, nil)

		_, err := f.uc.GetByID(context.Background(), "os-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("override wins over backend report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusAwaitingParts), nil)
		f.backend.EXPECT().ReportedStatus(gomock.Any(), "os-1").Return(entities.WorkOrderStatusInProgress, nil)
		f.overrideRepo.EXPECT().Get(gomock.Any(), "os-1").Return(entities.StatusOverrideEntry{
			WorkOrderID: "os-1",
			Status:      entities.WorkOrderStatusAwaitingParts,
		}, nil)

		wo, err := f.uc.GetByID(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusAwaitingParts {
			t.Fatalf("expected aguardando_pecas, got %s", wo.Status)
		}
	})

	t.Run("backend read failure falls back to local status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		f.backend.EXPECT().ReportedStatus(gomock.Any(), "os-1").Return(entities.WorkOrderStatus(""), errors.New("unreachable"))
		f.overrideRepo.EXPECT().Get(gomock.Any(), "os-1").Return(entities.StatusOverrideEntry{}, nil)
		f.expectOverridePut()

		wo, err := f.uc.GetByID(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusInProgress {
			t.Fatalf("expected em_execucao, got %s", wo.Status)
		}
	})
}

func TestWorkOrderUseCase_Start(t *testing.T) {
	t.Run("open to in-execution with backend sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusOpen), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusInProgress).Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		f.backend.EXPECT().StartExecution(gomock.Any(), "os-1").Return(nil)
		f.expectOverridePut()

		wo, warnings, err := f.uc.Start(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusInProgress {
			t.Fatalf("expected em_execucao, got %s", wo.Status)
		}
		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %+v", warnings)
		}
	})

	t.Run("backend failure surfaces as warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusOpen), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusInProgress).Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		f.backend.EXPECT().StartExecution(gomock.Any(), "os-1").Return(errors.New("backend down"))
		f.expectOverridePut()

		_, warnings, err := f.uc.Start(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 1 || warnings[0].Code != WarnBackendSyncFailed {
			t.Fatalf("expected BACKEND_SYNC_FAILED warning, got %+v", warnings)
		}
	})

	t.Run("terminal order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusCancelled), nil)

		_, _, err := f.uc.Start(context.Background(), "os-1")
		if !errors.Is(err, ErrWorkOrderTerminal) {
			t.Fatalf("expected ErrWorkOrderTerminal, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusCompleted), nil)

		_, _, err := f.uc.Start(context.Background(), "os-1")
		if !errors.Is(err, ErrIllegalWorkOrderTransition) {
			t.Fatalf("expected ErrIllegalWorkOrderTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_ForceStart(t *testing.T) {
	t.Run("already in execution is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)

		wo, warnings, err := f.uc.ForceStart(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusInProgress || len(warnings) != 0 {
			t.Fatalf("expected idempotent success, got %+v %+v", wo, warnings)
		}
	})

	t.Run("open order is started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusOpen), nil).Times(2)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusInProgress).Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		f.backend.EXPECT().StartExecution(gomock.Any(), "os-1").Return(nil)
		f.expectOverridePut()

		wo, _, err := f.uc.ForceStart(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusInProgress {
			t.Fatalf("expected em_execucao, got %s", wo.Status)
		}
	})
}

func TestWorkOrderUseCase_EnterQualityControl(t *testing.T) {
	t.Run("zero tasks never reach quality control", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return(nil, nil)

		_, _, err := f.uc.EnterQualityControl(context.Background(), "os-1")
		if !errors.Is(err, ErrPendingTasks) {
			t.Fatalf("expected ErrPendingTasks, got %v", err)
		}
	})

	t.Run("task not yet done blocks the gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusDone},
			{ID: "t-2", Status: entities.TaskStatusInProgress},
		}, nil)

		_, _, err := f.uc.EnterQualityControl(context.Background(), "os-1")
		if !errors.Is(err, ErrPendingTasks) {
			t.Fatalf("expected ErrPendingTasks, got %v", err)
		}
	})

	t.Run("cancelled task counts as not done", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusCancelled},
		}, nil)

		_, _, err := f.uc.EnterQualityControl(context.Background(), "os-1")
		if !errors.Is(err, ErrPendingTasks) {
			t.Fatalf("expected ErrPendingTasks, got %v", err)
		}
	})

	t.Run("all tasks done admits the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusDone},
			{ID: "t-2", Status: entities.TaskStatusDone},
		}, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusQualityControl).Return(workOrderWithStatus(entities.WorkOrderStatusQualityControl), nil)
		f.backend.EXPECT().EnterQualityControl(gomock.Any(), "os-1").Return(nil)
		f.expectOverridePut()

		wo, _, err := f.uc.EnterQualityControl(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusQualityControl {
			t.Fatalf("expected controle_qualidade, got %s", wo.Status)
		}
	})
}

func TestWorkOrderUseCase_Complete(t *testing.T) {
	t.Run("completes and invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusQualityControl), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusCompleted).Return(workOrderWithStatus(entities.WorkOrderStatusCompleted), nil)
		f.backend.EXPECT().Complete(gomock.Any(), "os-1").Return(nil)
		f.expectOverridePut()
		f.taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Task{
			{ID: "t-1", ServiceTypeID: "st-1", Status: entities.TaskStatusDone},
		}, nil)
		f.serviceTypes.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{ID: "st-1", Name: "Troca de oleo", Price: 150}, nil)
		f.invoicing.EXPECT().CreateEstimate(gomock.Any(), "os-1", gomock.Any()).Return(nil)

		wo, warnings, err := f.uc.Complete(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusCompleted {
			t.Fatalf("expected finalizada, got %s", wo.Status)
		}
		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %+v", warnings)
		}
	})

	t.Run("invoicing failure keeps the order completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusQualityControl), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusCompleted).Return(workOrderWithStatus(entities.WorkOrderStatusCompleted), nil)
		f.backend.EXPECT().Complete(gomock.Any(), "os-1").Return(nil)
		f.expectOverridePut()
		f.taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Task{
			{ID: "t-1", ServiceTypeID: "st-1", Status: entities.TaskStatusDone},
		}, nil)
		f.serviceTypes.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{ID: "st-1", Price: 150}, nil)
		f.invoicing.EXPECT().CreateEstimate(gomock.Any(), "os-1", gomock.Any()).Return(errors.New("billing down"))

		wo, warnings, err := f.uc.Complete(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusCompleted {
			t.Fatalf("expected finalizada, got %s", wo.Status)
		}
		if len(warnings) != 1 || warnings[0].Code != WarnInvoicingFailed {
			t.Fatalf("expected INVOICING_FAILED warning, got %+v", warnings)
		}
	})
}

func TestWorkOrderUseCase_Cancel(t *testing.T) {
	t.Run("legal from quality control despite adjacency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusQualityControl), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusCancelled).Return(workOrderWithStatus(entities.WorkOrderStatusCancelled), nil)
		f.backend.EXPECT().Cancel(gomock.Any(), "os-1").Return(nil)
		f.expectOverridePut()

		wo, _, err := f.uc.Cancel(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusCancelled {
			t.Fatalf("expected cancelada, got %s", wo.Status)
		}
	})

	t.Run("terminal order cannot be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusClosed), nil)

		_, _, err := f.uc.Cancel(context.Background(), "os-1")
		if !errors.Is(err, ErrWorkOrderTerminal) {
			t.Fatalf("expected ErrWorkOrderTerminal, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_AutoStart(t *testing.T) {
	t.Run("starts an open order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusOpen), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.WorkOrderStatusInProgress).Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		f.backend.EXPECT().StartExecution(gomock.Any(), "os-1").Return(nil)
		f.expectOverridePut()

		if err := f.uc.AutoStart(context.Background(), "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-open order is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)

		if err := f.uc.AutoStart(context.Background(), "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWorkOrderFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{}, nil)

		if err := f.uc.AutoStart(context.Background(), "os-1"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})
}
