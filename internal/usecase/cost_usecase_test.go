package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_os/internal/domain/entities"
	mock_interfaces "mecanica_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCostUseCase_TotalCost(t *testing.T) {
	t.Run("invalid work order id", func(t *testing.T) {
		uc := NewCostUseCase(nil, nil, nil)
		_, err := uc.TotalCost(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("unknown work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewCostUseCase(workOrderRepo, nil, nil)

		workOrderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{}, nil)

		_, err := uc.TotalCost(context.Background(), "os-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("zero tasks cost zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewCostUseCase(workOrderRepo, taskRepo, nil)

		workOrderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusOpen), nil)
		taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return(nil, nil)

		total, err := uc.TotalCost(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 0 {
			t.Fatalf("expected 0, got %f", total)
		}
	})

	t.Run("cancelled tasks are included in the sum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		serviceTypes := mock_interfaces.NewMockIServiceTypeRepository(ctrl)
		uc := NewCostUseCase(workOrderRepo, taskRepo, serviceTypes)

		workOrderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Task{
			{ID: "t-1", ServiceTypeID: "st-1", Status: entities.TaskStatusDone},
			{ID: "t-2", ServiceTypeID: "st-2", Status: entities.TaskStatusCancelled},
		}, nil)
		serviceTypes.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{ID: "st-1", Price: 150.5}, nil)
		serviceTypes.EXPECT().GetByID(gomock.Any(), "st-2").Return(entities.ServiceType{ID: "st-2", Price: 80}, nil)

		total, err := uc.TotalCost(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 230.5 {
			t.Fatalf("expected 230.5, got %f", total)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		serviceTypes := mock_interfaces.NewMockIServiceTypeRepository(ctrl)
		uc := NewCostUseCase(workOrderRepo, taskRepo, serviceTypes)

		workOrderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(workOrderWithStatus(entities.WorkOrderStatusInProgress), nil)
		taskRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Task{
			{ID: "t-1", ServiceTypeID: "st-1", Status: entities.TaskStatusDone},
		}, nil)
		serviceTypes.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{}, nil)

		_, err := uc.TotalCost(context.Background(), "os-1")
		if !errors.Is(err, ErrServiceTypeNotFound) {
			t.Fatalf("expected ErrServiceTypeNotFound, got %v", err)
		}
	})
}
