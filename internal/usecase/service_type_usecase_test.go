package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_os/internal/domain/entities"
	mock_interfaces "mecanica_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceTypeUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewServiceTypeUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "", 10)
		if !errors.Is(err, ErrInvalidServiceTypeName) {
			t.Fatalf("expected ErrInvalidServiceTypeName, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		uc := NewServiceTypeUseCase(nil)
		_, err := uc.Create(context.Background(), "Troca de oleo", "", 0)
		if !errors.Is(err, ErrInvalidServiceTypePrice) {
			t.Fatalf("expected ErrInvalidServiceTypePrice, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceTypeRepository(ctrl)
		uc := NewServiceTypeUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceType{})).DoAndReturn(
			func(_ context.Context, st entities.ServiceType) (entities.ServiceType, error) {
				if st.ID == "" || st.Name != "Troca de oleo" || st.Price != 150.5 {
					t.Fatalf("unexpected service type: %+v", st)
				}
				if st.CreatedAt.IsZero() || st.UpdatedAt.IsZero() {
					t.Fatal("expected timestamps")
				}
				return st, nil
			},
		)

		st, err := uc.Create(context.Background(), " Troca de oleo ", "oleo sintetico", 150.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Description != "oleo sintetico" {
			t.Fatalf("unexpected description %q", st.Description)
		}
	})
}

func TestServiceTypeUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceTypeUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidServiceTypeID) {
			t.Fatalf("expected ErrInvalidServiceTypeID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceTypeRepository(ctrl)
		uc := NewServiceTypeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{}, nil)

		_, err := uc.GetByID(context.Background(), "st-1")
		if !errors.Is(err, ErrServiceTypeNotFound) {
			t.Fatalf("expected ErrServiceTypeNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceTypeRepository(ctrl)
		uc := NewServiceTypeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.ServiceType{ID: "st-1", Name: "Alinhamento"}, nil)

		st, err := uc.GetByID(context.Background(), " st-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Name != "Alinhamento" {
			t.Fatalf("unexpected name %q", st.Name)
		}
	})
}
