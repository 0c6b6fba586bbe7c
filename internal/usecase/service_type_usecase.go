package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceTypeName  = errors.New("invalid service type name")
	ErrInvalidServiceTypePrice = errors.New("invalid service type price")
)

// IServiceTypeUseCase maintains the priced service catalog the cost projection
// reads from.

type IServiceTypeUseCase interface {
	Create(ctx context.Context, name, description string, price float64) (entities.ServiceType, error)
	GetByID(ctx context.Context, id string) (entities.ServiceType, error)
}

type ServiceTypeUseCase struct {
	repo interfaces.IServiceTypeRepository
}

var _ IServiceTypeUseCase = (*ServiceTypeUseCase)(nil)

func NewServiceTypeUseCase(repo interfaces.IServiceTypeRepository) *ServiceTypeUseCase {
	return &ServiceTypeUseCase{repo: repo}
}

func (u *ServiceTypeUseCase) Create(ctx context.Context, name, description string, price float64) (entities.ServiceType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ServiceType{}, ErrInvalidServiceTypeName
	}
	if price <= 0 {
		return entities.ServiceType{}, ErrInvalidServiceTypePrice
	}

	now := time.Now().UTC()
	st := entities.ServiceType{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, st)
}

func (u *ServiceTypeUseCase) GetByID(ctx context.Context, id string) (entities.ServiceType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceType{}, ErrInvalidServiceTypeID
	}

	st, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceType{}, err
	}
	if st.ID == "" {
		return entities.ServiceType{}, ErrServiceTypeNotFound
	}
	return st, nil
}
