package interfaces

import (
	"context"
	"mecanica_os/internal/domain/entities"
)

// IServiceTypeRepository abstracts DynamoDB persistence for the ServiceType catalog.

type IServiceTypeRepository interface {
	Create(ctx context.Context, st entities.ServiceType) (entities.ServiceType, error)
	GetByID(ctx context.Context, id string) (entities.ServiceType, error)
}
