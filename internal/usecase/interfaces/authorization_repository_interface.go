package interfaces

import (
	"context"
	"time"

	"mecanica_os/internal/domain/entities"
)

// IAuthorizationRepository abstracts DynamoDB persistence for AuthorizationRequest.
//
// Resolve must only succeed while the request is still pending; resolving an
// already-resolved request reports "not found" (zero entity) so the use case
// can distinguish protocol misuse.

type IAuthorizationRepository interface {
	Create(ctx context.Context, r entities.AuthorizationRequest) (entities.AuthorizationRequest, error)
	GetByID(ctx context.Context, id string) (entities.AuthorizationRequest, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.AuthorizationRequest, error)
	PendingByWorkOrderID(ctx context.Context, workOrderID string) (entities.AuthorizationRequest, error)
	Resolve(ctx context.Context, id string, status entities.AuthorizationStatus, comments string, respondedAt time.Time) (entities.AuthorizationRequest, error)
}
