package interfaces

import (
	"context"
	"mecanica_os/internal/domain/entities"
)

// IStatusOverrideRepository abstracts DynamoDB persistence for StatusOverrideEntry.
//
// An absent entry is reported as a zero-value entity; Put is append/replace-only.

type IStatusOverrideRepository interface {
	Get(ctx context.Context, workOrderID string) (entities.StatusOverrideEntry, error)
	Put(ctx context.Context, e entities.StatusOverrideEntry) (entities.StatusOverrideEntry, error)
}
