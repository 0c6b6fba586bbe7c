package interfaces

import (
	"context"
	"mecanica_os/internal/domain/entities"
)

// IClientNotifier abstracts the notification/chat channel used to tell the
// vehicle owner an authorization request awaits their response. Delivery
// failure never blocks the state transition; callers resend explicitly.
type IClientNotifier interface {
	NotifyAuthorizationRequested(ctx context.Context, req entities.AuthorizationRequest) error
}
