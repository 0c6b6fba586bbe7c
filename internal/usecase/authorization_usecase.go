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
	ErrInvalidAuthorizationReason   = errors.New("invalid authorization reason")
	ErrInvalidAuthorizationOutcome  = errors.New("invalid authorization outcome")
	ErrAuthorizationAlreadyPending  = errors.New("an authorization request is already pending for this work order")
	ErrNoPendingAuthorization       = errors.New("no pending authorization request for this work order")
	ErrAuthorizationAlreadyResolved = errors.New("authorization request already resolved")
)

// AuthorizationSendCommand carries the operator input for a new request.
type AuthorizationSendCommand struct {
	Reason                  string
	Details                 string
	EstimatedAdditionalCost float64
	SentBy                  string
}

// AuthorizationRespondResult is the outcome of a client (or administrative)
// response. Advanced reports whether the work order actually moved to quality
// control: an approval over tasks that were reopened after the request was
// sent records the approval but leaves the order behind, and that divergence
// is surfaced as a warning rather than an error.
type AuthorizationRespondResult struct {
	Request   entities.AuthorizationRequest
	WorkOrder entities.WorkOrder
	Advanced  bool
	Warnings  []pkg.Warning
}

// IAuthorizationUseCase manages the request/response protocol that gates the
// client-approved path into quality control.

type IAuthorizationUseCase interface {
	Send(ctx context.Context, workOrderID string, cmd AuthorizationSendCommand) (entities.AuthorizationRequest, []pkg.Warning, error)
	Respond(ctx context.Context, workOrderID string, outcome entities.AuthorizationStatus, comments string) (AuthorizationRespondResult, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.AuthorizationRequest, error)
}

type AuthorizationUseCase struct {
	repo       interfaces.IAuthorizationRepository
	workOrders interfaces.IWorkOrderGate
	notifier   interfaces.IClientNotifier
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(
	repo interfaces.IAuthorizationRepository,
	workOrders interfaces.IWorkOrderGate,
	notifier interfaces.IClientNotifier,
) *AuthorizationUseCase {
	return &AuthorizationUseCase{repo: repo, workOrders: workOrders, notifier: notifier}
}

// Send creates a pending request and moves the owning work order to the
// awaiting-approval status in the same operator action. The client
// notification is best-effort: the request and the status stand whether or
// not the client was actually reached.
func (u *AuthorizationUseCase) Send(ctx context.Context, workOrderID string, cmd AuthorizationSendCommand) (entities.AuthorizationRequest, []pkg.Warning, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.AuthorizationRequest{}, nil, ErrInvalidWorkOrderID
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return entities.AuthorizationRequest{}, nil, ErrInvalidAuthorizationReason
	}

	pending, err := u.repo.PendingByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return entities.AuthorizationRequest{}, nil, err
	}
	if pending.ID != "" {
		return entities.AuthorizationRequest{}, nil, ErrAuthorizationAlreadyPending
	}

	_, warnings, err := u.workOrders.RequestApproval(ctx, workOrderID)
	if err != nil {
		return entities.AuthorizationRequest{}, nil, err
	}

	req := entities.AuthorizationRequest{
		ID:                      uuid.NewString(),
		WorkOrderID:             workOrderID,
		Reason:                  reason,
		Details:                 cmd.Details,
		EstimatedAdditionalCost: cmd.EstimatedAdditionalCost,
		Status:                  entities.AuthorizationStatusPending,
		SentBy:                  strings.TrimSpace(cmd.SentBy),
		SentAt:                  time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, req)
	if err != nil {
		return entities.AuthorizationRequest{}, nil, err
	}

	if u.notifier == nil {
		log.Printf("[authorization][usecase] notifier not configured work_order_id=%s request_id=%s", workOrderID, created.ID)
		warnings = append(warnings, pkg.NewWarning(WarnNotificationFailed, "client was not notified; resend the notification manually"))
	} else if err := u.notifier.NotifyAuthorizationRequested(ctx, created); err != nil {
		log.Printf("[authorization][usecase] notification failed work_order_id=%s request_id=%s err=%v", workOrderID, created.ID, err)
		warnings = append(warnings, pkg.NewWarning(WarnNotificationFailed, "client was not notified; resend the notification manually"))
	}
	return created, warnings, nil
}

// Respond resolves the pending request exactly once. The resolution is
// recorded before any work-order transition is attempted, so an approval over
// a stale task set still stands on the request itself.
func (u *AuthorizationUseCase) Respond(ctx context.Context, workOrderID string, outcome entities.AuthorizationStatus, comments string) (AuthorizationRespondResult, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return AuthorizationRespondResult{}, ErrInvalidWorkOrderID
	}
	if outcome != entities.AuthorizationStatusApproved && outcome != entities.AuthorizationStatusRejected {
		return AuthorizationRespondResult{}, ErrInvalidAuthorizationOutcome
	}

	pending, err := u.repo.PendingByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return AuthorizationRespondResult{}, err
	}
	if pending.ID == "" {
		all, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
		if err != nil {
			return AuthorizationRespondResult{}, err
		}
		if len(all) > 0 {
			return AuthorizationRespondResult{}, ErrAuthorizationAlreadyResolved
		}
		return AuthorizationRespondResult{}, ErrNoPendingAuthorization
	}

	resolved, err := u.repo.Resolve(ctx, pending.ID, outcome, strings.TrimSpace(comments), time.Now().UTC())
	if err != nil {
		return AuthorizationRespondResult{}, err
	}
	if resolved.ID == "" {
		return AuthorizationRespondResult{}, ErrAuthorizationAlreadyResolved
	}

	result := AuthorizationRespondResult{Request: resolved}

	if outcome == entities.AuthorizationStatusRejected {
		// Rework requested: the order stays awaiting approval until an
		// operator explicitly resumes work.
		wo, warnings, err := u.workOrders.RequestApproval(ctx, workOrderID)
		if err != nil {
			log.Printf("[authorization][usecase] reject hold failed work_order_id=%s err=%v", workOrderID, err)
		} else {
			result.WorkOrder = wo
		}
		result.Warnings = append(result.Warnings, warnings...)
		return result, nil
	}

	wo, warnings, err := u.workOrders.EnterQualityControl(ctx, workOrderID)
	result.Warnings = append(result.Warnings, warnings...)
	if err != nil {
		log.Printf("[authorization][usecase] approved but order not advanced work_order_id=%s request_id=%s err=%v", workOrderID, resolved.ID, err)
		result.Warnings = append(result.Warnings, pkg.NewWarning(
			WarnWorkOrderNotAdvanced,
			"approval recorded but the work order did not advance: "+err.Error(),
		))
		return result, nil
	}
	result.WorkOrder = wo
	result.Advanced = true
	return result, nil
}

func (u *AuthorizationUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.AuthorizationRequest, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}
