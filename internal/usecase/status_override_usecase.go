package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"
)

var (
	ErrInvalidWorkOrderID     = errors.New("invalid work order id")
	ErrInvalidWorkOrderStatus = errors.New("invalid work order status")
)

// IStatusOverrideUseCase reconciles the locally recorded work-order status with
// the status reported by the workshop backend.
//
// The backend only implements narrow transition operations for a few statuses,
// so the local override is authoritative whenever it exists:
//   - Resolve returns the override when present; otherwise it adopts the
//     backend-reported value as the initial override (first-read-wins) and
//     returns it. The merge is idempotent and self-healing on first access.
//   - Set writes unconditionally. It is not part of any cross-system
//     transaction: a failed backend sync upstream leaves the override as the
//     sole source of truth until the backend catches up.

type IStatusOverrideUseCase interface {
	Resolve(ctx context.Context, workOrderID string, backendReported entities.WorkOrderStatus) (entities.WorkOrderStatus, error)
	Set(ctx context.Context, workOrderID string, status entities.WorkOrderStatus) error
}

type StatusOverrideUseCase struct {
	repo interfaces.IStatusOverrideRepository
}

var _ IStatusOverrideUseCase = (*StatusOverrideUseCase)(nil)

func NewStatusOverrideUseCase(repo interfaces.IStatusOverrideRepository) *StatusOverrideUseCase {
	return &StatusOverrideUseCase{repo: repo}
}

func (u *StatusOverrideUseCase) Resolve(ctx context.Context, workOrderID string, backendReported entities.WorkOrderStatus) (entities.WorkOrderStatus, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return "", ErrInvalidWorkOrderID
	}

	entry, err := u.repo.Get(ctx, workOrderID)
	if err != nil {
		return "", err
	}
	if entry.WorkOrderID != "" {
		return entry.Status, nil
	}

	if !backendReported.IsValid() {
		return "", ErrInvalidWorkOrderStatus
	}

	adopted, err := u.repo.Put(ctx, entities.StatusOverrideEntry{
		WorkOrderID: workOrderID,
		Status:      backendReported,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return adopted.Status, nil
}

func (u *StatusOverrideUseCase) Set(ctx context.Context, workOrderID string, status entities.WorkOrderStatus) error {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return ErrInvalidWorkOrderID
	}
	if !status.IsValid() {
		return ErrInvalidWorkOrderStatus
	}

	_, err := u.repo.Put(ctx, entities.StatusOverrideEntry{
		WorkOrderID: workOrderID,
		Status:      status,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[override][usecase] put failed work_order_id=%s status=%s err=%v", workOrderID, status, err)
		return err
	}
	return nil
}
