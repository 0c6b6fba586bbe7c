package entities

import "time"

// WorkOrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The workshop backend only exposes a handful of named transition operations
//     (start, quality control, complete, cancel); the remaining states are tracked
//     locally through the status override table.
//   - Every transition endpoint maps to exactly one edge of workOrderTransitions;
//     Cancelled is reachable from any non-terminal state.

type WorkOrderStatus string

const (
	WorkOrderStatusOpen             WorkOrderStatus = "aberta"
	WorkOrderStatusInProgress       WorkOrderStatus = "em_execucao"
	WorkOrderStatusQualityControl   WorkOrderStatus = "controle_qualidade"
	WorkOrderStatusCompleted        WorkOrderStatus = "finalizada"
	WorkOrderStatusClosed           WorkOrderStatus = "entregue"
	WorkOrderStatusAwaitingParts    WorkOrderStatus = "aguardando_pecas"
	WorkOrderStatusAwaitingApproval WorkOrderStatus = "aguardando_aprovacao"
	WorkOrderStatusCancelled        WorkOrderStatus = "cancelada"
)

// workOrderTransitions is the adjacency table of the work-order state machine.
//
// QualityControl -> InProgress is the administrative rework path; QualityControl
// entry itself is additionally gated on every task being done (enforced by the
// use case, not here).
var workOrderTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	WorkOrderStatusOpen:             {WorkOrderStatusInProgress, WorkOrderStatusCancelled},
	WorkOrderStatusInProgress:       {WorkOrderStatusQualityControl, WorkOrderStatusAwaitingParts, WorkOrderStatusAwaitingApproval, WorkOrderStatusCancelled},
	WorkOrderStatusAwaitingParts:    {WorkOrderStatusInProgress, WorkOrderStatusCancelled},
	WorkOrderStatusAwaitingApproval: {WorkOrderStatusQualityControl, WorkOrderStatusAwaitingApproval, WorkOrderStatusCancelled},
	WorkOrderStatusQualityControl:   {WorkOrderStatusCompleted, WorkOrderStatusInProgress},
	WorkOrderStatusCompleted:        {WorkOrderStatusClosed},
}

// CanTransitionTo reports whether the state machine admits s -> next.
func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	for _, allowed := range workOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition leaves s.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusClosed || s == WorkOrderStatusCancelled
}

// IsClosedForTaskChanges reports whether the task set of an order in status s is
// frozen (no add/remove/status changes).
func (s WorkOrderStatus) IsClosedForTaskChanges() bool {
	return s == WorkOrderStatusCompleted || s == WorkOrderStatusClosed || s == WorkOrderStatusCancelled
}

// IsValid reports whether s is one of the eight known statuses.
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusOpen, WorkOrderStatusInProgress, WorkOrderStatusQualityControl,
		WorkOrderStatusCompleted, WorkOrderStatusClosed, WorkOrderStatusAwaitingParts,
		WorkOrderStatusAwaitingApproval, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// WorkOrder is the service order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The Status field holds the locally recorded status. Readers must resolve it
// through the status override merge before trusting it against the workshop
// backend's reported value.
type WorkOrder struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	VehicleID  string `json:"vehicle_id"`
	AdvisorID  string `json:"advisor_id,omitempty"`
	MechanicID string `json:"mechanic_id,omitempty"`

	Status WorkOrderStatus `json:"status"`

	ReceptionNotes          string     `json:"reception_notes,omitempty"`
	OdometerIn              int64      `json:"odometer_in,omitempty"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date,omitempty"`
	EstimatedHours          float64    `json:"estimated_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
