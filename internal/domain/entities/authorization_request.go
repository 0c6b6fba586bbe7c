package entities

import "time"

// AuthorizationStatus represents the resolution of a client authorization request.

type AuthorizationStatus string

const (
	AuthorizationStatusPending  AuthorizationStatus = "pendente"
	AuthorizationStatusApproved AuthorizationStatus = "aprovada"
	AuthorizationStatusRejected AuthorizationStatus = "rejeitada"
)

// IsResolved reports whether the request reached a terminal outcome.
func (s AuthorizationStatus) IsResolved() bool {
	return s == AuthorizationStatusApproved || s == AuthorizationStatusRejected
}

// AuthorizationRequest is the client approval gate for advancing a work order
// past its execution phase, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// At most one pending request may exist per work order; once resolved the
// record is immutable.
type AuthorizationRequest struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`

	Reason                  string  `json:"reason"`
	Details                 string  `json:"details,omitempty"`
	EstimatedAdditionalCost float64 `json:"estimated_additional_cost,omitempty"`

	Status AuthorizationStatus `json:"status"`

	SentBy         string     `json:"sent_by"`
	SentAt         time.Time  `json:"sent_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	ClientComments string     `json:"client_comments,omitempty"`
}
