package entities

import "time"

// StatusOverrideEntry is the locally authoritative status record for a work
// order, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: work_order_id
//
// The workshop backend only implements narrow transition operations for a few
// of the eight statuses; the override table covers the rest. An absent entry
// means "trust the backend-reported status"; once an entry exists it wins
// until the next write.
type StatusOverrideEntry struct {
	WorkOrderID string          `json:"work_order_id"`
	Status      WorkOrderStatus `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
