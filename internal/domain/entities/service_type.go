package entities

import "time"

// ServiceType is a catalog entry priced by the workshop, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The total cost of a work order is the sum of the catalog prices of its tasks'
// service types; this entity is the read model backing that projection.
type ServiceType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
