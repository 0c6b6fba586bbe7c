package request

import "strings"

// CreateServiceTypeRequest registers a priced catalog entry.
type CreateServiceTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
}

func (r CreateServiceTypeRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}
