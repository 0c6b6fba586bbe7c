package request

import (
	"strings"
	"time"
)

// WorkOrderItemRequest is one service line of a registration payload. The
// quotation-approval integration sends one item per approved service.
type WorkOrderItemRequest struct {
	ServiceTypeID  string  `json:"service_type_id" binding:"required"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	Priority       int     `json:"priority"`
}

// RegisterWorkOrderRequest opens a new work order, manually or from an
// approved quotation.
type RegisterWorkOrderRequest struct {
	ClientID                string                 `json:"client_id" binding:"required"`
	VehicleID               string                 `json:"vehicle_id" binding:"required"`
	AdvisorID               string                 `json:"advisor_id"`
	MechanicID              string                 `json:"mechanic_id"`
	ReceptionNotes          string                 `json:"reception_notes"`
	OdometerIn              int64                  `json:"odometer_in"`
	EstimatedCompletionDate *time.Time             `json:"estimated_completion_date"`
	EstimatedHours          float64                `json:"estimated_hours"`
	Items                   []WorkOrderItemRequest `json:"items"`
}

func (r RegisterWorkOrderRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r RegisterWorkOrderRequest) ResolveVehicleID() string {
	return strings.TrimSpace(r.VehicleID)
}
