package response

import (
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/pkg"
)

type WorkOrderResponse struct {
	ID                      string     `json:"id"`
	ClientID                string     `json:"client_id"`
	VehicleID               string     `json:"vehicle_id"`
	AdvisorID               string     `json:"advisor_id,omitempty"`
	MechanicID              string     `json:"mechanic_id,omitempty"`
	Status                  string     `json:"status"`
	ReceptionNotes          string     `json:"reception_notes,omitempty"`
	OdometerIn              int64      `json:"odometer_in,omitempty"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date,omitempty"`
	EstimatedHours          float64    `json:"estimated_hours,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                      wo.ID,
		ClientID:                wo.ClientID,
		VehicleID:               wo.VehicleID,
		AdvisorID:               wo.AdvisorID,
		MechanicID:              wo.MechanicID,
		Status:                  string(wo.Status),
		ReceptionNotes:          wo.ReceptionNotes,
		OdometerIn:              wo.OdometerIn,
		EstimatedCompletionDate: wo.EstimatedCompletionDate,
		EstimatedHours:          wo.EstimatedHours,
		CreatedAt:               wo.CreatedAt,
		UpdatedAt:               wo.UpdatedAt,
	}
}

// WorkOrderMutationResponse is returned by every transition endpoint: the
// updated order plus warnings for follow-ups that failed.
type WorkOrderMutationResponse struct {
	WorkOrder WorkOrderResponse `json:"work_order"`
	Warnings  []WarningResponse `json:"warnings,omitempty"`
}

func FromWorkOrderMutation(wo entities.WorkOrder, warnings []pkg.Warning) WorkOrderMutationResponse {
	return WorkOrderMutationResponse{
		WorkOrder: FromWorkOrder(wo),
		Warnings:  FromWarnings(warnings),
	}
}

// WorkOrderDetailResponse is the merged read model: resolved status, tasks in
// creation order and the derived total cost.
type WorkOrderDetailResponse struct {
	WorkOrderResponse
	Tasks     []TaskResponse `json:"tasks"`
	TotalCost float64        `json:"total_cost"`
}

func FromWorkOrderDetail(wo entities.WorkOrder, tasks []entities.Task, totalCost float64) WorkOrderDetailResponse {
	return WorkOrderDetailResponse{
		WorkOrderResponse: FromWorkOrder(wo),
		Tasks:             FromTasks(tasks),
		TotalCost:         totalCost,
	}
}

// WorkOrderCostResponse is the cost projection on its own.
type WorkOrderCostResponse struct {
	WorkOrderID string  `json:"work_order_id"`
	TotalCost   float64 `json:"total_cost"`
}
