package entities

import "time"

// TaskStatus represents the lifecycle of a single task inside a work order.

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pendente"
	TaskStatusInProgress TaskStatus = "em_execucao"
	TaskStatusDone       TaskStatus = "concluida"
	TaskStatusCancelled  TaskStatus = "cancelada"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusPending:    {TaskStatusInProgress, TaskStatusCancelled},
	TaskStatusInProgress: {TaskStatusDone, TaskStatusCancelled},
}

// CanTransitionTo reports whether the task state machine admits s -> next.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s admits no further transition.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusDone || s == TaskStatusCancelled
}

// IsValid reports whether s is one of the four known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskPriorityBand is a display-only banding of the 1..5 priority scale.
// Nothing in the lifecycle reads it; it exists for UI coloring.
type TaskPriorityBand string

const (
	TaskPriorityBandLow      TaskPriorityBand = "baixa"
	TaskPriorityBandNormal   TaskPriorityBand = "normal"
	TaskPriorityBandCritical TaskPriorityBand = "critica"
)

const (
	TaskPriorityMin     = 1
	TaskPriorityDefault = 3
	TaskPriorityMax     = 5
)

// PriorityBandOf maps a priority (1..5) to its display band: 1-2 low, 3 normal,
// 4-5 critical.
func PriorityBandOf(priority int) TaskPriorityBand {
	switch {
	case priority <= 2:
		return TaskPriorityBandLow
	case priority == 3:
		return TaskPriorityBandNormal
	default:
		return TaskPriorityBandCritical
	}
}

// Task is one billable unit of work inside a work order, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// Priority is immutable after creation.
type Task struct {
	ID            string `json:"id"`
	WorkOrderID   string `json:"work_order_id"`
	ServiceTypeID string `json:"service_type_id"`
	Description   string `json:"description,omitempty"`

	Priority int        `json:"priority"`
	Status   TaskStatus `json:"status"`

	EstimatedHours float64 `json:"estimated_hours,omitempty"`
	ActualHours    float64 `json:"actual_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriorityBand returns the display band derived from the task priority.
func (t Task) PriorityBand() TaskPriorityBand {
	return PriorityBandOf(t.Priority)
}
