package entities

import "testing"

func TestWorkOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to WorkOrderStatus
	}{
		{WorkOrderStatusOpen, WorkOrderStatusInProgress},
		{WorkOrderStatusOpen, WorkOrderStatusCancelled},
		{WorkOrderStatusInProgress, WorkOrderStatusQualityControl},
		{WorkOrderStatusInProgress, WorkOrderStatusAwaitingParts},
		{WorkOrderStatusInProgress, WorkOrderStatusAwaitingApproval},
		{WorkOrderStatusInProgress, WorkOrderStatusCancelled},
		{WorkOrderStatusAwaitingParts, WorkOrderStatusInProgress},
		{WorkOrderStatusAwaitingApproval, WorkOrderStatusQualityControl},
		{WorkOrderStatusAwaitingApproval, WorkOrderStatusAwaitingApproval},
		{WorkOrderStatusQualityControl, WorkOrderStatusCompleted},
		{WorkOrderStatusQualityControl, WorkOrderStatusInProgress},
		{WorkOrderStatusCompleted, WorkOrderStatusClosed},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to WorkOrderStatus
	}{
		{WorkOrderStatusOpen, WorkOrderStatusQualityControl},
		{WorkOrderStatusOpen, WorkOrderStatusCompleted},
		{WorkOrderStatusAwaitingParts, WorkOrderStatusQualityControl},
		{WorkOrderStatusQualityControl, WorkOrderStatusCancelled},
		{WorkOrderStatusCompleted, WorkOrderStatusInProgress},
		{WorkOrderStatusCompleted, WorkOrderStatusCancelled},
		{WorkOrderStatusClosed, WorkOrderStatusInProgress},
		{WorkOrderStatusCancelled, WorkOrderStatusOpen},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestWorkOrderStatus_IsTerminal(t *testing.T) {
	if !WorkOrderStatusClosed.IsTerminal() || !WorkOrderStatusCancelled.IsTerminal() {
		t.Fatal("expected entregue and cancelada to be terminal")
	}
	for _, s := range []WorkOrderStatus{
		WorkOrderStatusOpen, WorkOrderStatusInProgress, WorkOrderStatusQualityControl,
		WorkOrderStatusCompleted, WorkOrderStatusAwaitingParts, WorkOrderStatusAwaitingApproval,
	} {
		if s.IsTerminal() {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}

func TestWorkOrderStatus_IsClosedForTaskChanges(t *testing.T) {
	for _, s := range []WorkOrderStatus{WorkOrderStatusCompleted, WorkOrderStatusClosed, WorkOrderStatusCancelled} {
		if !s.IsClosedForTaskChanges() {
			t.Errorf("expected %s to freeze the task set", s)
		}
	}
	for _, s := range []WorkOrderStatus{
		WorkOrderStatusOpen, WorkOrderStatusInProgress, WorkOrderStatusQualityControl,
		WorkOrderStatusAwaitingParts, WorkOrderStatusAwaitingApproval,
	} {
		if s.IsClosedForTaskChanges() {
			t.Errorf("expected %s to keep the task set mutable", s)
		}
	}
}

func TestWorkOrderStatus_IsValid(t *testing.T) {
	if !WorkOrderStatusOpen.IsValid() {
		t.Fatal("expected aberta to be valid")
	}
	if WorkOrderStatus("unknown").IsValid() {
		t.Fatal("expected unknown status to be invalid")
	}
	if WorkOrderStatus("").IsValid() {
		t.Fatal("expected empty status to be invalid")
	}
}
