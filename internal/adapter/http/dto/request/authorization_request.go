package request

import "strings"

// SendAuthorizationRequest opens the client approval gate for a work order.
type SendAuthorizationRequest struct {
	Reason                  string  `json:"reason" binding:"required"`
	Details                 string  `json:"details"`
	EstimatedAdditionalCost float64 `json:"estimated_additional_cost"`
	SentBy                  string  `json:"sent_by"`
}

func (r SendAuthorizationRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

// RespondAuthorizationRequest carries the client's optional comments; the
// outcome is the endpoint itself (approve or reject).
type RespondAuthorizationRequest struct {
	Comments string `json:"comments"`
}
