package response

import (
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/pkg"
)

type AuthorizationResponse struct {
	ID                      string     `json:"id"`
	WorkOrderID             string     `json:"work_order_id"`
	Reason                  string     `json:"reason"`
	Details                 string     `json:"details,omitempty"`
	EstimatedAdditionalCost float64    `json:"estimated_additional_cost,omitempty"`
	Status                  string     `json:"status"`
	SentBy                  string     `json:"sent_by,omitempty"`
	SentAt                  time.Time  `json:"sent_at"`
	RespondedAt             *time.Time `json:"responded_at,omitempty"`
	ClientComments          string     `json:"client_comments,omitempty"`
}

func FromAuthorization(a entities.AuthorizationRequest) AuthorizationResponse {
	return AuthorizationResponse{
		ID:                      a.ID,
		WorkOrderID:             a.WorkOrderID,
		Reason:                  a.Reason,
		Details:                 a.Details,
		EstimatedAdditionalCost: a.EstimatedAdditionalCost,
		Status:                  string(a.Status),
		SentBy:                  a.SentBy,
		SentAt:                  a.SentAt,
		RespondedAt:             a.RespondedAt,
		ClientComments:          a.ClientComments,
	}
}

func FromAuthorizations(list []entities.AuthorizationRequest) []AuthorizationResponse {
	out := make([]AuthorizationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAuthorization(a))
	}
	return out
}

// AuthorizationSendResponse is the created request plus delivery warnings.
type AuthorizationSendResponse struct {
	Authorization AuthorizationResponse `json:"authorization"`
	Warnings      []WarningResponse     `json:"warnings,omitempty"`
}

func FromAuthorizationSend(a entities.AuthorizationRequest, warnings []pkg.Warning) AuthorizationSendResponse {
	return AuthorizationSendResponse{
		Authorization: FromAuthorization(a),
		Warnings:      FromWarnings(warnings),
	}
}

// AuthorizationRespondResponse distinguishes a clean approval (advanced=true)
// from an approval recorded over a stale task set (advanced=false plus a
// warning).
type AuthorizationRespondResponse struct {
	Authorization AuthorizationResponse `json:"authorization"`
	WorkOrder     *WorkOrderResponse    `json:"work_order,omitempty"`
	Advanced      bool                  `json:"advanced"`
	Warnings      []WarningResponse     `json:"warnings,omitempty"`
}

func FromAuthorizationRespond(req entities.AuthorizationRequest, wo entities.WorkOrder, advanced bool, warnings []pkg.Warning) AuthorizationRespondResponse {
	resp := AuthorizationRespondResponse{
		Authorization: FromAuthorization(req),
		Advanced:      advanced,
		Warnings:      FromWarnings(warnings),
	}
	if wo.ID != "" {
		woResp := FromWorkOrder(wo)
		resp.WorkOrder = &woResp
	}
	return resp
}
