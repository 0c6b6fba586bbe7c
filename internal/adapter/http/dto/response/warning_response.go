package response

import "mecanica_os/pkg"

// WarningResponse tells the operator a dependent action failed even though the
// requested one succeeded.
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func FromWarnings(warnings []pkg.Warning) []WarningResponse {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningResponse{Code: w.Code, Message: w.Message})
	}
	return out
}
