package pkg

// Warning reports a dependent action that failed after the requested action
// already succeeded. Operators must be able to tell "your action failed"
// apart from "your action succeeded but a follow-up did not"; warnings carry
// the second case alongside a successful result.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewWarning(code, message string) Warning {
	return Warning{Code: code, Message: message}
}
