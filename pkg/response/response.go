package response

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Error(code, message string, details any) Body {
	return Body{
		Code:    code,
		Message: message,
		Details: details,
	}
}
