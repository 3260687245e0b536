package dto

import "encoding/json"

// ErrorCode is the machine-readable code carried next to an error message
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeUnauthenticated    ErrorCode = "Unauthenticated"
	ErrorCodeInvalidToken       ErrorCode = "InvalidToken"
	ErrorCodeInvalidCredentials ErrorCode = "InvalidCredentials"
	ErrorCodeBadRequest         ErrorCode = "BadRequest"
	ErrorCodeValidationFailed   ErrorCode = "ValidationFailed"
	ErrorCodeDuplicateValue     ErrorCode = "DuplicateValue"
	ErrorCodeNotFound           ErrorCode = "NotFound"
	ErrorCodeConflict           ErrorCode = "Conflict"
	ErrorCodeStoreFailure       ErrorCode = "StoreFailure"
)

// ErrorDetail is one entry of the error envelope.
// Details are flattened into the entry when marshalled.
type ErrorDetail struct {
	Msg      string                 `json:"msg" example:"Invalid credentials"`
	Code     ErrorCode              `json:"code,omitempty" example:"InvalidCredentials"`
	Param    string                 `json:"param,omitempty" example:"email"`
	Location string                 `json:"location,omitempty" example:"body"`
	Details  map[string]interface{} `json:"-"`
}

// MarshalJSON flattens Details next to the named fields. Named fields win.
func (e ErrorDetail) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(e.Details)+4)
	for k, v := range e.Details {
		out[k] = v
	}
	out["msg"] = e.Msg
	if e.Code != "" {
		out["code"] = e.Code
	}
	if e.Param != "" {
		out["param"] = e.Param
	}
	if e.Location != "" {
		out["location"] = e.Location
	}
	return json.Marshal(out)
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, msg string) ErrorDetail {
	return ErrorDetail{Msg: msg, Code: code}
}

// WithDetails adds pass-through fields to the error detail
func (e ErrorDetail) WithDetails(details map[string]interface{}) ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse wraps the given details in the envelope
func NewErrorResponse(details ...ErrorDetail) *ErrorResponse {
	if details == nil {
		details = []ErrorDetail{}
	}
	return &ErrorResponse{Errors: details}
}
