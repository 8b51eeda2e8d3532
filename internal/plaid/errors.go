package plaid

import "fmt"

// APIError is a Plaid error envelope.
type APIError struct {
	ErrorType      string `json:"error_type"`
	ErrorCode      string `json:"error_code"`
	Message        string `json:"error_message"`
	DisplayMessage string `json:"display_message"`
	RequestID      string `json:"request_id"`
	StatusCode     int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("plaid: %s/%s: %s", e.ErrorType, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("plaid: %s", e.Message)
}

// IsAPIError reports whether err is a Plaid error envelope and returns it.
func IsAPIError(err error) (*APIError, bool) {
	apiErr, ok := err.(*APIError)
	return apiErr, ok
}
