package errors

// ErrorInfo carries the machine-readable part of an error response.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "PRODUCT_NOT_FOUND"
	Details string `json:"details,omitempty"` // Optional human-readable detail, never a raw internal error
}

// Response is the uniform envelope every endpoint returns. Internal
// diagnostic detail is logged against the request id, not returned.
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"requestId,omitempty"` // Correlation id for tracing a failure in the logs
}
