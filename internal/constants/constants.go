package constants

// Pagination bounds for list endpoints
const (
	DefaultPage     = 1
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// Context keys
const (
	ContextKeyRequestID = "request_id"
)
