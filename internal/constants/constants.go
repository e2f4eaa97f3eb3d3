package constants

// Pagination defaults for list endpoints
const (
	DefaultOffset = 0
	DefaultLimit  = 10
)

// Context keys used by the entity-loading middleware
const (
	ContextKeyUser     = "user"
	ContextKeyActivity = "activity"
)
