package middleware

// Keys used to stash per-request values on the gin context. The authenticated
// user ID is threaded through the context on every request rather than held
// in any package-level session state.
const (
	// RequestIDKey is the key used to store the request ID in the gin context
	RequestIDKey = "request_id"
	// UserIDKey is the key used to store the authenticated user's ID
	UserIDKey = "user_id"
)
