package middleware

// ContextKey is a private key type to avoid context collisions.
type ContextKey string

// UserIDCtxKey carries the authenticated user id set by JWTAuth.
const UserIDCtxKey = ContextKey("user_id")
