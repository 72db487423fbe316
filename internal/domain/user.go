package domain

type ContextKey string

const UserContextKey ContextKey = "user"

const RoleAdmin = "admin"

// User is the identity carried by a verified access token.
type User struct {
	ID    string `json:"id"` // UUID
	Email string `json:"email"`
	Role  string `json:"role"`
}
