package types

// ContextUserKey is where the auth middleware stores the verified username.
const ContextUserKey = "userId"

// UserResponse is the public projection of a user row. The password column
// never appears in any API payload.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
