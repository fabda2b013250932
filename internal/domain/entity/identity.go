package entity

// RoleAdmin is the only role in use. There is no role hierarchy.
const RoleAdmin = "admin"

// Identity is the authenticated caller asserted by a verified token. It is
// never persisted; verification is stateless.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
