package model

const (
	RoleSales     = "SALES"
	RoleMarketing = "MARKETING"
	RoleAdmin     = "ADMIN"
)

// Scope carries the authenticated caller identity extracted from the JWT.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // SALES, MARKETING, or ADMIN
	JTI    string `json:"jti"`
}

// IsAdmin checks if the scope has admin role
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsMarketing checks if the scope has marketing role
func (s Scope) IsMarketing() bool {
	return s.Role == RoleMarketing
}

// IsSales checks if the scope has sales role
func (s Scope) IsSales() bool {
	return s.Role == RoleSales
}
