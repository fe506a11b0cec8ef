package scope

import "github.com/golang-jwt/jwt/v5"

// Payload represents the JWT token claims carried by admin-surface requests.
type Payload struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserID returns the token subject.
func (p Payload) UserID() string {
	return p.Subject
}

// Manager verifies bearer tokens issued by the external auth service.
type Manager interface {
	Generate(userID, email, role string) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secretKey []byte
	issuer    string
}

// Context key types for payload injection.
type payloadCtxKey struct{}
