package scope

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 2 * time.Hour

// NewManager builds a Manager with the given HMAC secret.
func NewManager(secretKey, issuer string) Manager {
	return &implManager{secretKey: []byte(secretKey), issuer: issuer}
}

// Generate signs a new HS256 token. The service itself only verifies tokens;
// generation exists for internal tooling and tests.
func (m *implManager) Generate(userID, email, role string) (string, error) {
	now := time.Now()
	claims := Payload{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(defaultTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token.
func (m *implManager) Verify(tokenString string) (Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Payload{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return Payload{}, fmt.Errorf("invalid token")
	}
	payload, ok := token.Claims.(*Payload)
	if !ok {
		return Payload{}, fmt.Errorf("unexpected claims type")
	}
	return *payload, nil
}

// SetPayloadToContext stores the verified payload in ctx.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

// GetPayloadFromContext extracts the verified payload from ctx.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return payload, ok
}
