package token_test

import (
	"salon/infras/token"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": "user-1",
		"email":   "user@example.com",
		"role":    role,
	}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := tok.SignedString([]byte("backend-only-secret"))
	assert.NoError(t, err)

	return signed
}

func TestInspector_Claims(t *testing.T) {
	inspector := token.New()

	claims, err := inspector.Claims(signedToken(t, "customer", time.Now().Add(time.Hour)))

	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestInspector_Claims_InvalidToken(t *testing.T) {
	inspector := token.New()

	_, err := inspector.Claims("not-a-jwt")

	assert.Error(t, err)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestInspector_Expired(t *testing.T) {
	inspector := token.New()

	tests := []struct {
		name    string
		token   string
		expired bool
	}{
		{
			name:    "valid token",
			token:   signedToken(t, "customer", time.Now().Add(time.Hour)),
			expired: false,
		},
		{
			name:    "expired token",
			token:   signedToken(t, "customer", time.Now().Add(-time.Hour)),
			expired: true,
		},
		{
			name:    "no exp claim",
			token:   signedToken(t, "customer", time.Time{}),
			expired: false,
		},
		{
			name:    "opaque token is left for the backend to judge",
			token:   "garbage",
			expired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, inspector.Expired(tt.token))
		})
	}
}

func TestInspector_Role(t *testing.T) {
	inspector := token.New()

	assert.Equal(t, "admin", inspector.Role(signedToken(t, "admin", time.Now().Add(time.Hour))))
	assert.Equal(t, "", inspector.Role("garbage"))
}
