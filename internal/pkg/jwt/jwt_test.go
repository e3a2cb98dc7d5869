package jwt

import (
	"testing"

	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret", "24h", "5m")

	token, expiresIn, err := svc.GenerateAccessToken("E001", "Alice", user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(86400), expiresIn)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	id, _ := decoded.Get("employee_id")
	role, _ := decoded.Get("role")
	typ, _ := decoded.Get("type")
	assert.Equal(t, "E001", id)
	assert.Equal(t, "manager", role)
	assert.Equal(t, "access", typ)
}

func TestGenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "a day", "5m")

	_, _, err := svc.GenerateAccessToken("E001", "Alice", user.RoleEmployee)
	assert.Error(t, err)
}

func TestSSEToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "24h", "5m")

	token, expiresIn, err := svc.GenerateSSEToken("E002")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	id, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "E002", id)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "24h", "5m")

	access, _, err := svc.GenerateAccessToken("E001", "Alice", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)
}

func TestValidateSSEToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "24h", "5m")
	verifier := NewJWTService("secret-b", "24h", "5m")

	token, _, err := issuer.GenerateSSEToken("E001")
	require.NoError(t, err)

	_, err = verifier.ValidateSSEToken(token)
	assert.Error(t, err)
}
