package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONOmitsUnsetRole(t *testing.T) {
	b, err := json.Marshal(New("u1", "Alice", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","name":"Alice"}`, string(b))

	b, err = json.Marshal(New("u1", "Alice", "admin"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","name":"Alice","role":"admin"}`, string(b))
}

func TestUser_EffectiveRole(t *testing.T) {
	assert.Equal(t, RoleEmployee, New("u1", "Alice", "").EffectiveRole())
	assert.Equal(t, RoleManager, New("u1", "Alice", "manager").EffectiveRole())
}

func TestUser_CanApprove(t *testing.T) {
	assert.True(t, New("u1", "Alice", "admin").CanApprove())
	assert.True(t, New("u1", "Alice", "manager").CanApprove())
	assert.False(t, New("u1", "Alice", "employee").CanApprove())
	assert.False(t, New("u1", "Alice", "").CanApprove())
	assert.False(t, New("u1", "Alice", "intern").CanApprove())
}

func TestUser_Equal(t *testing.T) {
	a := New("u1", "Alice", "")
	assert.True(t, a.Equal(New("u1", "Alice", "")))
	assert.False(t, a.Equal(New("u1", "Alice", "admin")))
	assert.True(t, New("u1", "Alice", "admin").Equal(New("u1", "Alice", "admin")))
	assert.False(t, a.Equal(New("u2", "Alice", "")))
}
