package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Generate(42, "joao@x.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "joao@x.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	signed, err := m.Generate(1, "a@b.com", false)
	require.NoError(t, err)

	_, err = other.Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Generate(1, "a@b.com", false)
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}

func TestDefaultTTLApplied(t *testing.T) {
	m := NewManager("test-secret", 0)

	signed, err := m.Generate(1, "a@b.com", false)
	require.NoError(t, err)

	claims, err := m.Parse(signed)
	require.NoError(t, err)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), exp.Time, time.Minute)
}
