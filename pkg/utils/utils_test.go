package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{a: 123, b: 17, want: 8},
		{a: 34, b: 17, want: 2},
		{a: 0, b: 5, want: 0},
		{a: 1, b: 5, want: 1},
		{a: -7, b: 2, want: -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilDiv(tt.a, tt.b), "CeilDiv(%d, %d)", tt.a, tt.b)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("30/06/2025")
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 32)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, token)

	other, err := GenerateToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = GenerateToken(8)
	assert.Error(t, err)

	_, err = GenerateToken(100)
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	hash, err := HashToken("s3cret-token")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-token")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("outro")))
}
