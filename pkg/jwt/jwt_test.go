package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	id := uuid.New()

	token, err := GenerateToken("s3cret", id, time.Hour)
	require.NoError(t, err)

	got, err := ParseSubject("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseSubject_Rejects(t *testing.T) {
	id := uuid.New()
	valid, err := GenerateToken("s3cret", id, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken("s3cret", id, -time.Minute)
	require.NoError(t, err)
	numeric, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{Subject: "42"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other", valid},
		{"expired", "s3cret", expired},
		{"garbage", "s3cret", "not-a-jwt"},
		{"non uuid subject", "s3cret", numeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubject(tt.secret, tt.token)
			assert.Error(t, err)
		})
	}
}
