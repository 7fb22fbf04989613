package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCallerRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithCaller(context.Background(), id)

	got, ok := Caller(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestCallerMissing(t *testing.T) {
	_, ok := Caller(context.Background())
	assert.False(t, ok)
}
