package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadata(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	ctx = WithUserID(ctx, "user-1")

	md := ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
	assert.Len(t, md.Fields(), 2)

	ctx = WithRole(ctx, "hr")
	assert.Len(t, ExtractMetadata(ctx).Fields(), 3)
}

func TestGetLoggerFallbacks(t *testing.T) {
	def := zap.NewExample()
	assert.Same(t, def, GetLogger(context.Background(), def))
	assert.NotNil(t, GetLogger(context.Background(), nil))

	scoped := zap.NewNop()
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLogger(ctx, def))
}
