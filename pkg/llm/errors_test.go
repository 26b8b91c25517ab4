package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := NewError(KindTransport, cause)
	assert.Equal(t, "dial tcp: connection refused", e.Error())
	assert.ErrorIs(t, e, cause)

	assert.Equal(t, "no api key", Errorf(KindNoCredential, "no api key").Error())
	assert.Equal(t, "empty_reply", (&Error{Kind: KindEmptyReply}).Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	wrapped := fmt.Errorf("ask: %w", Errorf(KindRateLimit, "slow down"))
	assert.Equal(t, KindRateLimit, KindOf(wrapped))
}

func TestContextKind(t *testing.T) {
	k, ok := ContextKind(fmt.Errorf("post: %w", context.DeadlineExceeded))
	assert.True(t, ok)
	assert.Equal(t, KindTimeout, k)

	k, ok = ContextKind(context.Canceled)
	assert.True(t, ok)
	assert.Equal(t, KindCanceled, k)

	_, ok = ContextKind(errors.New("other"))
	assert.False(t, ok)
}

func TestStatusKind(t *testing.T) {
	assert.Equal(t, KindAuth, StatusKind(401))
	assert.Equal(t, KindAuth, StatusKind(403))
	assert.Equal(t, KindRateLimit, StatusKind(429))
	assert.Equal(t, KindUpstream, StatusKind(500))
	assert.Equal(t, KindUpstream, StatusKind(404))
	assert.Equal(t, KindTransport, StatusKind(0))
}
