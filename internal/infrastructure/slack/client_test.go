package slack

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestClient_AuthTest(t *testing.T) {
	fake, client := newFakeSlack(t)
	fake.handle("auth.test", func(map[string]string) any {
		return map[string]any{"ok": true, "user": "alice", "user_id": "U1", "team": "acme"}
	})

	require.NoError(t, client.AuthTest(context.Background()))
	assert.Len(t, fake.callsTo("auth.test"), 1)
}

func TestClient_AuthTest_InvalidToken(t *testing.T) {
	fake, client := newFakeSlack(t)
	fake.handle("auth.test", func(map[string]string) any {
		return slackError("invalid_auth")
	})

	err := client.AuthTest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_auth")
}

func TestNewLimiter(t *testing.T) {
	assert.Equal(t, rate.Inf, newLimiter(0).Limit())
	assert.Equal(t, rate.Inf, newLimiter(-time.Second).Limit())
	assert.Equal(t, rate.Every(250*time.Millisecond), newLimiter(250*time.Millisecond).Limit())
}

func TestClient_WaitHonorsContext(t *testing.T) {
	client := &Client{limiter: newLimiter(time.Hour)}

	// 最初のトークンはすぐに取得できる
	require.NoError(t, client.wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, client.wait(ctx))
}
