package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"smarthub/internal/session"
)

var _ session.KV = (*RedisState)(nil)

func TestStateKey(t *testing.T) {
	assert.Equal(t, "client:abc:userData", stateKey("abc", "userData"))
}

func TestRedisState_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	st := NewRedisStateWithClient(client, time.Hour)
	t.Cleanup(func() { _ = st.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := st.Get(ctx, "abc", "userData")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, st.Ping(ctx))
}
