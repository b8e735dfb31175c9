package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"dev-quizz/internal/cache"
	"dev-quizz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := cache.QuestionKeyCacheKey("Q1")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`{"id":"Q1"}`)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `{"id":"Q1"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection refused")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_SetDeletePing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := cache.PlayViewCacheKey("G1")

	mock.ExpectSet(key, "payload", 10*time.Minute).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, key, "payload", 10*time.Minute))

	mock.ExpectDel(key).SetVal(1)
	assert.NoError(t, adapter.Delete(ctx, key))

	mock.ExpectDel("absent").SetVal(0)
	assert.NoError(t, adapter.Delete(ctx, "absent"))

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(ctx))

	mock.ExpectPing().SetErr(errors.New("down"))
	assert.Error(t, adapter.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJSONHelpersOverRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := cache.QuestionKeyCacheKey("Q1")
	want := domain.QuestionKey{ID: "Q1", QuestionType: domain.GameTypeMCQ, Answer: "Paris"}

	mock.ExpectSet(key, `{"id":"Q1","questionType":"mcq","answer":"Paris"}`, 100*time.Second).SetVal("OK")
	assert.NoError(t, cache.SetJSON(ctx, adapter, key, want, 100*time.Second))

	mock.ExpectGet(key).SetVal(`{"id":"Q1","questionType":"mcq","answer":"Paris"}`)
	var got domain.QuestionKey
	assert.NoError(t, cache.GetJSON(ctx, adapter, key, &got))
	assert.Equal(t, want, got)

	mock.ExpectGet(key).SetVal(`not json`)
	assert.Error(t, cache.GetJSON(ctx, adapter, key, &got))

	assert.NoError(t, mock.ExpectationsWereMet())
}
