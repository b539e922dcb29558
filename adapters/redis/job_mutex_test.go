package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestCleanupLockKey(t *testing.T) {
	assert.Equal(t, "recipebook:cleanup:lock", CleanupLockKey("recipebook:"))
	assert.Equal(t, "cleanup:lock", CleanupLockKey(""))
}

func TestNewJobMutex(t *testing.T) {
	tests := []struct {
		name string
		opts []JobMutexOption
	}{
		{
			name: "default options",
		},
		{
			name: "custom options",
			opts: []JobMutexOption{
				WithJobMutexExpiry(5 * time.Second),
				WithJobMutexRenewInterval(1 * time.Second),
				WithJobMutexRetryDelay(100 * time.Millisecond),
				WithJobMutexMaxAttempts(3),
			},
		},
		{
			name: "zero expiry",
			opts: []JobMutexOption{
				WithJobMutexExpiry(0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t, leakOptions...)
			client, _, cleanup := setupTest(t)
			defer cleanup()

			mutex := NewJobMutex(client, "cleanup:lock", tt.opts...)
			require.NotNil(t, mutex)
		})
	}
}

func TestJobMutex_Lock(t *testing.T) {
	t.Run("successful lock", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 8*time.Second).SetVal(true)
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(1))

		mutex := NewJobMutex(client, "cleanup:lock")
		lockCtx, err := mutex.Lock(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, lockCtx)

		ok, err := mutex.Unlock()
		assert.NoError(t, err)
		assert.True(t, ok)

		select {
		case <-lockCtx.Done():
			// 解鎖後 context 應被取消
		case <-time.After(100 * time.Millisecond):
			t.Error("lock context was not cancelled after unlock")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, _, cleanup := setupTest(t)
		defer cleanup()

		mutex := NewJobMutex(client, "cleanup:lock")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		lockCtx, err := mutex.Lock(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, lockCtx)
	})

	t.Run("redis error", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 8*time.Second).SetErr(redis.ErrClosed)

		mutex := NewJobMutex(client, "cleanup:lock")
		lockCtx, err := mutex.Lock(context.Background())
		assert.ErrorIs(t, err, redis.ErrClosed)
		assert.Nil(t, lockCtx)
	})

	t.Run("held elsewhere with max attempts", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		// 兩次嘗試都被占用，每次失敗後 redsync 會嘗試釋放
		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 8*time.Second).SetVal(false)
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(0))
		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 8*time.Second).SetVal(false)
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(0))

		mutex := NewJobMutex(client, "cleanup:lock",
			WithJobMutexMaxAttempts(2),
			WithJobMutexRetryDelay(10*time.Millisecond))
		lockCtx, err := mutex.Lock(context.Background())
		assert.ErrorIs(t, err, ErrLockTaken)
		assert.Nil(t, lockCtx)
	})

	t.Run("held elsewhere until deadline", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 8*time.Second).SetVal(false)
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(0))

		mutex := NewJobMutex(client, "cleanup:lock", WithJobMutexRetryDelay(time.Second))
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		lockCtx, err := mutex.Lock(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, lockCtx)
	})
}

func TestJobMutex_AutoRenew(t *testing.T) {
	t.Run("successful auto renew", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 2*time.Second).SetVal(true)
		// 兩次續期
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*", "2000"}).SetVal(int64(1))
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*", "2000"}).SetVal(int64(1))
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(1))

		mutex := NewJobMutex(client, "cleanup:lock",
			WithJobMutexExpiry(2*time.Second),
			WithJobMutexRenewInterval(100*time.Millisecond))

		lockCtx, err := mutex.Lock(context.Background())
		require.NoError(t, err)

		time.Sleep(250 * time.Millisecond)
		assert.True(t, mutex.valid())

		ok, err := mutex.Unlock()
		assert.NoError(t, err)
		assert.True(t, ok)
		<-lockCtx.Done()
	})

	t.Run("renew failure cancels the lock context", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 2*time.Second).SetVal(true)
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*", "2000"}).SetErr(redis.ErrClosed)
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(-1))

		mutex := NewJobMutex(client, "cleanup:lock",
			WithJobMutexExpiry(2*time.Second),
			WithJobMutexRenewInterval(100*time.Millisecond))

		lockCtx, err := mutex.Lock(context.Background())
		require.NoError(t, err)

		select {
		case <-lockCtx.Done():
			// 續期失敗，清理工作應該停止
		case <-time.After(time.Second):
			t.Error("lock context was not cancelled after renew failure")
		}
		assert.False(t, mutex.valid())

		ok, err := mutex.Unlock()
		assert.ErrorIs(t, err, redsync.ErrLockAlreadyExpired)
		assert.False(t, ok)
	})
}

func TestJobMutex_Unlock(t *testing.T) {
	t.Run("unlock without lock", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(-1))

		mutex := NewJobMutex(client, "cleanup:lock")
		ok, err := mutex.Unlock()
		assert.ErrorIs(t, err, redsync.ErrLockAlreadyExpired)
		assert.False(t, ok)
	})

	t.Run("double unlock", func(t *testing.T) {
		defer goleak.VerifyNone(t, leakOptions...)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		mock.Regexp().ExpectSetNX("cleanup:lock", ".*", 8*time.Second).SetVal(true)
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(1))
		mock.Regexp().ExpectEvalSha(".*", []string{"cleanup:lock"}, []string{".*"}).SetVal(int64(-1))

		mutex := NewJobMutex(client, "cleanup:lock")
		_, err := mutex.Lock(context.Background())
		require.NoError(t, err)

		ok, err := mutex.Unlock()
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = mutex.Unlock()
		assert.ErrorIs(t, err, redsync.ErrLockAlreadyExpired)
		assert.False(t, ok)
	})
}
