package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// ErrLockTaken 表示在允許的嘗試次數內，鎖一直被其他程序持有
var ErrLockTaken = errors.New("lock is held by another process")

// CleanupLockKey 回傳圖片清理排程使用的鎖
func CleanupLockKey(prefix string) string {
	return prefix + "cleanup:lock"
}

// JobMutex 是讓背景工作在多個副本間只執行一份的分散式鎖
// 持有期間會自動續期，續期失敗時 Lock 回傳的 context 會被取消
type JobMutex struct {
	*redsync.Mutex
	key      string
	cancel   context.CancelFunc
	renewing bool
	mu       sync.Mutex
	wg       sync.WaitGroup
	options  jobMutexOptions
}

type jobMutexOptions struct {
	renewInterval time.Duration
	retryDelay    time.Duration
	expiry        time.Duration
	maxAttempts   int
}

type JobMutexOption func(*jobMutexOptions)

// WithJobMutexRenewInterval 設置自動續期間隔
func WithJobMutexRenewInterval(d time.Duration) JobMutexOption {
	return func(o *jobMutexOptions) {
		o.renewInterval = d
	}
}

// WithJobMutexRetryDelay 設置重試延遲
func WithJobMutexRetryDelay(d time.Duration) JobMutexOption {
	return func(o *jobMutexOptions) {
		o.retryDelay = d
	}
}

// WithJobMutexExpiry 設置鎖過期時間
func WithJobMutexExpiry(d time.Duration) JobMutexOption {
	return func(o *jobMutexOptions) {
		o.expiry = d
	}
}

// WithJobMutexMaxAttempts 設置鎖被占用時最多嘗試幾次，0 代表直到 context 結束
func WithJobMutexMaxAttempts(n int) JobMutexOption {
	return func(o *jobMutexOptions) {
		o.maxAttempts = n
	}
}

func NewJobMutex(client redis.UniversalClient, key string, opts ...JobMutexOption) *JobMutex {
	options := jobMutexOptions{
		expiry:     8 * time.Second,
		retryDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&options)
	}

	// 未設置續期間隔時使用過期時間的 1/3
	if options.renewInterval <= 0 {
		options.renewInterval = options.expiry / 3
	}

	rs := redsync.New(goredis.NewPool(client))
	mutex := rs.NewMutex(
		key,
		redsync.WithExpiry(options.expiry),
		redsync.WithTries(1),
		redsync.WithRetryDelay(options.retryDelay),
	)

	return &JobMutex{
		Mutex:   mutex,
		key:     key,
		options: options,
	}
}

// Lock 獲取鎖並啟動自動續期
// redis 通訊錯誤會立即回傳，鎖被占用時依 maxAttempts 重試
func (m *JobMutex) Lock(ctx context.Context) (context.Context, error) {
	const op = "redis.JobMutex.Lock"

	timer := time.NewTimer(1)
	defer timer.Stop()

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			err := m.Mutex.LockContext(ctx)
			if err == nil {
				lockCtx, cancel := context.WithCancel(ctx)
				m.cancel = cancel
				m.startAutoRenew(lockCtx)
				return lockCtx, nil
			}

			var commErr *redsync.RedisError
			if errors.As(err, &commErr) {
				return nil, fmt.Errorf("%s: failed to acquire lock %q: %w", op, m.key, err)
			}

			attempts++
			if m.options.maxAttempts > 0 && attempts >= m.options.maxAttempts {
				return nil, fmt.Errorf("%s: %w: %s", op, ErrLockTaken, m.key)
			}
			timer.Reset(m.options.retryDelay)
		}
	}
}

// Unlock 停止自動續期並釋放鎖
func (m *JobMutex) Unlock() (bool, error) {
	m.stopAutoRenew()
	m.wg.Wait()
	return m.Mutex.Unlock()
}

// valid 檢查鎖是否仍然有效
func (m *JobMutex) valid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renewing && time.Now().Before(m.Mutex.Until())
}

func (m *JobMutex) startAutoRenew(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renewing {
		return
	}

	m.renewing = true
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.options.renewInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ok, err := m.Mutex.ExtendContext(ctx)
				if err != nil || !ok {
					m.stopAutoRenew()
					return
				}
			}
		}
	}()
}

func (m *JobMutex) stopAutoRenew() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.renewing {
		return
	}

	m.renewing = false
	if m.cancel != nil {
		m.cancel()
	}
}
