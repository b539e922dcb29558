package images

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const DefaultCleanupSchedule = "0 3 * * 0"

type schedulerOptions struct {
	logger   *slog.Logger
	location *time.Location
	newMutex func() Mutex
}

type SchedulerOption func(*schedulerOptions)

func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

// WithSchedulerLocation 設定排程使用的時區，預設為 UTC
func WithSchedulerLocation(location *time.Location) SchedulerOption {
	return func(o *schedulerOptions) {
		o.location = location
	}
}

// WithSchedulerMutex 設定每次執行前要取得的鎖，多個副本同時運行時只有一個會清理
func WithSchedulerMutex(newMutex func() Mutex) SchedulerOption {
	return func(o *schedulerOptions) {
		o.newMutex = newMutex
	}
}

// Scheduler 依照 cron 表達式定期執行 Sweeper
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	sweeper  *Sweeper
	ctx      context.Context
	cancel   context.CancelFunc
	options  schedulerOptions
}

func NewScheduler(sweeper *Sweeper, spec string, opts ...SchedulerOption) (*Scheduler, error) {
	const op = "images.NewScheduler"

	options := schedulerOptions{
		logger:   slog.Default(),
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(&options)
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid schedule %q: %w", op, spec, err)
	}

	logger := cronLogger{logger: options.logger}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(options.location),
			cron.WithLogger(logger),
			cron.WithChain(cron.SkipIfStillRunning(logger)),
		),
		schedule: schedule,
		sweeper:  sweeper,
		ctx:      ctx,
		cancel:   cancel,
		options:  options,
	}
	s.cron.Schedule(schedule, cron.FuncJob(func() {
		s.RunOnce(s.ctx)
	}))

	return s, nil
}

func (s *Scheduler) Start() {
	s.options.logger.Info("cleanup scheduler started",
		slog.Time("next", s.Next(time.Now())))
	s.cron.Start()
}

// Close 停止排程並等待執行中的清理結束
func (s *Scheduler) Close() {
	s.cancel()
	<-s.cron.Stop().Done()
}

// Next 回傳 from 之後下一次執行的時間
func (s *Scheduler) Next(from time.Time) time.Time {
	return s.schedule.Next(from.In(s.options.location))
}

// RunOnce 取得鎖後執行一次清理，無法取得鎖時跳過並回傳 false
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	const op = "images.Scheduler.RunOnce"

	if s.options.newMutex == nil {
		return s.sweeper.Run(ctx)
	}

	mutex := s.options.newMutex()
	lockCtx, err := mutex.Lock(ctx)
	if err != nil {
		s.options.logger.Warn("cleanup skipped, failed to acquire lock",
			slog.String("op", op),
			slog.Any("error", err))
		return false
	}
	defer func() {
		if _, err := mutex.Unlock(); err != nil {
			s.options.logger.Warn("failed to release cleanup lock",
				slog.String("op", op),
				slog.Any("error", err))
		}
	}()

	return s.sweeper.Run(lockCtx)
}

// cronLogger 將 cron 的 log 轉接到 slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
