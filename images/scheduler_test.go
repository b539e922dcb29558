package images

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestNewScheduler(t *testing.T) {
	f := setupSweeper(t)

	_, err := NewScheduler(f.sweeper, "not a cron", WithSchedulerLogger(discardLogger))
	assert.Error(t, err)

	s, err := NewScheduler(f.sweeper, DefaultCleanupSchedule, WithSchedulerLogger(discardLogger))
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestScheduler_Next(t *testing.T) {
	f := setupSweeper(t)
	zone := time.FixedZone("ICT", 7*60*60)

	s, err := NewScheduler(f.sweeper, DefaultCleanupSchedule,
		WithSchedulerLogger(discardLogger),
		WithSchedulerLocation(zone))
	require.NoError(t, err)

	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			name: "midweek",
			from: time.Date(2026, 10, 14, 10, 0, 0, 0, zone),
			want: time.Date(2026, 10, 18, 3, 0, 0, 0, zone),
		},
		{
			name: "sunday before run",
			from: time.Date(2026, 10, 18, 2, 59, 0, 0, zone),
			want: time.Date(2026, 10, 18, 3, 0, 0, 0, zone),
		},
		{
			name: "sunday after run",
			from: time.Date(2026, 10, 18, 3, 0, 0, 0, zone),
			want: time.Date(2026, 10, 25, 3, 0, 0, 0, zone),
		},
		{
			name: "utc input",
			from: time.Date(2026, 10, 17, 19, 30, 0, 0, time.UTC),
			want: time.Date(2026, 10, 18, 3, 0, 0, 0, zone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Next(tt.from)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Run("without mutex", func(t *testing.T) {
		f := setupSweeper(t)
		f.recipes.EXPECT().ListImageRefs(gomock.Any()).Return(nil, nil)
		f.saved.EXPECT().ListImageRefs(gomock.Any()).Return(nil, nil)
		f.store.EXPECT().List(gomock.Any(), "images/").Return(nil, nil)

		s, err := NewScheduler(f.sweeper, DefaultCleanupSchedule, WithSchedulerLogger(discardLogger))
		require.NoError(t, err)
		assert.True(t, s.RunOnce(context.Background()))
	})

	t.Run("sweeps while holding the lock", func(t *testing.T) {
		f := setupSweeper(t)
		mutex := NewMockMutex(gomock.NewController(t))

		lockCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		gomock.InOrder(
			mutex.EXPECT().Lock(gomock.Any()).Return(lockCtx, nil),
			f.recipes.EXPECT().ListImageRefs(lockCtx).Return([]string{"images/a.avif"}, nil),
			f.saved.EXPECT().ListImageRefs(lockCtx).Return(nil, nil),
			f.store.EXPECT().List(lockCtx, "images/").Return([]string{"images/a.avif", "images/b.avif"}, nil),
			f.store.EXPECT().Remove(lockCtx, []string{"images/b.avif"}).Return(nil),
			mutex.EXPECT().Unlock().Return(true, nil),
		)

		s, err := NewScheduler(f.sweeper, DefaultCleanupSchedule,
			WithSchedulerLogger(discardLogger),
			WithSchedulerMutex(func() Mutex { return mutex }))
		require.NoError(t, err)
		assert.True(t, s.RunOnce(context.Background()))
	})

	t.Run("skips when lock is held elsewhere", func(t *testing.T) {
		f := setupSweeper(t)
		mutex := NewMockMutex(gomock.NewController(t))
		mutex.EXPECT().Lock(gomock.Any()).Return(nil, errors.New("lock already taken"))

		s, err := NewScheduler(f.sweeper, DefaultCleanupSchedule,
			WithSchedulerLogger(discardLogger),
			WithSchedulerMutex(func() Mutex { return mutex }))
		require.NoError(t, err)
		assert.False(t, s.RunOnce(context.Background()))
	})

	t.Run("unlock error does not change result", func(t *testing.T) {
		f := setupSweeper(t)
		mutex := NewMockMutex(gomock.NewController(t))
		mutex.EXPECT().Lock(gomock.Any()).Return(context.Background(), nil)
		mutex.EXPECT().Unlock().Return(false, errors.New("lock already expired"))
		f.recipes.EXPECT().ListImageRefs(gomock.Any()).Return(nil, nil)
		f.saved.EXPECT().ListImageRefs(gomock.Any()).Return(nil, nil)
		f.store.EXPECT().List(gomock.Any(), "images/").Return(nil, nil)

		s, err := NewScheduler(f.sweeper, DefaultCleanupSchedule,
			WithSchedulerLogger(discardLogger),
			WithSchedulerMutex(func() Mutex { return mutex }))
		require.NoError(t, err)
		assert.True(t, s.RunOnce(context.Background()))
	})
}

func TestScheduler_StartClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := setupSweeper(t)
	s, err := NewScheduler(f.sweeper, DefaultCleanupSchedule, WithSchedulerLogger(discardLogger))
	require.NoError(t, err)

	s.Start()
	s.Close()
}
