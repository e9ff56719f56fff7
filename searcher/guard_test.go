package searcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	t.Run("allowing search above the threshold", func(t *testing.T) {
		g := guard{timeLeft: func() time.Duration { return 20 * time.Millisecond }, threshold: 10 * time.Millisecond}

		require.NoError(t, g.check())
	})

	t.Run("cancelling below the threshold", func(t *testing.T) {
		g := guard{timeLeft: func() time.Duration { return 9 * time.Millisecond }, threshold: 10 * time.Millisecond}

		require.ErrorIs(t, g.check(), ErrSearchTimeout)
	})

	t.Run("reading the time source on every check", func(t *testing.T) {
		g := guard{timeLeft: countdown(1), threshold: DefaultTimeout}

		require.NoError(t, g.check())
		require.ErrorIs(t, g.check(), ErrSearchTimeout, "Should not cache the remaining time")
	})
}

func TestTimeLeft(t *testing.T) {
	t.Run("counting down to a deadline", func(t *testing.T) {
		left := Deadline(time.Now().Add(time.Hour))()

		require.Greater(t, left, 59*time.Minute)
		require.LessOrEqual(t, left, time.Hour)
	})

	t.Run("reporting no time left once a deadline passed", func(t *testing.T) {
		require.Less(t, Deadline(time.Now().Add(-time.Second))(), time.Duration(0))
	})

	t.Run("following a context deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
		defer cancel()
		left := FromContext(ctx)

		require.Greater(t, left(), 59*time.Minute)
		cancel()
		require.Equal(t, time.Duration(0), left(), "Should stop once the context is cancelled")
	})

	t.Run("never running out without a context deadline", func(t *testing.T) {
		left := FromContext(context.Background())

		require.Greater(t, left(), 24*time.Hour)
		require.Greater(t, Unlimited()(), 24*time.Hour)
	})
}

func TestNew(t *testing.T) {
	t.Run("using defaults", func(t *testing.T) {
		s := New()

		require.Equal(t, DefaultDepth, s.depth)
		require.Equal(t, DefaultTimeout, s.timeout)
		require.NotNil(t, s.evaluate)
		require.Zero(t, s.maxDepth)
	})

	t.Run("ignoring invalid options", func(t *testing.T) {
		s := New(WithDepth(0), WithTimeout(-time.Millisecond), WithEvaluationFn(nil), WithMaxDepth(-1))

		require.Equal(t, DefaultDepth, s.depth)
		require.Equal(t, DefaultTimeout, s.timeout)
		require.NotNil(t, s.evaluate)
		require.Zero(t, s.maxDepth)
	})

	t.Run("searching with the configured threshold", func(t *testing.T) {
		s := New(WithDepth(2), WithTimeout(time.Hour), WithEvaluationFn(mockEvaluate))

		_, err := s.Minimax(newMockState(textbookTree()), func() time.Duration { return 30 * time.Minute })

		require.ErrorIs(t, err, ErrSearchTimeout)
	})

	t.Run("searching without a time source", func(t *testing.T) {
		s := New(WithDepth(2), WithEvaluationFn(mockEvaluate))

		got, err := s.Minimax(newMockState(textbookTree()), nil)

		require.NoError(t, err)
		require.Equal(t, 3.0, got.Value)
	})
}
