package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector[T any] struct {
	mu     sync.Mutex
	pushed []T
}

func (c *collector[T]) push(messages ...T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pushed = append(c.pushed, messages...)
	return nil
}

func (c *collector[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]T(nil), c.pushed...)
}

func TestPushAll(t *testing.T) {
	c := &collector[int]{}
	p := NewPusher(WithPushLogic(c.push), WithElements(1, 2))
	p.AddMessages(3)

	require.NoError(t, p.PushAll())
	assert.Equal(t, []int{1, 2, 3}, c.all())
	assert.Zero(t, p.Len())

	require.NoError(t, p.PushAll())
	assert.Equal(t, []int{1, 2, 3}, c.all())
}

func TestFailedPushKeepsBuffer(t *testing.T) {
	failing := errors.New("down")
	p := NewPusher(WithPushLogic(func(...string) error { return failing }))
	p.AddMessages("a", "b")

	assert.ErrorIs(t, p.PushAll(), failing)
	assert.Equal(t, 2, p.Len())
}

func TestStartAndStopFlushes(t *testing.T) {
	c := &collector[string]{}
	p := NewPusher(
		WithPushLogic(c.push),
		WithPushInterval[string](10*time.Millisecond),
	)
	p.Start()

	p.AddMessages("first")
	assert.Eventually(t, func() bool { return len(c.all()) == 1 }, time.Second, 5*time.Millisecond)

	p.AddMessages("last")
	p.Stop()
	assert.Equal(t, []string{"first", "last"}, c.all())

	p.Stop()
}

func TestErrorHandler(t *testing.T) {
	failing := errors.New("down")
	errs := make(chan error, 1)
	p := NewPusher(
		WithPushLogic(func(...int) error { return failing }),
		WithPushInterval[int](time.Hour),
		WithErrorHandler[int](func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	p.AddMessages(1)
	p.Start()
	p.Stop()

	assert.ErrorIs(t, <-errs, failing)
}
