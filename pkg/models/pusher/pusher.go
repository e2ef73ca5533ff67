package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, either
// every PushInterval once started or on demand through PushAll. A failed
// batch stays buffered for the next attempt.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)

	lock     sync.Mutex
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = []T{}
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stop:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			}
		}
	}()
}

// Stop ends the loop started by Start after a final flush. It must only be
// called on a started pusher.
func (p *Pusher[T]) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}
