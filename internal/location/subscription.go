package location

import "sync"

// Subscription is the handle for an armed location request. Cancel stops
// the underlying provider updates and is safe to call more than once.
type Subscription struct {
	once   sync.Once
	cancel func()
	done   chan struct{}
}

func NewSubscription(cancel func()) *Subscription {
	return &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (s *Subscription) Cancel() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		close(s.done)
	})
}

func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
