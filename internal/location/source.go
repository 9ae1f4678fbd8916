package location

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/local-weather/internal/weather"
)

type Priority int

const (
	PriorityHighAccuracy Priority = iota
	PriorityBalanced
)

// Provider is a platform location backend. Subscribe keeps delivering
// updates to fn until the returned cancel func is called or ctx ends.
type Provider interface {
	Name() string
	Accurate() bool
	Enabled() bool
	Subscribe(ctx context.Context, fn func(weather.Coordinates)) (cancel func(), err error)
}

type Source struct {
	providers []Provider
	priority  Priority
}

func NewSource(priority Priority, providers ...Provider) *Source {
	return &Source{
		providers: providers,
		priority:  priority,
	}
}

func (s *Source) Enabled() bool {
	for _, p := range s.providers {
		if p.Enabled() {
			return true
		}
	}
	return false
}

func (s *Source) pick() Provider {
	var fallback Provider
	for _, p := range s.providers {
		if !p.Enabled() {
			continue
		}
		wantAccurate := s.priority == PriorityHighAccuracy
		if p.Accurate() == wantAccurate {
			return p
		}
		if fallback == nil {
			fallback = p
		}
	}
	return fallback
}

// RequestOneFix arms a single location request. onFix runs at most once,
// with the first update received after arming; the provider subscription is
// released right after. There is no retry when the provider stays silent, the
// caller owns the returned handle and cancels it on teardown.
func (s *Source) RequestOneFix(ctx context.Context, onFix func(weather.Coordinates)) (*Subscription, error) {
	provider := s.pick()
	if provider == nil {
		return nil, weather.ErrLocationDisabled
	}

	subCtx, cancelCtx := context.WithCancel(ctx)

	var (
		mu          sync.Mutex
		stop        func()
		delivered   bool
		sub         *Subscription
		cancelAfter bool
	)

	sub = NewSubscription(func() {
		cancelCtx()
		mu.Lock()
		defer mu.Unlock()
		if stop != nil {
			stop()
		} else {
			cancelAfter = true
		}
	})

	stopFn, err := provider.Subscribe(subCtx, func(coords weather.Coordinates) {
		mu.Lock()
		if delivered || subCtx.Err() != nil {
			mu.Unlock()
			return
		}
		delivered = true
		mu.Unlock()

		log.Debug().Str("provider", provider.Name()).Msg("location fix received")
		go sub.Cancel()
		onFix(coords)
	})
	if err != nil {
		cancelCtx()
		return nil, err
	}

	mu.Lock()
	stop = stopFn
	runStop := cancelAfter
	mu.Unlock()

	if runStop && stop != nil {
		stop()
	}

	log.Debug().Str("provider", provider.Name()).Msg("location request armed")

	return sub, nil
}
