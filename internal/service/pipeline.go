package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/local-weather/internal/connectivity"
	"ulascansenturk/local-weather/internal/location"
	"ulascansenturk/local-weather/internal/permission"
	"ulascansenturk/local-weather/internal/presentation"
	"ulascansenturk/local-weather/internal/providers"
	"ulascansenturk/local-weather/internal/weather"
)

// Shell is the rendering surface. Its methods are called with the pipeline
// lock held and must not call back into the pipeline.
type Shell interface {
	Render(display presentation.Display)
	ShowNotice(message string)
	OpenLocationSettings()
}

type LocationSource interface {
	Enabled() bool
	RequestOneFix(ctx context.Context, onFix func(weather.Coordinates)) (*location.Subscription, error)
}

// Outcome is the single completion value of a pipeline cycle.
type Outcome struct {
	Display presentation.Display
	Err     error
}

type WeatherPipeline interface {
	Start(ctx context.Context) <-chan Outcome
	Refresh() <-chan Outcome
	State() State
	Close()
}

type Dependencies struct {
	Location    LocationSource
	Permissions permission.Prompter
	Network     connectivity.NetworkChecker
	WeatherAPI  providers.WeatherAPIService
	Formatter   *presentation.Formatter
	Shell       Shell
}

type weatherPipeline struct {
	deps    Dependencies
	logger  zerolog.Logger
	flights flightGuard

	// screenCtx lives as long as the screen; Close cancels it.
	screenCtx    context.Context
	cancelScreen context.CancelFunc

	mu    sync.Mutex
	state State
	// permitted is set once a Start cycle got every location scope granted.
	permitted    bool
	closed       bool
	subscription *location.Subscription
}

func NewPipeline(deps Dependencies) WeatherPipeline {
	screenCtx, cancel := context.WithCancel(context.Background())

	return &weatherPipeline{
		deps:         deps,
		logger:       log.With().Str("session_id", uuid.NewString()).Logger(),
		screenCtx:    screenCtx,
		cancelScreen: cancel,
		state:        StateIdle,
	}
}

func (p *weatherPipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *weatherPipeline) setState(next State) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	p.transition(next)
	return true
}

// transition must be called with p.mu held.
func (p *weatherPipeline) transition(next State) {
	if p.state == next {
		return
	}
	p.logger.Debug().Stringer("from", p.state).Stringer("to", next).Msg("state transition")
	p.state = next
}

// Start runs the full screen-start sequence: location settings check,
// permission request, then a fetch cycle.
func (p *weatherPipeline) Start(ctx context.Context) <-chan Outcome {
	out := make(chan Outcome, 1)

	if !p.setState(StateCheckingLocationEnabled) {
		p.finish(out, Outcome{Err: ErrClosed})
		return out
	}

	go func() {
		if !p.deps.Location.Enabled() {
			p.fail(out, weather.ErrLocationDisabled)
			return
		}

		if !p.setState(StateRequestingPermission) {
			p.finish(out, Outcome{Err: ErrClosed})
			return
		}

		report, err := p.deps.Permissions.Request(ctx, permission.LocationScopes...)
		granted := err == nil && report.AllGranted(permission.LocationScopes...)
		p.setPermitted(granted)

		switch {
		case err != nil:
			p.fail(out, fmt.Errorf("%w: %w", errPermissionNotGranted, err))
			return
		case granted:
		case report.PermanentlyDenied:
			p.fail(out, weather.ErrPermissionDenied)
			return
		default:
			p.fail(out, errPermissionNotGranted)
			return
		}

		p.runCycle(out)
	}()

	return out
}

// Refresh requests a new fix and fetch. It skips the settings and
// permission checks but is refused until a Start cycle got the grant.
func (p *weatherPipeline) Refresh() <-chan Outcome {
	out := make(chan Outcome, 1)

	p.mu.Lock()
	switch {
	case p.closed:
		p.mu.Unlock()
		p.finish(out, Outcome{Err: ErrClosed})
		return out
	case !p.permitted:
		p.mu.Unlock()
		p.fail(out, weather.ErrPermissionDenied)
		return out
	}
	p.transition(StateAwaitingFix)
	p.mu.Unlock()

	go p.runCycle(out)

	return out
}

func (p *weatherPipeline) runCycle(out chan<- Outcome) {
	if !p.setState(StateAwaitingFix) {
		p.finish(out, Outcome{Err: ErrClosed})
		return
	}

	coords, err := p.awaitFix()
	if err != nil {
		p.fail(out, err)
		return
	}

	if !p.setState(StateFetching) {
		p.finish(out, Outcome{Err: ErrClosed})
		return
	}

	if !p.deps.Network.IsNetworkAvailable() {
		p.fail(out, weather.ErrNoNetwork)
		return
	}

	result, err := p.fetch(coords)
	if err != nil {
		p.fail(out, err)
		return
	}

	display := p.deps.Formatter.Present(result)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Debug().Msg("screen closed before render, dropping result")
		p.finish(out, Outcome{Err: ErrClosed})
		return
	}
	p.transition(StateDisplaying)
	p.deps.Shell.Render(display)
	p.mu.Unlock()

	p.logger.Info().
		Str("location", result.LocationName).
		Str("country", result.CountryCode).
		Msg("weather displayed")

	p.finish(out, Outcome{Display: display})
}

func (p *weatherPipeline) awaitFix() (weather.Coordinates, error) {
	v, shared, err := p.flights.do(p.screenCtx, flightLocationFix, func() (interface{}, error) {
		fixes := make(chan weather.Coordinates, 1)

		sub, err := p.deps.Location.RequestOneFix(p.screenCtx, func(c weather.Coordinates) {
			select {
			case fixes <- c:
			default:
			}
		})
		if err != nil {
			return nil, err
		}

		if !p.track(sub) {
			sub.Cancel()
			return nil, ErrClosed
		}
		defer p.untrack(sub)

		select {
		case c := <-fixes:
			p.logger.Debug().Float64("lat", c.Latitude).Float64("lon", c.Longitude).Msg("location fix")
			return c, nil
		case <-p.screenCtx.Done():
			sub.Cancel()
			return nil, ErrClosed
		}
	})
	if err != nil {
		return weather.Coordinates{}, err
	}
	if shared {
		p.logger.Debug().Msg("joined outstanding location request")
	}
	return v.(weather.Coordinates), nil
}

func (p *weatherPipeline) fetch(coords weather.Coordinates) (weather.Result, error) {
	v, shared, err := p.flights.do(p.screenCtx, flightWeatherFetch, func() (interface{}, error) {
		return p.deps.WeatherAPI.FetchWeather(p.screenCtx, coords)
	})
	if err != nil {
		return weather.Result{}, err
	}
	if shared {
		p.logger.Debug().Msg("joined outstanding weather fetch")
	}
	return v.(weather.Result), nil
}

func (p *weatherPipeline) setPermitted(granted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.permitted = granted
}

func (p *weatherPipeline) track(sub *location.Subscription) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	p.subscription = sub
	return true
}

func (p *weatherPipeline) untrack(sub *location.Subscription) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.subscription == sub {
		p.subscription = nil
	}
}

// fail surfaces err as a notice and returns the screen to idle. Failures
// after Close are reported to the caller only.
func (p *weatherPipeline) fail(out chan<- Outcome, err error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.finish(out, Outcome{Err: ErrClosed})
		return
	}

	p.logFailure(err)

	p.deps.Shell.ShowNotice(noticeFor(err))
	if errors.Is(err, weather.ErrLocationDisabled) {
		p.deps.Shell.OpenLocationSettings()
	}
	p.transition(StateIdle)
	p.mu.Unlock()

	p.finish(out, Outcome{Err: err})
}

func (p *weatherPipeline) logFailure(err error) {
	var apiErr *weather.APIError
	var transportErr *weather.TransportError
	var parseErr *weather.ParseError

	switch {
	case errors.As(err, &apiErr):
		p.logger.Error().Int("status_code", apiErr.StatusCode).Str("reason", apiErr.Reason()).Msg("weather API error")
	case errors.As(err, &transportErr):
		p.logger.Error().Err(transportErr.Cause).Msg("weather API request failed")
	case errors.As(err, &parseErr):
		p.logger.Error().Err(parseErr.Cause).Msg("weather API response could not be parsed")
	default:
		p.logger.Warn().Err(err).Msg("weather cycle stopped")
	}
}

func (p *weatherPipeline) finish(out chan<- Outcome, outcome Outcome) {
	out <- outcome
	close(out)
}

// Close tears the screen down: outstanding requests are canceled, the
// location subscription is released and late results are never rendered.
func (p *weatherPipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.transition(StateIdle)
	p.closed = true
	sub := p.subscription
	p.subscription = nil
	p.mu.Unlock()

	p.cancelScreen()
	if sub != nil {
		sub.Cancel()
	}

	p.logger.Debug().Msg("weather screen closed")
}
