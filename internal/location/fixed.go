package location

import (
	"context"

	"ulascansenturk/local-weather/internal/weather"
)

// FixedProvider reports configured coordinates, standing in for a GPS
// receiver. It is enabled only when coordinates were supplied.
type FixedProvider struct {
	coords  weather.Coordinates
	enabled bool
}

func NewFixedProvider(coords *weather.Coordinates) *FixedProvider {
	if coords == nil {
		return &FixedProvider{}
	}
	return &FixedProvider{coords: *coords, enabled: true}
}

func (p *FixedProvider) Name() string   { return "fixed" }
func (p *FixedProvider) Accurate() bool { return true }
func (p *FixedProvider) Enabled() bool  { return p.enabled }

func (p *FixedProvider) Subscribe(ctx context.Context, fn func(weather.Coordinates)) (func(), error) {
	if !p.enabled {
		return nil, weather.ErrLocationDisabled
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-ctx.Done():
		default:
			fn(p.coords)
		}
	}()

	return cancel, nil
}
