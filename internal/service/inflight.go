package service

import (
	"context"

	"golang.org/x/sync/singleflight"
)

const (
	flightLocationFix  = "location-fix"
	flightWeatherFetch = "weather-fetch"
)

// flightGuard keeps at most one outstanding call per operation type. Callers
// that arrive while a call is running join it and receive the same result.
// A caller whose ctx ends stops waiting, the shared call keeps running.
type flightGuard struct {
	group singleflight.Group
}

func (g *flightGuard) do(ctx context.Context, key string, fn func() (interface{}, error)) (interface{}, bool, error) {
	ch := g.group.DoChan(key, fn)

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}
