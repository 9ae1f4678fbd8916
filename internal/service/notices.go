package service

import (
	"errors"
	"fmt"

	"ulascansenturk/local-weather/internal/weather"
)

const (
	NoticeLocationDisabled   = "Your location provider is turned off. Please turn it on."
	NoticePermissionDenied   = "You have denied location permission. Please enable them as it is mandatory for the app to work."
	NoticePermissionNeeded   = "It looks like you turned off permissions required for this feature. It can be enabled under Application Settings"
	NoticeNoNetwork          = "No internet connection"
	NoticeWeatherUnavailable = "Unable to load weather data. Please try again."
)

var (
	ErrClosed = errors.New("weather screen closed")

	// errPermissionNotGranted is a denial the user may still revisit.
	errPermissionNotGranted = fmt.Errorf("%w: rationale required", weather.ErrPermissionDenied)
)

func noticeFor(err error) string {
	switch {
	case errors.Is(err, weather.ErrLocationDisabled):
		return NoticeLocationDisabled
	case errors.Is(err, errPermissionNotGranted):
		return NoticePermissionNeeded
	case errors.Is(err, weather.ErrPermissionDenied):
		return NoticePermissionDenied
	case errors.Is(err, weather.ErrNoNetwork):
		return NoticeNoNetwork
	default:
		return NoticeWeatherUnavailable
	}
}
