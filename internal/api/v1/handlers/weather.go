package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/local-weather/internal/service"
	"ulascansenturk/local-weather/internal/weather"
)

type WeatherHandler struct {
	pipeline service.WeatherPipeline
	screen   *Screen
	timeout  time.Duration
}

func NewWeatherHandler(pipeline service.WeatherPipeline, screen *Screen, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		pipeline: pipeline,
		screen:   screen,
		timeout:  timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/weather":
		h.GetWeather(w, r)
	case "/weather/refresh":
		h.RefreshWeather(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

// GetWeather returns what the screen currently shows without triggering a
// new cycle.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := h.screen.snapshot()
	resp.State = h.pipeline.State().String()

	respondWithJSON(w, http.StatusOK, resp)
}

func (h *WeatherHandler) RefreshWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var outcome service.Outcome
	select {
	case outcome = <-h.pipeline.Refresh():
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Msg("weather refresh did not complete in time")
		respondWithError(w, http.StatusGatewayTimeout, "weather refresh timed out: "+ctx.Err().Error())
		return
	}

	if outcome.Err != nil {
		log.Error().Err(outcome.Err).Msg("weather refresh failed")
		respondWithError(w, statusFor(outcome.Err), "failed to refresh weather: "+outcome.Err.Error())
		return
	}

	resp := ScreenResponse{
		State:   h.pipeline.State().String(),
		Weather: &outcome.Display,
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func statusFor(err error) int {
	var apiErr *weather.APIError
	var transportErr *weather.TransportError
	var parseErr *weather.ParseError

	switch {
	case errors.As(err, &apiErr), errors.As(err, &transportErr), errors.As(err, &parseErr):
		return http.StatusBadGateway
	case errors.Is(err, weather.ErrLocationDisabled), errors.Is(err, weather.ErrPermissionDenied):
		return http.StatusConflict
	case errors.Is(err, weather.ErrNoNetwork), errors.Is(err, service.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
