package handlers

import (
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/local-weather/internal/presentation"
)

// Screen is the HTTP rendering surface. It keeps what a user would currently
// see: the last rendered weather and the last notice.
type Screen struct {
	mu                        sync.RWMutex
	display                   *presentation.Display
	notice                    string
	locationSettingsRequested bool
}

func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) Render(display presentation.Display) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.display = &display
	s.notice = ""
	s.locationSettingsRequested = false
}

func (s *Screen) ShowNotice(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notice = message
}

func (s *Screen) OpenLocationSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Info().Msg("location settings requested")
	s.locationSettingsRequested = true
}

func (s *Screen) snapshot() ScreenResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := ScreenResponse{
		Notice:                    s.notice,
		LocationSettingsRequested: s.locationSettingsRequested,
	}
	if s.display != nil {
		d := *s.display
		resp.Weather = &d
	}
	return resp
}
