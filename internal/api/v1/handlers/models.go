package handlers

import "ulascansenturk/local-weather/internal/presentation"

type ScreenResponse struct {
	State                     string                `json:"state"`
	Weather                   *presentation.Display `json:"weather,omitempty"`
	Notice                    string                `json:"notice,omitempty"`
	LocationSettingsRequested bool                  `json:"location_settings_requested,omitempty"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
