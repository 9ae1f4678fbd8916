package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/local-weather/internal/weather"
)

const DefaultGeoIPURL = "http://ip-api.com/json/"

type geoIPResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NetworkProvider resolves the device position from its public IP address.
// It emits an update as soon as it is armed and then every interval.
type NetworkProvider struct {
	url      string
	interval time.Duration
	client   *http.Client
}

func NewNetworkProvider(url string, interval time.Duration, client *http.Client) *NetworkProvider {
	if client == nil {
		client = &http.Client{}
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &NetworkProvider{
		url:      url,
		interval: interval,
		client:   client,
	}
}

func (p *NetworkProvider) Name() string   { return "network" }
func (p *NetworkProvider) Accurate() bool { return false }
func (p *NetworkProvider) Enabled() bool  { return p.url != "" }

func (p *NetworkProvider) Subscribe(ctx context.Context, fn func(weather.Coordinates)) (func(), error) {
	if !p.Enabled() {
		return nil, weather.ErrLocationDisabled
	}

	ctx, cancel := context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			coords, err := p.lookup(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Warn().Err(err).Msg("ip geolocation lookup failed")
			} else {
				fn(coords)
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return cancel, nil
}

func (p *NetworkProvider) lookup(ctx context.Context) (weather.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return weather.Coordinates{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return weather.Coordinates{}, fmt.Errorf("geolocation returned status code: %d", resp.StatusCode)
	}

	var body geoIPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return weather.Coordinates{}, fmt.Errorf("geolocation returned malformed JSON: %w", err)
	}

	if body.Status != "" && body.Status != "success" {
		return weather.Coordinates{}, fmt.Errorf("geolocation error: %s", body.Message)
	}

	return weather.Coordinates{Latitude: body.Lat, Longitude: body.Lon}, nil
}
