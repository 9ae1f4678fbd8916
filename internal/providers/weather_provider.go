package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/local-weather/internal/weather"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/"
	MetricUnits    = "metric"
)

type WeatherAPIService interface {
	FetchWeather(ctx context.Context, coords weather.Coordinates) (weather.Result, error)
}

// Options configures the OpenWeatherMap client. A missing trailing slash on
// BaseURL is added. Client, when set, is used as is and Timeout is ignored;
// otherwise a client with Timeout is built, zero meaning no timeout.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Client  *http.Client
}

type weatherAPIService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewWeatherAPIService(opts Options) WeatherAPIService {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: opts.Timeout,
		}
	}

	return &weatherAPIService{
		baseURL: baseURL,
		apiKey:  opts.APIKey,
		client:  client,
	}
}

type CurrentWeatherResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

func (s *weatherAPIService) requestURL(coords weather.Coordinates) string {
	return fmt.Sprintf("%sweather?lat=%s&lon=%s&units=%s&appid=%s",
		s.baseURL,
		strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
		strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
		MetricUnits,
		url.QueryEscape(s.apiKey),
	)
}

func (s *weatherAPIService) FetchWeather(ctx context.Context, coords weather.Coordinates) (weather.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(coords), nil)
	if err != nil {
		return weather.Result{}, &weather.TransportError{Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return weather.Result{}, &weather.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return weather.Result{}, &weather.APIError{StatusCode: resp.StatusCode}
	}

	var apiResp CurrentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return weather.Result{}, &weather.ParseError{Cause: err}
	}

	if len(apiResp.Weather) == 0 {
		return weather.Result{}, &weather.ParseError{Cause: errors.New("response has no weather conditions")}
	}

	// the screen shows the last listed condition
	condition := apiResp.Weather[len(apiResp.Weather)-1]

	log.Debug().
		Float64("lat", coords.Latitude).
		Float64("lon", coords.Longitude).
		Str("location", apiResp.Name).
		Msg("weather fetched")

	return weather.Result{
		Temperature:          apiResp.Main.Temp,
		FeelsLike:            apiResp.Main.FeelsLike,
		Humidity:             apiResp.Main.Humidity,
		PressureHpa:          apiResp.Main.Pressure,
		WindSpeed:            apiResp.Wind.Speed,
		WindDegrees:          apiResp.Wind.Deg,
		ConditionMain:        condition.Main,
		ConditionDescription: condition.Description,
		ConditionIcon:        condition.Icon,
		LocationName:         apiResp.Name,
		CountryCode:          apiResp.Sys.Country,
		SunriseEpochSeconds:  apiResp.Sys.Sunrise,
		SunsetEpochSeconds:   apiResp.Sys.Sunset,
	}, nil
}
