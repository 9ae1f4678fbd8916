package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"ulascansenturk/local-weather/internal/location"
	"ulascansenturk/local-weather/internal/providers"
	"ulascansenturk/local-weather/internal/weather"
)

type Config struct {
	ServiceName   string
	ServerAddress string
	Serve         bool

	Env            string
	LogLevel       string
	HTTPTimeout    int32
	RequestTimeout time.Duration

	OpenWeatherBaseURL string
	OpenWeatherAPIKey  string

	Region   string
	Locale   string
	TimeZone string

	Latitude               string
	Longitude              string
	GeoIPURL               string
	LocationUpdateInterval time.Duration
	LocationPermission     string

	NetworkLegacyMode bool
}

// flagKeys maps command line flags onto config keys. A flag that was set
// wins over the environment and the .env file.
var flagKeys = map[string]string{
	"serve":  "SERVE",
	"lat":    "LOCATION_LATITUDE",
	"lon":    "LOCATION_LONGITUDE",
	"region": "REGION",
}

func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.Bool("serve", false, "serve the weather screen over HTTP instead of printing it once")
	flags.String("lat", "", "fixed latitude, skips IP geolocation")
	flags.String("lon", "", "fixed longitude, skips IP geolocation")
	flags.String("region", "", "region code used for units, e.g. US or DE")
	return flags
}

func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "local-weather")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	// zero leaves outbound calls to the client defaults
	v.SetDefault("HTTP_TIMEOUT", 0)
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("OPENWEATHER_BASE_URL", providers.DefaultBaseURL)
	v.SetDefault("GEOIP_URL", location.DefaultGeoIPURL)
	v.SetDefault("LOCATION_UPDATE_INTERVAL", 30*time.Second)
	v.SetDefault("LOCATION_PERMISSION", "ask")
	v.SetDefault("NETWORK_LEGACY_MODE", false)

	v.AutomaticEnv()
	if err := v.BindEnv("LOCALE", "LOCALE", "LC_ALL", "LANG"); err != nil {
		return nil, fmt.Errorf("error binding locale: %w", err)
	}

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", flag, err)
				}
			}
		}
	}

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		ServerAddress:          v.GetString("SERVER_ADDRESS"),
		Serve:                  v.GetBool("SERVE"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		RequestTimeout:         v.GetDuration("REQUEST_TIMEOUT"),
		OpenWeatherBaseURL:     v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherAPIKey:      v.GetString("OPENWEATHER_API_KEY"),
		Region:                 strings.ToUpper(strings.TrimSpace(v.GetString("REGION"))),
		Locale:                 v.GetString("LOCALE"),
		TimeZone:               v.GetString("TIMEZONE"),
		Latitude:               strings.TrimSpace(v.GetString("LOCATION_LATITUDE")),
		Longitude:              strings.TrimSpace(v.GetString("LOCATION_LONGITUDE")),
		GeoIPURL:               v.GetString("GEOIP_URL"),
		LocationUpdateInterval: v.GetDuration("LOCATION_UPDATE_INTERVAL"),
		LocationPermission:     v.GetString("LOCATION_PERMISSION"),
		NetworkLegacyMode:      v.GetBool("NETWORK_LEGACY_MODE"),
	}

	return config, nil
}

// HTTPTimeoutDuration bounds outbound HTTP calls. Zero means no timeout.
func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// FixedCoordinates returns the configured coordinates, or nil when none are
// set and the location has to be looked up.
func (c *Config) FixedCoordinates() (*weather.Coordinates, error) {
	if c.Latitude == "" && c.Longitude == "" {
		return nil, nil
	}
	if c.Latitude == "" || c.Longitude == "" {
		return nil, errors.New("latitude and longitude must be set together")
	}

	lat, err := strconv.ParseFloat(c.Latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", c.Latitude, err)
	}
	lon, err := strconv.ParseFloat(c.Longitude, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", c.Longitude, err)
	}

	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude %v out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("longitude %v out of range", lon)
	}

	return &weather.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// Location resolves TIMEZONE. An empty value means the process local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
