package config_test

import (
	"testing"
	"time"
	"ulascansenturk/local-weather/config"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"REGION", "LOCATION_LATITUDE", "LOCATION_LONGITUDE", "HTTP_TIMEOUT", "REQUEST_TIMEOUT",
		"LOCALE", "LC_ALL", "LANG", "TIMEZONE", "SERVE", "LOCATION_PERMISSION",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := config.LoadConfig(nil)
	s.Require().NoError(err)

	s.Equal("local-weather", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal(time.Duration(0), conf.HTTPTimeoutDuration())
	s.Equal(30*time.Second, conf.RequestTimeout)
	s.Equal("https://api.openweathermap.org/data/2.5/", conf.OpenWeatherBaseURL)
	s.Equal("http://ip-api.com/json/", conf.GeoIPURL)
	s.Equal(30*time.Second, conf.LocationUpdateInterval)
	s.Equal("ask", conf.LocationPermission)
	s.False(conf.Serve)
	s.False(conf.NetworkLegacyMode)
}

func (s *ConfigTestSuite) TestEnvironmentOverridesDefaults() {
	s.T().Setenv("HTTP_TIMEOUT", "3")
	s.T().Setenv("REQUEST_TIMEOUT", "45s")
	s.T().Setenv("REGION", "us")
	s.T().Setenv("LOCATION_PERMISSION", "granted")

	conf, err := config.LoadConfig(nil)
	s.Require().NoError(err)

	s.Equal(3*time.Second, conf.HTTPTimeoutDuration())
	s.Equal(45*time.Second, conf.RequestTimeout)
	s.Equal("US", conf.Region)
	s.Equal("granted", conf.LocationPermission)
}

func (s *ConfigTestSuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("REGION", "DE")
	s.T().Setenv("LOCATION_LATITUDE", "1")

	flags := config.NewFlagSet("weather")
	s.Require().NoError(flags.Parse([]string{"--region", "LR", "--lat", "37.7", "--lon", "-122.4", "--serve"}))

	conf, err := config.LoadConfig(flags)
	s.Require().NoError(err)

	s.Equal("LR", conf.Region)
	s.True(conf.Serve)

	coords, err := conf.FixedCoordinates()
	s.Require().NoError(err)
	s.Require().NotNil(coords)
	s.Equal(37.7, coords.Latitude)
	s.Equal(-122.4, coords.Longitude)
}

func (s *ConfigTestSuite) TestUnsetFlagsKeepEnvironment() {
	s.T().Setenv("REGION", "DE")

	flags := config.NewFlagSet("weather")
	s.Require().NoError(flags.Parse(nil))

	conf, err := config.LoadConfig(flags)
	s.Require().NoError(err)
	s.Equal("DE", conf.Region)
}

func (s *ConfigTestSuite) TestLocaleFallsBackToLang() {
	s.T().Setenv("LANG", "en_GB.UTF-8")

	conf, err := config.LoadConfig(nil)
	s.Require().NoError(err)
	s.Equal("en_GB.UTF-8", conf.Locale)
}

func (s *ConfigTestSuite) TestFixedCoordinates() {
	conf := &config.Config{}
	coords, err := conf.FixedCoordinates()
	s.NoError(err)
	s.Nil(coords)

	conf = &config.Config{Latitude: "10"}
	_, err = conf.FixedCoordinates()
	s.ErrorContains(err, "set together")

	conf = &config.Config{Latitude: "north", Longitude: "10"}
	_, err = conf.FixedCoordinates()
	s.ErrorContains(err, "invalid latitude")

	conf = &config.Config{Latitude: "91", Longitude: "10"}
	_, err = conf.FixedCoordinates()
	s.ErrorContains(err, "out of range")

	conf = &config.Config{Latitude: "10", Longitude: "-181"}
	_, err = conf.FixedCoordinates()
	s.ErrorContains(err, "out of range")
}

func (s *ConfigTestSuite) TestLocation() {
	loc, err := (&config.Config{}).Location()
	s.NoError(err)
	s.Equal(time.Local, loc)

	loc, err = (&config.Config{TimeZone: "UTC"}).Location()
	s.NoError(err)
	s.Equal("UTC", loc.String())

	_, err = (&config.Config{TimeZone: "Mars/Olympus"}).Location()
	s.ErrorContains(err, "invalid time zone")
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
