package presentation

import (
	"fmt"
	"strconv"
	"time"

	"ulascansenturk/local-weather/internal/weather"
)

// Display is the fully formatted bundle a UI shell renders as-is.
type Display struct {
	Main          string `json:"main"`
	Description   string `json:"description"`
	Temperature   string `json:"temperature"`
	FeelsLike     string `json:"feels_like"`
	Humidity      string `json:"humidity"`
	Pressure      string `json:"pressure"`
	WindSpeed     string `json:"wind_speed"`
	WindDirection string `json:"wind_direction"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	Icon          Icon   `json:"icon"`
}

type Formatter struct {
	region   string
	location *time.Location
}

// NewFormatter builds a formatter for a region code. A nil location means
// the process local time zone.
func NewFormatter(regionCode string, location *time.Location) *Formatter {
	if location == nil {
		location = time.Local
	}
	return &Formatter{
		region:   regionCode,
		location: location,
	}
}

func FormatClockTime(epochSeconds int64, location *time.Location) string {
	if location == nil {
		location = time.Local
	}
	return time.Unix(epochSeconds, 0).In(location).Format("15:04")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (f *Formatter) Present(result weather.Result) Display {
	tempUnit := TemperatureUnitSymbol(f.region)
	speedUnit := SpeedUnitSymbol(f.region)

	return Display{
		Main:          result.ConditionMain,
		Description:   result.ConditionDescription,
		Temperature:   fmt.Sprintf("%s %s", formatNumber(result.Temperature), tempUnit),
		FeelsLike:     fmt.Sprintf("%s %s", formatNumber(result.FeelsLike), tempUnit),
		Humidity:      fmt.Sprintf("%d%%", result.Humidity),
		Pressure:      fmt.Sprintf("%d kPa", result.PressureHpa/10),
		WindSpeed:     fmt.Sprintf("%s %s", formatNumber(result.WindSpeed), speedUnit),
		WindDirection: WindDirectionLabel(result.WindDegrees),
		Name:          result.LocationName,
		Country:       result.CountryCode,
		Sunrise:       FormatClockTime(result.SunriseEpochSeconds, f.location),
		Sunset:        FormatClockTime(result.SunsetEpochSeconds, f.location),
		Icon:          IconFor(result.ConditionIcon),
	}
}
