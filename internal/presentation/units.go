package presentation

import (
	"math"
	"strings"

	"golang.org/x/text/language"
)

const (
	celsius    = "°C"
	fahrenheit = "°F"
	metersPerS = "m/s"
	milesPerH  = "mph"
)

// imperialRegions lists the region codes that display Fahrenheit and mph.
var imperialRegions = map[string]struct{}{
	"US": {},
	"LR": {},
	"MM": {},
	"UK": {},
}

func isImperial(regionCode string) bool {
	_, ok := imperialRegions[strings.ToUpper(strings.TrimSpace(regionCode))]
	return ok
}

func TemperatureUnitSymbol(regionCode string) string {
	if isImperial(regionCode) {
		return fahrenheit
	}
	return celsius
}

func SpeedUnitSymbol(regionCode string) string {
	if isImperial(regionCode) {
		return milesPerH
	}
	return metersPerS
}

var windDirections = [8]string{"NNE", "ENE", "ESE", "SSE", "SSW", "WSW", "WNW", "NNW"}

// WindDirectionLabel maps degrees in (0, 360] onto eight 45° bands. Zero,
// negative, NaN and values above 360 have no label.
func WindDirectionLabel(degrees float64) string {
	if math.IsNaN(degrees) || degrees <= 0 || degrees > 360 {
		return ""
	}
	return windDirections[int(math.Ceil(degrees/45))-1]
}

// RegionFromLocale extracts the region subtag from a POSIX or BCP 47 locale
// such as "en_US.UTF-8" or "de-DE". It returns "" when the locale carries no
// explicit region.
func RegionFromLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}

	region, confidence := tag.Region()
	if confidence != language.Exact {
		return ""
	}
	return region.String()
}
