package presentation

type Icon string

const (
	IconSunny     Icon = "sunny"
	IconCloud     Icon = "cloud"
	IconRain      Icon = "rain"
	IconStorm     Icon = "storm"
	IconSnowflake Icon = "snowflake"
)

var conditionIcons = map[string]Icon{
	"01d": IconSunny,
	"02d": IconCloud,
	"03d": IconCloud,
	"04d": IconCloud,
	"04n": IconCloud,
	"10d": IconRain,
	"11d": IconStorm,
	"13d": IconSnowflake,
	"01n": IconCloud,
	"02n": IconCloud,
	"03n": IconCloud,
	"10n": IconCloud,
	"11n": IconRain,
	"13n": IconSnowflake,
}

// IconFor returns the screen icon for an OpenWeatherMap icon code.
// Unknown codes fall back to IconSunny.
func IconFor(code string) Icon {
	if icon, ok := conditionIcons[code]; ok {
		return icon
	}
	return IconSunny
}
