package shell

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/local-weather/internal/presentation"
)

var iconGlyphs = map[presentation.Icon]string{
	presentation.IconSunny:     "☀",
	presentation.IconCloud:     "☁",
	presentation.IconRain:      "☂",
	presentation.IconStorm:     "⚡",
	presentation.IconSnowflake: "❄",
}

// Terminal renders the weather screen as plain text.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Render(d presentation.Display) {
	var b strings.Builder

	title := d.Name
	if d.Country != "" {
		title = fmt.Sprintf("%s, %s", d.Name, d.Country)
	}

	fmt.Fprintf(&b, "%s %s\n", iconGlyphs[d.Icon], title)
	fmt.Fprintf(&b, "  %s (%s)\n", d.Main, d.Description)
	fmt.Fprintf(&b, "  Temperature  %s (feels like %s)\n", d.Temperature, d.FeelsLike)
	fmt.Fprintf(&b, "  Humidity     %s\n", d.Humidity)
	fmt.Fprintf(&b, "  Pressure     %s\n", d.Pressure)
	fmt.Fprintf(&b, "  Wind         %s %s\n", d.WindSpeed, d.WindDirection)
	fmt.Fprintf(&b, "  Sunrise      %s\n", d.Sunrise)
	fmt.Fprintf(&b, "  Sunset       %s\n", d.Sunset)

	t.write(b.String())
}

func (t *Terminal) ShowNotice(message string) {
	t.write("! " + message + "\n")
}

// OpenLocationSettings has no settings screen to open in a terminal, so it
// points the user at the flags that supply a location.
func (t *Terminal) OpenLocationSettings() {
	t.write("  Set --lat/--lon or GEOIP_URL to provide a location.\n")
}

func (t *Terminal) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := io.WriteString(t.out, s); err != nil {
		log.Error().Err(err).Msg("failed to write to terminal")
	}
}
