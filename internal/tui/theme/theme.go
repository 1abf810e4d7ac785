// Package theme holds the color palettes for the dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named palette. Roles, not colors: components pick by role so
// every palette works.
type Theme struct {
	Name string

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	Text      lipgloss.Color
	TextMuted lipgloss.Color
	TextDim   lipgloss.Color

	Accent       lipgloss.Color
	AccentBright lipgloss.Color

	Green  lipgloss.Color
	Yellow lipgloss.Color
	Orange lipgloss.Color
	Red    lipgloss.Color
	Cyan   lipgloss.Color
}

// FlexokiDark is the default palette.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	Text:         lipgloss.Color("#CECDC3"),
	TextMuted:    lipgloss.Color("#878580"),
	TextDim:      lipgloss.Color("#575653"),
	Accent:       lipgloss.Color("#4385BE"),
	AccentBright: lipgloss.Color("#66A0C8"),
	Green:        lipgloss.Color("#879A39"),
	Yellow:       lipgloss.Color("#D0A215"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Cyan:         lipgloss.Color("#3AA99F"),
}

// CatppuccinMocha is a soft pastel dark palette.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Border:       lipgloss.Color("#45475A"),
	Text:         lipgloss.Color("#CDD6F4"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextDim:      lipgloss.Color("#6C7086"),
	Accent:       lipgloss.Color("#CBA6F7"),
	AccentBright: lipgloss.Color("#F5C2E7"),
	Green:        lipgloss.Color("#A6E3A1"),
	Yellow:       lipgloss.Color("#F9E2AF"),
	Orange:       lipgloss.Color("#FAB387"),
	Red:          lipgloss.Color("#F38BA8"),
	Cyan:         lipgloss.Color("#94E2D5"),
}

// Terminal falls back to the terminal's own ANSI palette.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	Text:         lipgloss.Color("15"),
	TextMuted:    lipgloss.Color("7"),
	TextDim:      lipgloss.Color("8"),
	Accent:       lipgloss.Color("4"),
	AccentBright: lipgloss.Color("12"),
	Green:        lipgloss.Color("2"),
	Yellow:       lipgloss.Color("3"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Cyan:         lipgloss.Color("6"),
}

// Active is the palette in use. Set once at startup.
var Active = FlexokiDark

var all = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

// Names lists the available theme names in presentation order.
func Names() []string {
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	return names
}

// ByName looks a theme up by name.
func ByName(name string) (Theme, bool) {
	for _, t := range all {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// SetActive switches the active palette, ignoring unknown names.
func SetActive(name string) {
	if t, ok := ByName(name); ok {
		Active = t
	}
}
