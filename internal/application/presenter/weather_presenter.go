package presenter

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go-weather/internal/domain/entity"
)

// Padding is the width of the city and description fields, shared so that lines from
// repeated runs line up in columns.
const Padding = 20

type WeatherPresenter struct {
	color bool
}

type Option func(*WeatherPresenter)

// WithColor toggles ANSI escape sequences in the output. Enabled by default.
func WithColor(enabled bool) Option {
	return func(p *WeatherPresenter) {
		p.color = enabled
	}
}

func NewWeatherPresenter(opts ...Option) *WeatherPresenter {
	p := &WeatherPresenter{color: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render formats a weather result as a single terminal line:
// the city in reverse video, the condition icon, the capitalized description in the
// condition color and the temperature with its unit.
func (p *WeatherPresenter) Render(result entity.WeatherResult, units entity.UnitSystem) string {
	display := entity.Classify(result.ConditionCode).Display()

	var b strings.Builder
	p.style(&b, entity.Reverse)
	b.WriteString(center(result.CityName, Padding))
	p.style(&b, entity.Reset)

	p.style(&b, display.Color)
	b.WriteString("\t")
	b.WriteString(display.Icon)
	b.WriteString(" ")
	b.WriteString(center(capitalize(result.ConditionDescription), Padding))
	b.WriteString(" ")
	p.style(&b, entity.Reset)

	b.WriteString("(")
	b.WriteString(strconv.FormatFloat(result.Temperature, 'f', -1, 64))
	b.WriteString(units.Symbol())
	b.WriteString(")\n")

	return b.String()
}

func (p *WeatherPresenter) style(b *strings.Builder, color entity.Color) {
	if p.color {
		b.WriteString(string(color))
	}
}

// center pads s with spaces to width runes, the odd space going to the right.
// Longer strings are returned as is.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// capitalize upper-cases the first letter and leaves the rest unchanged.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
