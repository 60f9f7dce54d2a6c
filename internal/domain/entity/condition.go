package entity

// ConditionCategory groups provider condition codes into the categories shown in the terminal.
type ConditionCategory int

const (
	Unknown ConditionCategory = iota
	Thunderstorm
	Drizzle
	Rain
	Snow
	Atmosphere
	Clear
	Cloudy
)

// Color is an ANSI SGR escape sequence.
type Color string

const (
	Reset   Color = "\033[0m"
	Reverse Color = "\033[;7m"
	Red     Color = "\033[1;31m"
	Blue    Color = "\033[1;34m"
	Cyan    Color = "\033[1;36m"
	Yellow  Color = "\033[33m"
	White   Color = "\033[37m"
)

// Display is the icon and color a category is rendered with.
type Display struct {
	Icon  string
	Color Color
}

// conditionRange is a half-open interval [from, to) of condition codes.
type conditionRange struct {
	from, to int
	category ConditionCategory
}

// https://openweathermap.org/weather-conditions
var conditionRanges = []conditionRange{
	{200, 300, Thunderstorm},
	{300, 400, Drizzle},
	{500, 600, Rain},
	{600, 700, Snow},
	{700, 800, Atmosphere},
	{800, 801, Clear},
	{801, 900, Cloudy},
}

var displays = map[ConditionCategory]Display{
	Thunderstorm: {Icon: "⛈️", Color: Red},
	Drizzle:      {Icon: "💧", Color: Cyan},
	Rain:         {Icon: "🌧️", Color: Blue},
	Snow:         {Icon: "❄️", Color: White},
	Atmosphere:   {Icon: "🌫️", Color: Blue},
	Clear:        {Icon: "☀️", Color: Yellow},
	Cloudy:       {Icon: "☁️", Color: White},
	Unknown:      {Icon: "🌈", Color: Reset},
}

var categoryNames = map[ConditionCategory]string{
	Thunderstorm: "thunderstorm",
	Drizzle:      "drizzle",
	Rain:         "rain",
	Snow:         "snow",
	Atmosphere:   "atmosphere",
	Clear:        "clear",
	Cloudy:       "cloudy",
	Unknown:      "unknown",
}

// Classify maps a provider condition code to its category.
// Codes outside every known range are Unknown, so codes added by the provider later still render.
func Classify(code int) ConditionCategory {
	for _, r := range conditionRanges {
		if code >= r.from && code < r.to {
			return r.category
		}
	}
	return Unknown
}

// Display returns the icon and color of the category
func (c ConditionCategory) Display() Display {
	if d, ok := displays[c]; ok {
		return d
	}
	return displays[Unknown]
}

func (c ConditionCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[Unknown]
}
