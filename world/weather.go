package world

// Weather is the current environmental weather state.
type Weather uint8

const (
	WeatherSunny Weather = iota
	WeatherCloudy
	WeatherRainy
	WeatherStormy
)

const weatherCount = 4

// String returns the weather name.
func (w Weather) String() string {
	switch w {
	case WeatherSunny:
		return "sunny"
	case WeatherCloudy:
		return "cloudy"
	case WeatherRainy:
		return "rainy"
	case WeatherStormy:
		return "stormy"
	default:
		return "unknown"
	}
}

// ParseWeather maps a config string to a Weather, defaulting to sunny.
func ParseWeather(s string) Weather {
	switch s {
	case "cloudy":
		return WeatherCloudy
	case "rainy":
		return WeatherRainy
	case "stormy":
		return WeatherStormy
	default:
		return WeatherSunny
	}
}
