package weather

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Result is the typed outcome of one successful current-weather fetch.
type Result struct {
	Temperature          float64 `json:"temperature"`
	FeelsLike            float64 `json:"feels_like"`
	Humidity             int     `json:"humidity"`
	PressureHpa          int     `json:"pressure_hpa"`
	WindSpeed            float64 `json:"wind_speed"`
	WindDegrees          float64 `json:"wind_degrees"`
	ConditionMain        string  `json:"condition_main"`
	ConditionDescription string  `json:"condition_description"`
	ConditionIcon        string  `json:"condition_icon"`
	LocationName         string  `json:"location_name"`
	CountryCode          string  `json:"country_code"`
	SunriseEpochSeconds  int64   `json:"sunrise"`
	SunsetEpochSeconds   int64   `json:"sunset"`
}
