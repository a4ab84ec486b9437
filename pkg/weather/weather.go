// Package weather is a client for Open-Meteo compatible forecast APIs.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const DefaultAPIURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches current conditions and a daily forecast
type Client struct {
	apiURL string
	client *http.Client
}

// Config configures the weather client
type Config struct {
	APIURL  string
	Timeout time.Duration
}

// Forecast is the normalized response returned to callers
type Forecast struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Current   Current         `json:"current"`
	Daily     []DailyForecast `json:"daily"`
}

type Current struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	WeatherCode int     `json:"weather_code"`
	Description string  `json:"description"`
}

type DailyForecast struct {
	Date                     string  `json:"date"`
	TemperatureMax           float64 `json:"temperature_max"`
	TemperatureMin           float64 `json:"temperature_min"`
	PrecipitationProbability float64 `json:"precipitation_probability"`
	WeatherCode              int     `json:"weather_code"`
	Description              string  `json:"description"`
}

// Open-Meteo wire format
type apiResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   struct {
		Time             string  `json:"time"`
		Temperature2m    float64 `json:"temperature_2m"`
		RelativeHumidity float64 `json:"relative_humidity_2m"`
		WindSpeed10m     float64 `json:"wind_speed_10m"`
		WeatherCode      int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time                        []string  `json:"time"`
		WeatherCode                 []int     `json:"weather_code"`
		Temperature2mMax            []float64 `json:"temperature_2m_max"`
		Temperature2mMin            []float64 `json:"temperature_2m_min"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// New creates a weather client
func New(config Config) *Client {
	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		apiURL: config.APIURL,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Forecast fetches conditions for the given coordinates. It does not retry.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debugf("Weather request completed in %dms", time.Since(startTime).Milliseconds())

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return normalize(&raw), nil
}

func normalize(raw *apiResponse) *Forecast {
	f := &Forecast{
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		Timezone:  raw.Timezone,
		Current: Current{
			Time:        raw.Current.Time,
			Temperature: raw.Current.Temperature2m,
			Humidity:    raw.Current.RelativeHumidity,
			WindSpeed:   raw.Current.WindSpeed10m,
			WeatherCode: raw.Current.WeatherCode,
			Description: Describe(raw.Current.WeatherCode),
		},
		Daily: make([]DailyForecast, 0, len(raw.Daily.Time)),
	}

	d := raw.Daily
	for i, date := range d.Time {
		day := DailyForecast{Date: date}
		if i < len(d.WeatherCode) {
			day.WeatherCode = d.WeatherCode[i]
			day.Description = Describe(d.WeatherCode[i])
		}
		if i < len(d.Temperature2mMax) {
			day.TemperatureMax = d.Temperature2mMax[i]
		}
		if i < len(d.Temperature2mMin) {
			day.TemperatureMin = d.Temperature2mMin[i]
		}
		if i < len(d.PrecipitationProbabilityMax) {
			day.PrecipitationProbability = d.PrecipitationProbabilityMax[i]
		}
		f.Daily = append(f.Daily, day)
	}

	return f
}

// Describe maps a WMO weather interpretation code to a short description
func Describe(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code >= 1 && code <= 3:
		return "Partly cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain showers"
	case code == 85 || code == 86:
		return "Snow showers"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
