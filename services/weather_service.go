package services

import (
	"carehub/cache"
	"carehub/pkg/weather"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// WeatherService proxies the forecast API through a response cache
type WeatherService struct {
	client     WeatherClient
	cache      cache.Cache
	ttl        time.Duration
	defaultLat float64
	defaultLon float64
}

// WeatherConfig holds the defaults applied when the caller omits coordinates
type WeatherConfig struct {
	CacheTTL   time.Duration
	DefaultLat float64
	DefaultLon float64
}

func NewWeatherService(client WeatherClient, c cache.Cache, cfg WeatherConfig) *WeatherService {
	return &WeatherService{
		client:     client,
		cache:      c,
		ttl:        cfg.CacheTTL,
		defaultLat: cfg.DefaultLat,
		defaultLon: cfg.DefaultLon,
	}
}

// Defaults returns the coordinates used when none are given
func (ws *WeatherService) Defaults() (lat, lon float64) {
	return ws.defaultLat, ws.defaultLon
}

// Forecast returns cached conditions when fresh and asks the API otherwise.
// Cache failures degrade to a direct fetch.
func (ws *WeatherService) Forecast(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return nil, fmt.Errorf("%w: coordinates must be numbers", ErrInvalidInput)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	key := fmt.Sprintf("weather:%.4f:%.4f", lat, lon)

	if cached, ok, err := ws.cache.Get(ctx, key); err != nil {
		slog.Warn("Weather cache read failed", "key", key, "error", err)
	} else if ok {
		var forecast weather.Forecast
		if err := json.Unmarshal(cached, &forecast); err == nil {
			return &forecast, nil
		}
	}

	forecast, err := ws.client.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if data, err := json.Marshal(forecast); err == nil {
		if err := ws.cache.Set(ctx, key, data, ws.ttl); err != nil {
			slog.Warn("Weather cache write failed", "key", key, "error", err)
		}
	}

	return forecast, nil
}
