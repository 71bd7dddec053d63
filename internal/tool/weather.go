package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/config"
)

// wttrFormat asks wttr.in for a compact one-line report.
const wttrFormat = "%l: %C | Temp %t (feels %f) | Hum %h | Wind %w"

// wttrAttempts are the per-attempt timeouts against the primary
// provider; it retries once with a longer budget before falling through.
var wttrAttempts = []time.Duration{5 * time.Second, 7 * time.Second}

// WeatherTool reports current weather for a city. It tries wttr.in
// first, then falls back to Open-Meteo (geocode + forecast) across
// several query phrasings. It never returns an error outward; when every
// provider fails the user gets an apology naming the city.
type WeatherTool struct {
	defaultCity     string
	userTitle       string
	fallbackQueries []string

	wttrBase     string
	geocodeBase  string
	forecastBase string
	client       *http.Client
}

// NewWeatherTool creates a weather tool from config.
func NewWeatherTool(cfg config.WeatherConfig, userTitle string) *WeatherTool {
	return &WeatherTool{
		defaultCity:     cfg.DefaultCity,
		userTitle:       userTitle,
		fallbackQueries: cfg.FallbackQueries,
		wttrBase:        "https://wttr.in",
		geocodeBase:     "https://geocoding-api.open-meteo.com/v1/search",
		forecastBase:    "https://api.open-meteo.com/v1/forecast",
		client:          &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *WeatherTool) Name() string { return "get_weather" }
func (t *WeatherTool) Description() string {
	return "Get current weather for a city. Ask the user for the city if they did not name one."
}

func (t *WeatherTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"city": {
				"type": "string",
				"description": "City name; defaults to the user's home city"
			}
		}
	}`)
}

func (t *WeatherTool) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		City string `json:"city"`
	}
	_ = json.Unmarshal(args, &params)

	city := strings.TrimSpace(params.City)
	if city == "" {
		city = t.defaultCity
	}

	if report := t.wttr(ctx, city); report != "" {
		return &Result{Output: report}, nil
	}

	queries := append([]string{city, city + ", India"}, t.fallbackQueries...)
	for _, q := range queries {
		if report := t.openMeteo(ctx, q); report != "" {
			return &Result{Output: report}, nil
		}
	}

	return &Result{
		Output: fmt.Sprintf("Weather services are unreachable right now for %s, %s. (Network/DNS issue likely.)", city, t.userTitle),
	}, nil
}

// wttr queries the primary provider, retrying with a longer timeout.
func (t *WeatherTool) wttr(ctx context.Context, city string) string {
	endpoint := t.wttrBase + "/" + url.PathEscape(city) + "?format=" + url.QueryEscape(wttrFormat)

	for attempt, timeout := range wttrAttempts {
		actx, cancel := context.WithTimeout(ctx, timeout)
		body, err := t.get(actx, endpoint)
		cancel()
		if err != nil {
			log.Printf("[weather] wttr.in attempt %d for %s: %v", attempt+1, city, err)
			continue
		}
		if text := strings.TrimSpace(body); text != "" {
			return text
		}
		log.Printf("[weather] wttr.in empty response for %s", city)
		return ""
	}
	return ""
}

// openMeteo geocodes the query and fetches current conditions.
func (t *WeatherTool) openMeteo(ctx context.Context, query string) string {
	octx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()

	geoURL := t.geocodeBase + "?name=" + url.QueryEscape(query) + "&count=1&language=en&format=json"
	body, err := t.get(octx, geoURL)
	if err != nil {
		log.Printf("[weather] open-meteo geocode for %q: %v", query, err)
		return ""
	}

	var geo struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
			Country   string  `json:"country"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(body), &geo); err != nil || len(geo.Results) == 0 {
		log.Printf("[weather] open-meteo: no geocode results for %q", query)
		return ""
	}
	place := geo.Results[0]

	wxURL := fmt.Sprintf("%s?latitude=%f&longitude=%f&current_weather=true", t.forecastBase, place.Latitude, place.Longitude)
	body, err = t.get(octx, wxURL)
	if err != nil {
		log.Printf("[weather] open-meteo forecast for %q: %v", query, err)
		return ""
	}

	var wx struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			Time        string  `json:"time"`
		} `json:"current_weather"`
	}
	if err := json.Unmarshal([]byte(body), &wx); err != nil || wx.CurrentWeather == nil {
		return ""
	}

	loc := place.Name
	if place.Country != "" {
		loc += ", " + place.Country
	}
	cur := wx.CurrentWeather
	return fmt.Sprintf("%s: Temp %.1f°C | Wind %.1f km/h | Updated %s (UTC)", loc, cur.Temperature, cur.WindSpeed, cur.Time)
}

func (t *WeatherTool) get(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (OracleAI)")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
