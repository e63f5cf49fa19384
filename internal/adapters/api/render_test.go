package api

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherblock.app/internal/core/weather"
)

type lookupFunc func(ctx context.Context, location string, units weather.Units) (*weather.Record, error)

func (f lookupFunc) GetWeatherData(ctx context.Context, location string, units weather.Units) (*weather.Record, error) {
	return f(ctx, location, units)
}

func londonRecord(units weather.Units) *weather.Record {
	return &weather.Record{
		Location:    "London",
		Country:     "GB",
		Temperature: 15.25,
		Description: "light rain",
		Icon:        "10d",
		Humidity:    72,
		Units:       units,
		Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewBlockRenderer_RequiresLookup(t *testing.T) {
	_, err := NewBlockRenderer(nil)
	assert.Error(t, err)
}

func TestBlockRenderer_Render(t *testing.T) {
	var gotLocation string
	var gotUnits weather.Units
	renderer, err := NewBlockRenderer(lookupFunc(func(ctx context.Context, location string, units weather.Units) (*weather.Record, error) {
		gotLocation, gotUnits = location, units
		return londonRecord(units), nil
	}))
	require.NoError(t, err)

	t.Run("Defaults", func(t *testing.T) {
		html, err := renderer.Render(context.Background(), BlockAttributes{Location: "London"})
		require.NoError(t, err)

		assert.Equal(t, "London", gotLocation)
		assert.Equal(t, weather.UnitsMetric, gotUnits)
		assert.Contains(t, html, `<div class="weather-block weather-block--theme-auto" data-location="London">`)
		assert.Contains(t, html, `<h3 class="weather-block__location">London, GB</h3>`)
		assert.Contains(t, html, `<img src="https://openweathermap.org/img/wn/10d@2x.png" alt="light rain" class="weather-block__icon" />`)
		assert.Contains(t, html, `<span class="weather-block__temp">15.3°C</span>`)
		assert.Contains(t, html, `<p class="weather-block__description">Light rain</p>`)
		assert.Contains(t, html, `<p class="weather-block__humidity">Humidity: 72%</p>`)
	})

	t.Run("ImperialAndTheme", func(t *testing.T) {
		html, err := renderer.Render(context.Background(), BlockAttributes{
			Location:    "London",
			Units:       "imperial",
			DisplayMode: "dark",
		})
		require.NoError(t, err)

		assert.Equal(t, weather.UnitsImperial, gotUnits)
		assert.Contains(t, html, "weather-block--theme-dark")
		assert.Contains(t, html, "15.3°F")
	})

	t.Run("EmptyLocation", func(t *testing.T) {
		gotLocation = "untouched"
		html, err := renderer.Render(context.Background(), BlockAttributes{Location: "  "})
		require.NoError(t, err)
		assert.Empty(t, html)
		assert.Equal(t, "untouched", gotLocation)
	})

	t.Run("AttributesAreSanitized", func(t *testing.T) {
		html, err := renderer.Render(context.Background(), BlockAttributes{
			Location:    "<b>London</b>",
			DisplayMode: `x" onload="alert(1)`,
		})
		require.NoError(t, err)
		assert.Equal(t, "London", gotLocation)
		assert.NotContains(t, html, `onload="alert(1)"`)
	})
}

func TestBlockRenderer_RenderErrors(t *testing.T) {
	t.Run("AppErrorMessage", func(t *testing.T) {
		renderer, err := NewBlockRenderer(lookupFunc(func(ctx context.Context, location string, units weather.Units) (*weather.Record, error) {
			return nil, weather.NewUpstreamAPIError()
		}))
		require.NoError(t, err)

		html, err := renderer.Render(context.Background(), BlockAttributes{Location: "Atlantis"})
		require.NoError(t, err)
		assert.Equal(t,
			`<div class="weather-block weather-block--error">Could not fetch weather data. Please check the location and try again.</div>`,
			html)
	})

	t.Run("UnexpectedError", func(t *testing.T) {
		renderer, err := NewBlockRenderer(lookupFunc(func(ctx context.Context, location string, units weather.Units) (*weather.Record, error) {
			return nil, fmt.Errorf("dial tcp: secret detail")
		}))
		require.NoError(t, err)

		html, err := renderer.Render(context.Background(), BlockAttributes{Location: "London"})
		require.NoError(t, err)
		assert.Contains(t, html, unavailableMessage)
		assert.NotContains(t, html, "secret detail")
	})

	t.Run("NoRecord", func(t *testing.T) {
		renderer, err := NewBlockRenderer(lookupFunc(func(ctx context.Context, location string, units weather.Units) (*weather.Record, error) {
			return nil, nil
		}))
		require.NoError(t, err)

		html, err := renderer.Render(context.Background(), BlockAttributes{Location: "London"})
		require.NoError(t, err)
		assert.Contains(t, html, loadingMessage)
	})
}

func TestBlockRenderer_EscapesRecordText(t *testing.T) {
	renderer, err := NewBlockRenderer(lookupFunc(func(ctx context.Context, location string, units weather.Units) (*weather.Record, error) {
		record := londonRecord(units)
		record.Location = "Tom & Jerry"
		return record, nil
	}))
	require.NoError(t, err)

	html, err := renderer.Render(context.Background(), BlockAttributes{Location: "London"})
	require.NoError(t, err)
	assert.Contains(t, html, "Tom &amp; Jerry, GB")
}

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{15.2, "15.2"},
		{15.25, "15.3"},
		{-3.25, "-3.3"},
		{0, "0.0"},
		{-0.04, "0.0"},
		{20, "20.0"},
		{1234.56, "1,234.6"},
		{-1234567.8, "-1,234,567.8"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTemperature(tt.in))
		})
	}
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "Light rain", upperFirst("light rain"))
	assert.Equal(t, "Éclaircies", upperFirst("éclaircies"))
	assert.Equal(t, "", upperFirst(""))
}
