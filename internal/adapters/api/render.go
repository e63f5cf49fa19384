package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"weatherblock.app/internal/core/weather"
	"weatherblock.app/pkg/errors"
	"weatherblock.app/pkg/sanitize"
)

const (
	defaultDisplayMode = "auto"
	loadingMessage     = "Weather data is loading..."
	unavailableMessage = "Could not fetch weather data. Please try again later."
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// WeatherLookup is the lookup the block renderer displays
type WeatherLookup interface {
	GetWeatherData(ctx context.Context, location string, units weather.Units) (*weather.Record, error)
}

// BlockAttributes are the editor-controlled settings of a weather block
type BlockAttributes struct {
	Location    string
	Units       string
	DisplayMode string
}

// BlockRenderer turns a weather lookup into block markup
type BlockRenderer struct {
	lookup    WeatherLookup
	templates *template.Template
}

type blockView struct {
	DisplayMode string
	Query       string
	Location    string
	Country     string
	IconURL     string
	Description string
	Summary     string
	Temperature string
	Symbol      string
	Humidity    int
}

func NewBlockRenderer(lookup WeatherLookup) (*BlockRenderer, error) {
	if lookup == nil {
		return nil, errors.NewValidationError("weather lookup is required")
	}

	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse block templates: %w", err)
	}

	return &BlockRenderer{lookup: lookup, templates: templates}, nil
}

// Render returns the markup for attrs. A block without a location renders
// nothing; lookup failures render an error block rather than failing.
func (r *BlockRenderer) Render(ctx context.Context, attrs BlockAttributes) (string, error) {
	location := sanitize.Text(attrs.Location)
	if location == "" {
		return "", nil
	}

	units := weather.Units(sanitize.Text(attrs.Units))
	if units == "" {
		units = weather.UnitsMetric
	}
	displayMode := sanitize.Text(attrs.DisplayMode)
	if displayMode == "" {
		displayMode = defaultDisplayMode
	}

	record, err := r.lookup.GetWeatherData(ctx, location, units)
	if err != nil {
		message := unavailableMessage
		if appErr, ok := errors.As(err); ok && appErr.Message != "" {
			message = appErr.Message
		}
		return r.execute("error", message)
	}
	if record == nil {
		return r.execute("error", loadingMessage)
	}

	return r.execute("block", blockView{
		DisplayMode: displayMode,
		Query:       location,
		Location:    record.Location,
		Country:     record.Country,
		IconURL:     record.IconURL(weather.IconSize2x),
		Description: record.Description,
		Summary:     upperFirst(record.Description),
		Temperature: formatTemperature(record.Temperature),
		Symbol:      units.TemperatureSymbol(),
		Humidity:    record.Humidity,
	})
}

func (r *BlockRenderer) execute(name string, data interface{}) (string, error) {
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return b.String(), nil
}

// formatTemperature renders t with one decimal, halves rounded away from
// zero, and comma-grouped thousands.
func formatTemperature(t float64) string {
	rounded := math.Round(t*10) / 10
	if rounded == 0 {
		// no "-0.0"
		rounded = 0
	}
	s := strconv.FormatFloat(rounded, 'f', 1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, fraction, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String() + "." + fraction
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
