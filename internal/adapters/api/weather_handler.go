package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherblock.app/internal/core/weather"
)

// locationPath binds the :location segment of lookup and cache routes
type locationPath struct {
	Location string `uri:"location" binding:"required,location"`
}

type unitsQuery struct {
	Units string `form:"units,default=metric" binding:"units"`
}

// WeatherResponse represents the HTTP response for weather data
type WeatherResponse struct {
	Location    string  `json:"location"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	Units       string  `json:"units"`
	Timestamp   int64   `json:"timestamp"`
}

func newWeatherResponse(record *weather.Record) WeatherResponse {
	return WeatherResponse{
		Location:    record.Location,
		Country:     record.Country,
		Temperature: record.Temperature,
		Description: record.Description,
		Icon:        record.Icon,
		Humidity:    record.Humidity,
		Units:       string(record.Units),
		Timestamp:   record.Timestamp.Unix(),
	}
}

// bindLocationAndUnits validates the path location and the units query
func bindLocationAndUnits(c *gin.Context) (string, weather.Units, error) {
	var path locationPath
	if err := c.ShouldBindUri(&path); err != nil {
		return "", "", newInvalidParamError(err)
	}
	var query unitsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return "", "", newInvalidParamError(err)
	}
	return path.Location, weather.Units(query.Units), nil
}

// getWeather handles GET /weather/:location
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	location, units, err := bindLocationAndUnits(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if !s.verifyNonce(c) {
		s.handleError(c, newInvalidNonceError())
		return
	}

	record, err := s.weatherUseCase.GetWeatherData(c.Request.Context(), location, units)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherResponse(record))
}

// renderBlock handles GET /render and returns the block markup
func (s *HTTPServerAdapter) renderBlock(c *gin.Context) {
	markup, err := s.renderer.Render(c.Request.Context(), BlockAttributes{
		Location:    c.Query("location"),
		Units:       c.Query("units"),
		DisplayMode: c.Query("displayMode"),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

// createNonce handles POST /nonce
func (s *HTTPServerAdapter) createNonce(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"nonce": s.nonces.Create(NonceAction)})
}
