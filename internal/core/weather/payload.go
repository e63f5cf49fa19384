package weather

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

const upstreamSuccessCode = 200

// rejection describes why an upstream payload was not accepted. err is
// returned to the caller; reason is only ever logged.
type rejection struct {
	err     *errors.AppError
	outcome string
	reason  string
}

func emptyResponse(reason string) *rejection {
	return &rejection{err: NewEmptyUpstreamResponseError(), outcome: ports.UpstreamOutcomeEmptyResponse, reason: reason}
}

func invalidResponse(reason string) *rejection {
	return &rejection{err: NewInvalidUpstreamResponseError(), outcome: ports.UpstreamOutcomeInvalidResponse, reason: reason}
}

// decodePayload parses the provider body into a JSON object and rejects
// provider-reported failures.
func decodePayload(body []byte) (map[string]interface{}, *rejection) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, emptyResponse("empty response body")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, emptyResponse("undecodable response body: " + err.Error())
	}
	if len(data) == 0 {
		return nil, emptyResponse("empty response object")
	}

	if cod, ok := data["cod"]; ok && cod != nil && intValue(cod) != upstreamSuccessCode {
		message := "Unknown API error"
		if raw, ok := data["message"]; ok && raw != nil {
			message = textValue(raw)
		}
		return nil, &rejection{
			err:     NewUpstreamAPIError(),
			outcome: ports.UpstreamOutcomeAPIError,
			reason:  message,
		}
	}

	return data, nil
}

// normalizePayload checks required fields and builds a Record from them
func normalizePayload(data map[string]interface{}, units Units, clean func(string) string, now time.Time) (*Record, *rejection) {
	for _, field := range []string{"name", "sys", "main", "weather"} {
		if data[field] == nil {
			return nil, invalidResponse("missing required field '" + field + "'")
		}
	}

	sys, _ := data["sys"].(map[string]interface{})
	if sys == nil || sys["country"] == nil {
		return nil, invalidResponse("missing country in sys data")
	}

	measurements, _ := data["main"].(map[string]interface{})
	if measurements == nil || measurements["temp"] == nil || measurements["humidity"] == nil {
		return nil, invalidResponse("missing temperature or humidity in main data")
	}

	var condition map[string]interface{}
	if conditions, ok := data["weather"].([]interface{}); ok && len(conditions) > 0 {
		condition, _ = conditions[0].(map[string]interface{})
	}
	if condition == nil || condition["description"] == nil || condition["icon"] == nil {
		return nil, invalidResponse("missing weather description or icon")
	}

	return &Record{
		Location:    clean(textValue(data["name"])),
		Country:     clean(textValue(sys["country"])),
		Temperature: floatValue(measurements["temp"]),
		Description: clean(textValue(condition["description"])),
		Icon:        clean(textValue(condition["icon"])),
		Humidity:    int(floatValue(measurements["humidity"])),
		Units:       units,
		Timestamp:   now,
	}, nil
}

func textValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		if value {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// floatValue coerces JSON scalars to a number; anything unparsable is 0
func floatValue(v interface{}) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return parsed
	case bool:
		if value {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func intValue(v interface{}) int {
	return int(floatValue(v))
}
