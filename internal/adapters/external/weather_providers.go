// Package external provides adapters for external services: the upstream
// weather API and the cache stores.
package external

import (
	stderrors "errors"
	"net/http"
	"net/url"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// credentialParams are query parameters that never leave the adapter in
// error messages or logs.
var credentialParams = []string{"appid"}

const redactedValue = "REDACTED"

// redactURL masks credential query parameters in rawURL
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	query := parsed.Query()
	changed := false
	for _, param := range credentialParams {
		if query.Has(param) {
			query.Set(param, redactedValue)
			changed = true
		}
	}
	if changed {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

// redactError strips credentials from the URL carried by a *url.Error.
// Other errors are returned unchanged.
func redactError(err error) error {
	var urlErr *url.Error
	if !stderrors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: redactURL(urlErr.URL),
		Err: urlErr.Err,
	}
}
