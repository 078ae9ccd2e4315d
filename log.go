package connect

import (
	"net/http"
	"net/url"
)

// LogMaskVal replaces sensitive values before they reach a log.
const LogMaskVal = "xxxxxx"

// MaskedKeys are the query param keys whose values never reach a log.
var MaskedKeys = []string{"code", "password", "state"}

// Mask replaces the value paired to each key in vals with LogMaskVal.
// Mask returns a copy; vals is left untouched.
func Mask(vals url.Values, keys ...string) url.Values {
	masked := make(url.Values, len(vals))
	for k, v := range vals {
		masked[k] = append([]string(nil), v...)
	}

	for _, key := range keys {
		if _, ok := masked[key]; !ok {
			continue
		}

		masked[key] = []string{LogMaskVal}
	}

	return masked
}

// MaskRequest copies r, masking the values of MaskedKeys in its query.
func MaskRequest(r *http.Request) *http.Request {
	masked := r.Clone(r.Context())
	if r.URL.RawQuery == "" {
		return masked
	}

	masked.URL.RawQuery = Mask(r.URL.Query(), MaskedKeys...).Encode()
	masked.RequestURI = masked.URL.RequestURI()

	return masked
}
