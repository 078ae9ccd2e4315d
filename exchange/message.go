package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultDisplayName names the account when the backend did not.
const DefaultDisplayName = "connected user"

// ErrorMessage extracts what went wrong from a non-2xx backend answer.
//
// A JSON object's non-empty "message" wins over a non-empty "error".
// Failing both, the message names the status; a trailing period marks a body that is not JSON.
func ErrorMessage(status int, statusText string, body []byte) string {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Sprintf("Server error: %d %s.", status, statusText)
	}

	if obj, ok := payload.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
	}

	return fmt.Sprintf("Server error: %d %s", status, statusText)
}

// DisplayName extracts the connected account's email from a 2xx backend answer,
// falling back to DefaultDisplayName.
//
// A non-empty string, a non-zero number or true is shown as is.
func DisplayName(body []byte) string {
	var payload struct {
		UserEmail any `json:"userEmail"`
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return DefaultDisplayName
	}

	switch v := payload.UserEmail.(type) {
	case string:
		if v != "" {
			return v
		}
	case json.Number:
		if f, err := v.Float64(); err == nil && f != 0 {
			return v.String()
		}
	case bool:
		if v {
			return "true"
		}
	}

	return DefaultDisplayName
}
