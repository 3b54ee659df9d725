package upstream

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorMessage extracts a human-readable message from an upstream error body.
// It tries error.message, then a string error, then a top-level message,
// and falls back to the raw text (or the status text when the body is empty).
func ErrorMessage(statusCode int, body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Error) > 0 {
			var detailed struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(envelope.Error, &detailed); err == nil && detailed.Message != "" {
				return detailed.Message
			}

			var plain string
			if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
				return plain
			}
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	if strings.TrimSpace(string(body)) == "" {
		return http.StatusText(statusCode)
	}
	return string(body)
}
