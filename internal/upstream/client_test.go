package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var payload map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "aviator", payload["prompt"])

		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), 0)
	result, err := client.PostJSON(context.Background(), server.URL+"/models/x:generateContent?key=secret", map[string]string{"prompt": "aviator"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusTeapot, result.StatusCode)
	assert.False(t, result.OK())
	assert.Equal(t, "not json at all", string(result.Body))
}

type failingDoer struct{}

func (failingDoer) Do(req *http.Request) (*http.Response, error) {
	return nil, &urlError{url: req.URL.String()}
}

type urlError struct{ url string }

func (e *urlError) Error() string { return "dial failed for " + e.url }

func TestPostJSONTransportErrorRedactsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(nil, 0)
	_, err := client.PostJSON(context.Background(), server.URL+"/v1?key=super-secret", map[string]string{})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret")
	assert.Contains(t, err.Error(), "upstream request failed")
}

func TestPostJSONDoerError(t *testing.T) {
	client := NewClient(failingDoer{}, 0)
	_, err := client.PostJSON(context.Background(), "http://upstream.invalid/v1", map[string]string{})
	require.Error(t, err)

	var target *urlError
	assert.True(t, errors.As(err, &target))
}

func TestPostJSONMarshalError(t *testing.T) {
	client := NewClient(failingDoer{}, 0)
	_, err := client.PostJSON(context.Background(), "http://upstream.invalid", map[string]interface{}{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal")
}

func TestRedactURL(t *testing.T) {
	redacted := RedactURL("https://example.com/v1/models/m:predict?key=abc123&alt=json")
	assert.NotContains(t, redacted, "abc123")
	assert.True(t, strings.HasPrefix(redacted, "https://example.com/v1/models/m:predict?"))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"nested error message", 400, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, "API key not valid"},
		{"string error", 403, `{"error":"quota exhausted"}`, "quota exhausted"},
		{"top-level message", 429, `{"message":"slow down"}`, "slow down"},
		{"raw text", 502, "<html>Bad Gateway</html>", "<html>Bad Gateway</html>"},
		{"json without message", 500, `{"foo":"bar"}`, `{"foo":"bar"}`},
		{"empty body", 503, "", "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.status, []byte(tt.body)))
		})
	}
}

func TestResultOK(t *testing.T) {
	assert.True(t, (&Result{StatusCode: 200}).OK())
	assert.True(t, (&Result{StatusCode: 204}).OK())
	assert.False(t, (&Result{StatusCode: 302}).OK())
	assert.False(t, (&Result{StatusCode: 500}).OK())
}
