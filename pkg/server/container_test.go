package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/services"
)

const validBody = `{"imageBase64":"AAAA","mimeType":"image/png","prompt":"aviator"}`

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Environment: "test",
		Gemini: config.GeminiConfig{
			APIKey:           "gemini-key",
			EndpointTemplate: baseURL + "/models/{model}:generateContent?key={key}",
			StyleAdviceModel: "text-model",
			ImageEditModel:   "image-model",
		},
		Imagen: config.ImagenConfig{
			APIKey:           "imagen-key",
			ProjectID:        "proj",
			Location:         "us-central1",
			Model:            "imagegeneration@006",
			EndpointTemplate: baseURL + "/projects/{project}/models/{model}:predict?key={key}",
		},
		Routes: config.RoutesConfig{
			StyleAdvice: "/api/style-advice",
			ImageEdit:   "/api/edit-image",
			ImagenEdit:  "/api/imagen-edit",
		},
	}
}

func newUpstream(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewContainer(t *testing.T) {
	container, err := NewContainer(testConfig("http://localhost"), nil)
	require.NoError(t, err)

	assert.NotNil(t, container.Services.StyleAdviceService)
	assert.NotNil(t, container.Services.ImageEditService)
	assert.NotNil(t, container.Services.ImagenEditService)
	assert.ElementsMatch(t, []string{"/api/style-advice", "/api/edit-image", "/api/imagen-edit"}, container.Router.Paths())

	_, err = NewContainer(nil, nil)
	assert.Error(t, err)
}

func TestRouterFor(t *testing.T) {
	container, err := NewContainer(testConfig("http://localhost"), nil)
	require.NoError(t, err)

	for _, name := range []string{"", services.StyleAdviceName, services.ImageEditName, services.ImagenEditName} {
		router, err := container.RouterFor(name)
		assert.NoError(t, err)
		assert.NotNil(t, router)
	}

	_, err = container.RouterFor("receipts")
	assert.Error(t, err)
}

func TestLambdaHandler(t *testing.T) {
	upstream := newUpstream(t, `{"candidates":[{"content":{"parts":[{"text":"Wayfarers"}]}}]}`)
	load := func() (*config.Config, error) { return testConfig(upstream.URL), nil }

	handler := LambdaHandler("", load, upstream.Client())
	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/api/style-advice",
		Body:       validBody,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"styleAdvice":"Wayfarers"}`, resp.Body)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.NotEmpty(t, resp.Headers["X-Request-ID"])
}

func TestLambdaHandlerSingleRoute(t *testing.T) {
	upstream := newUpstream(t, `{"predictions":[{"bytesBase64Encoded":"IMG"}]}`)
	load := func() (*config.Config, error) { return testConfig(upstream.URL), nil }

	handler := LambdaHandler(services.ImagenEditName, load, upstream.Client())
	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/prod/imagen",
		Body:       validBody,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"newBase64":"IMG"}`, resp.Body)
}

func TestLambdaHandlerConfigError(t *testing.T) {
	load := func() (*config.Config, error) { return nil, errors.New("invalid UPSTREAM_TIMEOUT") }

	resp, err := LambdaHandler("", load, nil)(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPost,
		Path:           "/api/style-advice",
		Body:           validBody,
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Body, "invalid UPSTREAM_TIMEOUT")
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "gw-1", resp.Headers["X-Request-ID"])
}

func TestLambdaHandlerMethodsIgnoreConfigFailure(t *testing.T) {
	loads := 0
	load := func() (*config.Config, error) {
		loads++
		return nil, errors.New("invalid UPSTREAM_TIMEOUT")
	}

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"preflight on route", http.MethodOptions, "/api/style-advice", http.StatusNoContent},
		{"preflight on unknown path", http.MethodOptions, "/nowhere", http.StatusNoContent},
		{"get", http.MethodGet, "/api/edit-image", http.StatusMethodNotAllowed},
		{"put", http.MethodPut, "/api/imagen-edit", http.StatusMethodNotAllowed},
	}

	for _, handlerName := range []string{"", services.ImagenEditName} {
		handler := LambdaHandler(handlerName, load, nil)
		for _, tt := range tests {
			t.Run(handlerName+" "+tt.name, func(t *testing.T) {
				resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
					HTTPMethod:     tt.method,
					Path:           tt.path,
					RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-2"},
				})

				require.NoError(t, err)
				assert.Equal(t, tt.want, resp.StatusCode)
				assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
				assert.Equal(t, "POST, OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
				assert.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"])
				assert.Equal(t, "gw-2", resp.Headers["X-Request-ID"])
				if tt.method == http.MethodOptions {
					assert.Empty(t, resp.Body)
				} else {
					assert.Contains(t, resp.Body, "error")
				}
			})
		}
	}

	assert.Equal(t, 0, loads)
}

func TestLambdaHandlerPreflightWithoutConfig(t *testing.T) {
	cfg := testConfig("http://localhost")
	cfg.Gemini.APIKey = ""
	load := func() (*config.Config, error) { return cfg, nil }

	resp, err := LambdaHandler("", load, nil)(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodOptions,
		Path:       "/api/style-advice",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestLambdaHandlerInvalidBase64(t *testing.T) {
	load := func() (*config.Config, error) { return testConfig("http://localhost"), nil }

	resp, err := LambdaHandler("", load, nil)(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/api/style-advice",
		Body:            "%%%",
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLambdaHandlerAppliesLoggingConfig(t *testing.T) {
	defer config.SetupLogging(config.LoggingConfig{Level: "info"})

	upstream := newUpstream(t, `{"candidates":[{"content":{"parts":[{"text":"Browline"}]}}]}`)
	load := func() (*config.Config, error) {
		cfg := testConfig(upstream.URL)
		cfg.Logging = config.LoggingConfig{Level: "debug", Format: "json"}
		return cfg, nil
	}

	resp, err := LambdaHandler("", load, upstream.Client())(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/api/style-advice",
		Body:       validBody,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	_, isJSON := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}
