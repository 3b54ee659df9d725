package lambda

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/api/style-advice",
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       `{"prompt":"aviator"}`,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID: "gateway-id",
		},
	}

	req, err := FromAPIGateway(event)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/style-advice", req.Path)
	assert.Equal(t, `{"prompt":"aviator"}`, string(req.Body))
	assert.Equal(t, "gateway-id", req.RequestID)
	assert.Equal(t, "application/json", req.Header("Content-Type"))
}

func TestFromAPIGatewayBase64Body(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"a":1}`)),
		IsBase64Encoded: true,
	}

	req, err := FromAPIGateway(event)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(req.Body))
	assert.NotEmpty(t, req.RequestID)
}

func TestFromAPIGatewayInvalidBase64(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		Body:            "***",
		IsBase64Encoded: true,
	}

	_, err := FromAPIGateway(event)
	assert.Error(t, err)
}

func TestAdapt(t *testing.T) {
	handler := Adapt(
		func(ctx context.Context, req *Request) *Response {
			return &Response{
				StatusCode: http.StatusOK,
				Headers:    map[string]string{"X-Path": req.Path},
				Body:       []byte(`{"ok":true}`),
			}
		},
		func(err error) *Response {
			return &Response{StatusCode: http.StatusBadRequest, Body: []byte(err.Error())}
		},
	)

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{Path: "/x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/x", resp.Headers["X-Path"])
	assert.Equal(t, `{"ok":true}`, resp.Body)

	resp, err = handler(context.Background(), events.APIGatewayProxyRequest{Body: "***", IsBase64Encoded: true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestHeaderMissing(t *testing.T) {
	req := &Request{}
	assert.Equal(t, "", req.Header("Content-Type"))
}
