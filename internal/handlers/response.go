package handlers

import (
	"encoding/json"
	"net/http"

	"eyewear-ai-proxy/internal/models"
	"eyewear-ai-proxy/pkg/lambda"
)

// CORSHeaders are attached to every response, including preflight and errors
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

func baseHeaders() map[string]string {
	headers := make(map[string]string, len(CORSHeaders)+1)
	for key, value := range CORSHeaders {
		headers[key] = value
	}
	return headers
}

// preflightResponse answers an OPTIONS request: 204, no body
func preflightResponse() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusNoContent,
		Headers:    baseHeaders(),
	}
}

func jsonResponse(statusCode int, body interface{}) *lambda.Response {
	headers := baseHeaders()
	headers["Content-Type"] = "application/json"

	payload, err := json.Marshal(body)
	if err != nil {
		statusCode = http.StatusInternalServerError
		payload = []byte(`{"error":"Internal server error: failed to marshal response"}`)
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       payload,
	}
}

func errorResponse(statusCode int, message string) *lambda.Response {
	return jsonResponse(statusCode, models.ErrorResponse{Error: message})
}

func successResponse(field, value string) *lambda.Response {
	return jsonResponse(http.StatusOK, models.SuccessResponse{field: value})
}
