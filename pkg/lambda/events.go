package lambda

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// FromAPIGateway converts an API Gateway proxy event to a generic request.
// Base64-encoded bodies are decoded; the gateway request ID is reused when present.
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 request body: %w", err)
		}
		body = decoded
	}

	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &Request{
		Method:    event.HTTPMethod,
		Path:      event.Path,
		Headers:   event.Headers,
		Body:      body,
		RequestID: requestID,
	}, nil
}

// ToAPIGateway converts a generic response to an API Gateway proxy response
func ToAPIGateway(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// Adapt wraps a HandlerFunc into an API Gateway proxy handler suitable for lambda.Start
func Adapt(handler HandlerFunc, onDecodeError func(err error) *Response) func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := FromAPIGateway(event)
		if err != nil {
			return ToAPIGateway(onDecodeError(err)), nil
		}
		return ToAPIGateway(handler(ctx, req)), nil
	}
}
