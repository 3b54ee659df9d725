package services

import (
	"context"

	"eyewear-ai-proxy/internal/models"
)

// ProxyService turns a validated inbound request into the single string
// payload returned to the client under SuccessField.
type ProxyService interface {
	Name() string
	SuccessField() string
	AcceptsStyleAlias() bool
	Execute(ctx context.Context, req *models.InboundRequest) (string, error)
}

// EndpointBuilder returns the full upstream URL, credentials included,
// or a configuration error when a required setting is missing.
type EndpointBuilder func() (string, error)

// PayloadBuilder builds the vendor request body for one inbound request
type PayloadBuilder func(req *models.InboundRequest) (interface{}, error)

// ResponseExtractor pulls the payload out of a 2xx upstream body.
// found is false when the body parsed but the expected field is absent.
type ResponseExtractor func(body []byte) (value string, found bool, err error)

// Integration describes one upstream vendor call
type Integration struct {
	Name         string // Handler name used in logs and metrics
	Vendor       string // Vendor name used in client-facing error messages
	SuccessField string // JSON field of the success body
	PayloadName  string // What Extract looks for, used in the "could not find" message

	// StyleAlias lets glassesStyle stand in for prompt.
	StyleAlias bool

	Endpoint EndpointBuilder
	Payload  PayloadBuilder
	Extract  ResponseExtractor
}
