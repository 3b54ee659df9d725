package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"eyewear-ai-proxy/internal/metrics"
	"eyewear-ai-proxy/internal/models"
	"eyewear-ai-proxy/internal/upstream"
)

// Pipeline runs one Integration: endpoint, payload, single upstream call, extraction
type Pipeline struct {
	integration Integration
	client      *upstream.Client
}

var _ ProxyService = (*Pipeline)(nil)

// NewPipeline creates a pipeline for integration using client for the upstream call
func NewPipeline(integration Integration, client *upstream.Client) *Pipeline {
	return &Pipeline{
		integration: integration,
		client:      client,
	}
}

func (p *Pipeline) Name() string            { return p.integration.Name }
func (p *Pipeline) SuccessField() string    { return p.integration.SuccessField }
func (p *Pipeline) AcceptsStyleAlias() bool { return p.integration.StyleAlias }

// Execute performs the upstream call for req and returns the extracted payload
func (p *Pipeline) Execute(ctx context.Context, req *models.InboundRequest) (string, error) {
	in := p.integration

	// Resolved before anything else so a missing credential never costs a network call.
	endpoint, err := in.Endpoint()
	if err != nil {
		return "", err
	}

	payload, err := in.Payload(req)
	if err != nil {
		return "", NewClientInputError(in.Name, "Invalid request: "+err.Error(), err)
	}

	logger := logrus.WithFields(logrus.Fields{
		"handler":    in.Name,
		"request_id": RequestIDFromContext(ctx),
		"endpoint":   upstream.RedactURL(endpoint),
	})

	result, err := p.client.PostJSON(ctx, endpoint, payload)
	if err != nil {
		metrics.ObserveUpstream(in.Name, "transport_error", 0)
		logger.WithError(err).Error("Upstream request failed")
		return "", NewUpstreamError(in.Name, fmt.Sprintf("Failed to reach %s API: %v", in.Vendor, err), err)
	}

	logger = logger.WithFields(logrus.Fields{
		"status_code": result.StatusCode,
		"latency_ms":  float64(result.Latency.Nanoseconds()) / 1000000,
	})

	if !result.OK() {
		message := upstream.ErrorMessage(result.StatusCode, result.Body)
		metrics.ObserveUpstream(in.Name, "upstream_error", result.Latency)
		logger.WithField("upstream_message", message).Warn("Upstream returned an error status")
		return "", NewUpstreamError(in.Name, fmt.Sprintf("%s API error (status %d): %s", in.Vendor, result.StatusCode, message), nil)
	}

	value, found, err := in.Extract(result.Body)
	if err != nil {
		metrics.ObserveUpstream(in.Name, "contract_violation", result.Latency)
		logger.WithError(err).Error("Upstream response could not be parsed")
		return "", NewContractViolationError(in.Name, fmt.Sprintf("Failed to parse %s API response", in.Vendor), err)
	}
	if !found {
		metrics.ObserveUpstream(in.Name, "contract_violation", result.Latency)
		logger.Error("Upstream response is missing the expected payload")
		return "", NewContractViolationError(in.Name, fmt.Sprintf("Could not find %s in %s API response", in.PayloadName, in.Vendor), nil)
	}

	metrics.ObserveUpstream(in.Name, "ok", result.Latency)
	logger.Info("Upstream request completed")
	return value, nil
}
