package server

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/handlers"
	"eyewear-ai-proxy/internal/services"
	"eyewear-ai-proxy/internal/upstream"
	"eyewear-ai-proxy/pkg/lambda"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Services *services.ServiceContainer
	Router   *handlers.Router
}

// NewContainer creates a new dependency injection container.
// doer may be nil to use a default HTTP client for upstream calls.
func NewContainer(cfg *config.Config, doer upstream.Doer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	serviceContainer, err := services.NewServiceContainer(cfg, doer)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service container: %w", err)
	}

	return &Container{
		Config:   cfg,
		Services: serviceContainer,
		Router:   handlers.NewRouter(cfg, serviceContainer),
	}, nil
}

// RouterFor returns a router that sends every path to the named proxy handler,
// or the combined router when name is empty.
func (c *Container) RouterFor(name string) (*handlers.Router, error) {
	var service services.ProxyService
	switch name {
	case "":
		return c.Router, nil
	case services.StyleAdviceName:
		service = c.Services.StyleAdviceService
	case services.ImageEditName:
		service = c.Services.ImageEditService
	case services.ImagenEditName:
		service = c.Services.ImagenEditService
	default:
		return nil, fmt.Errorf("unknown handler %q", name)
	}
	return handlers.NewSingleRouter(handlers.NewProxyHandler(service)), nil
}

// LoadFunc loads the configuration for one invocation
type LoadFunc func() (*config.Config, error)

// LambdaHandler returns an API Gateway proxy handler for the named proxy handler
// (empty name serves all routes). Configuration and logging settings are loaded on
// every invocation so credential changes apply without a cold start. OPTIONS and
// non-POST requests are answered before configuration is touched.
func LambdaHandler(name string, load LoadFunc, doer upstream.Doer) func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	route := func(ctx context.Context, req *lambda.Request) *lambda.Response {
		if resp := handlers.MethodGate(req); resp != nil {
			return resp
		}

		logger := logrus.WithFields(config.GetServerlessConfig().LogFields()).WithField("request_id", req.RequestID)

		cfg, err := load()
		if err != nil {
			logger.WithError(err).Error("Failed to load configuration")
			return handlers.ConfigurationErrorResponse(req, err)
		}
		config.SetupLogging(cfg.Logging)

		container, err := NewContainer(cfg, doer)
		if err != nil {
			logger.WithError(err).Error("Failed to initialize container")
			return handlers.ConfigurationErrorResponse(req, err)
		}

		router, err := container.RouterFor(name)
		if err != nil {
			logger.WithError(err).Error("Unknown handler")
			return handlers.ConfigurationErrorResponse(req, err)
		}

		logger.WithField("handler", name).Debug("Invocation configured")
		return router.Route(ctx, req)
	}

	return lambda.Adapt(route, handlers.DecodeErrorResponse)
}
