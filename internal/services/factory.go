package services

import (
	"fmt"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/upstream"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	StyleAdviceService ProxyService
	ImageEditService   ProxyService
	ImagenEditService  ProxyService
}

// NewServiceContainer creates a new service container with all services.
// doer may be nil, in which case an *http.Client honouring cfg.Upstream.Timeout is used.
func NewServiceContainer(cfg *config.Config, doer upstream.Doer) (*ServiceContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	client := upstream.NewClient(doer, cfg.Upstream.Timeout)

	return &ServiceContainer{
		StyleAdviceService: NewStyleAdviceService(cfg, client),
		ImageEditService:   NewImageEditService(cfg, client),
		ImagenEditService:  NewImagenEditService(cfg, client),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.StyleAdviceService == nil {
		return fmt.Errorf("style advice service is nil")
	}
	if sc.ImageEditService == nil {
		return fmt.Errorf("image edit service is nil")
	}
	if sc.ImagenEditService == nil {
		return fmt.Errorf("imagen edit service is nil")
	}
	return nil
}
