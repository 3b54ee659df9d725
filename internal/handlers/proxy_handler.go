package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"eyewear-ai-proxy/internal/models"
	"eyewear-ai-proxy/internal/services"
	"eyewear-ai-proxy/pkg/lambda"
)

// ProxyHandler serves one proxy endpoint: decode, validate, call upstream, respond
type ProxyHandler struct {
	service services.ProxyService
}

// NewProxyHandler creates a new proxy handler for service
func NewProxyHandler(service services.ProxyService) *ProxyHandler {
	return &ProxyHandler{service: service}
}

// Name returns the handler name used in logs and metrics
func (h *ProxyHandler) Name() string {
	return h.service.Name()
}

// Handle processes a POST to a proxy endpoint.
// The router has already dealt with OPTIONS and wrong methods.
//
// @Summary Proxy an image and prompt to a generative AI API
// @Description Style advice returns {"styleAdvice"}, Gemini image edit returns {"newImageBase64"}, Imagen edit returns {"newBase64"}
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body models.InboundRequest true "Image and prompt"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 405 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /style-advice [post]
// @Router /edit-image [post]
// @Router /imagen-edit [post]
func (h *ProxyHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	var in models.InboundRequest
	if err := json.Unmarshal(req.Body, &in); err != nil {
		logrus.WithFields(logrus.Fields{
			"handler":    h.Name(),
			"request_id": req.RequestID,
			"error":      err.Error(),
		}).Debug("Rejected request body")
		return errorResponse(http.StatusBadRequest, "Invalid JSON in request body")
	}

	in.Normalize(h.service.AcceptsStyleAlias())
	if err := in.Validate(); err != nil {
		return errorResponse(http.StatusBadRequest, err.Error())
	}

	value, err := h.service.Execute(ctx, &in)
	if err != nil {
		return errorResponse(StatusForError(err), services.ClientMessage(err))
	}

	return successResponse(h.service.SuccessField(), value)
}
