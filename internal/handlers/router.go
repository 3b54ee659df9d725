package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/metrics"
	"eyewear-ai-proxy/internal/services"
	"eyewear-ai-proxy/pkg/lambda"
)

// handler label for requests that never reached a proxy handler
const unroutedHandler = "unrouted"

// Router dispatches requests to proxy handlers by path and wraps every
// response with CORS headers, the request ID and panic recovery.
type Router struct {
	routes   map[string]*ProxyHandler
	fallback *ProxyHandler
}

// NewRouter creates a router serving all three proxy handlers on their configured paths
func NewRouter(cfg *config.Config, container *services.ServiceContainer) *Router {
	r := &Router{routes: make(map[string]*ProxyHandler)}
	r.Register(cfg.Routes.StyleAdvice, NewProxyHandler(container.StyleAdviceService))
	r.Register(cfg.Routes.ImageEdit, NewProxyHandler(container.ImageEditService))
	r.Register(cfg.Routes.ImagenEdit, NewProxyHandler(container.ImagenEditService))
	return r
}

// NewSingleRouter creates a router that sends every path to handler.
// Used by the per-handler Lambda functions, whose path is owned by API Gateway.
func NewSingleRouter(handler *ProxyHandler) *Router {
	return &Router{
		routes:   make(map[string]*ProxyHandler),
		fallback: handler,
	}
}

// Register adds handler on path. An empty path is ignored.
func (r *Router) Register(path string, handler *ProxyHandler) {
	path = normalizePath(path)
	if path == "" {
		return
	}
	r.routes[path] = handler
}

// Paths returns the registered paths
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for path := range r.routes {
		paths = append(paths, path)
	}
	return paths
}

func (r *Router) lookup(path string) (*ProxyHandler, bool) {
	if handler, ok := r.routes[normalizePath(path)]; ok {
		return handler, true
	}
	if r.fallback != nil {
		return r.fallback, true
	}
	return nil, false
}

// Route handles one request. It never returns nil and never panics.
func (r *Router) Route(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	name := unroutedHandler

	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithFields(logrus.Fields{
				"handler":    name,
				"request_id": req.RequestID,
				"panic":      rec,
			}).Error("Recovered from panic while handling request")
			resp = errorResponse(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", rec))
		}
		finish(name, req, resp)
	}()

	if req.Method == http.MethodOptions {
		return preflightResponse()
	}

	handler, ok := r.lookup(req.Path)
	if !ok || req.Method != http.MethodPost {
		if ok {
			name = handler.Name()
		}
		return errorResponse(http.StatusMethodNotAllowed, "Method Not Allowed")
	}
	name = handler.Name()

	if req.RequestID != "" {
		ctx = services.WithRequestID(ctx, req.RequestID)
	}
	return handler.Handle(ctx, req)
}

// DecodeErrorResponse is returned when the platform event itself cannot be decoded
func DecodeErrorResponse(err error) *lambda.Response {
	resp := errorResponse(http.StatusBadRequest, "Invalid request body: "+err.Error())
	metrics.ObserveResponse(unroutedHandler, resp.StatusCode)
	return resp
}

func finish(name string, req *lambda.Request, resp *lambda.Response) {
	if req.RequestID != "" {
		resp.Headers["X-Request-ID"] = req.RequestID
	}
	metrics.ObserveResponse(name, resp.StatusCode)

	entry := logrus.WithFields(logrus.Fields{
		"handler":     name,
		"request_id":  req.RequestID,
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
	})
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		entry.WithField("error", string(resp.Body)).Error("Request failed")
	case resp.StatusCode >= http.StatusBadRequest:
		entry.WithField("error", string(resp.Body)).Warn("Request rejected")
	default:
		entry.Debug("Request completed")
	}
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// ConfigurationErrorResponse is returned when configuration cannot be loaded for an invocation
func ConfigurationErrorResponse(req *lambda.Request, err error) *lambda.Response {
	resp := errorResponse(http.StatusInternalServerError, "Server configuration error: "+err.Error())
	finish(unroutedHandler, req, resp)
	return resp
}

// MethodGate answers the requests whose outcome never depends on configuration:
// OPTIONS gets 204 and any method other than POST gets 405.
// It returns nil for POST, which must be routed.
func MethodGate(req *lambda.Request) *lambda.Response {
	var resp *lambda.Response
	switch req.Method {
	case http.MethodPost:
		return nil
	case http.MethodOptions:
		resp = preflightResponse()
	default:
		resp = errorResponse(http.StatusMethodNotAllowed, "Method Not Allowed")
	}
	finish(unroutedHandler, req, resp)
	return resp
}
