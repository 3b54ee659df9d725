package models

import "strings"

// InboundRequest is the JSON body accepted by every proxy handler
type InboundRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
	MimeType    string `json:"mimeType" validate:"required"`
	Prompt      string `json:"prompt" validate:"required"`

	// GlassesStyle is the style advice handler's name for Prompt.
	GlassesStyle string `json:"glassesStyle,omitempty" validate:"-"`
}

// Normalize trims every field and, when acceptStyleAlias is set, fills an
// empty Prompt from GlassesStyle.
func (r *InboundRequest) Normalize(acceptStyleAlias bool) {
	r.ImageBase64 = strings.TrimSpace(r.ImageBase64)
	r.MimeType = strings.TrimSpace(r.MimeType)
	r.Prompt = strings.TrimSpace(r.Prompt)
	r.GlassesStyle = strings.TrimSpace(r.GlassesStyle)

	if acceptStyleAlias && r.Prompt == "" {
		r.Prompt = r.GlassesStyle
	}
}

// Validate checks that all required fields are present and non-empty
func (r *InboundRequest) Validate() error {
	return ValidateStruct(r)
}

// SuccessResponse is the body returned on success: a single field whose name depends on the handler
type SuccessResponse map[string]string

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}
