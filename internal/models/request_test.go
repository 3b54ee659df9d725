package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboundRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		req        InboundRequest
		styleAlias bool
		wantFields []string
	}{
		{
			name: "all fields present",
			req:  InboundRequest{ImageBase64: "AAAA", MimeType: "image/png", Prompt: "aviator"},
		},
		{
			name:       "everything missing",
			req:        InboundRequest{},
			wantFields: []string{"imageBase64", "mimeType", "prompt"},
		},
		{
			name:       "whitespace only counts as missing",
			req:        InboundRequest{ImageBase64: "AAAA", MimeType: "  ", Prompt: "aviator"},
			wantFields: []string{"mimeType"},
		},
		{
			name:       "glasses style fills prompt when alias accepted",
			req:        InboundRequest{ImageBase64: "AAAA", MimeType: "image/png", GlassesStyle: "cat-eye"},
			styleAlias: true,
		},
		{
			name:       "glasses style ignored without alias",
			req:        InboundRequest{ImageBase64: "AAAA", MimeType: "image/png", GlassesStyle: "cat-eye"},
			wantFields: []string{"prompt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Normalize(tt.styleAlias)
			err := req.Validate()

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantFields, validationErr.Fields)
			for _, field := range tt.wantFields {
				assert.Contains(t, validationErr.Error(), field)
			}
		})
	}
}

func TestNormalizePrefersPrompt(t *testing.T) {
	req := InboundRequest{Prompt: " round ", GlassesStyle: "square"}
	req.Normalize(true)
	assert.Equal(t, "round", req.Prompt)
}

func TestDefaultSafetySettings(t *testing.T) {
	settings := DefaultSafetySettings()
	require.Len(t, settings, 4)
	for _, setting := range settings {
		assert.Equal(t, BlockMediumAndAbove, setting.Threshold)
	}
}

func TestGeminiPartInlineAcceptsBothKeys(t *testing.T) {
	var parts []GeminiPart
	body := `[{"inlineData":{"mimeType":"image/png","data":"camel"}},{"inline_data":{"mime_type":"image/png","data":"snake"}},{"text":"hi"}]`
	require.NoError(t, json.Unmarshal([]byte(body), &parts))

	require.NotNil(t, parts[0].Inline())
	assert.Equal(t, "camel", parts[0].Inline().Data)
	require.NotNil(t, parts[1].Inline())
	assert.Equal(t, "snake", parts[1].Inline().Data)
	assert.Nil(t, parts[2].Inline())
}
