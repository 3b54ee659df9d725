package services

import (
	"encoding/json"
	"fmt"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/models"
	"eyewear-ai-proxy/internal/upstream"
)

const (
	StyleAdviceName = "style-advice"
	ImageEditName   = "edit-image"

	geminiVendor = "Gemini"
)

const styleAdvicePrompt = `You are a friendly, expert eyewear stylist. Look at the face in this photo and explain how %q glasses would suit this person. ` +
	`Comment on face shape, frame size and proportions, colours that would flatter them, and one alternative style worth trying. ` +
	`Answer in a few short paragraphs of plain text.`

// NewStyleAdviceService returns the pipeline that asks Gemini for text advice on a glasses style
func NewStyleAdviceService(cfg *config.Config, client *upstream.Client) *Pipeline {
	return NewPipeline(Integration{
		Name:         StyleAdviceName,
		Vendor:       geminiVendor,
		SuccessField: "styleAdvice",
		PayloadName:  "style advice text",
		StyleAlias:   true,
		Endpoint:     geminiEndpoint(StyleAdviceName, cfg.Gemini, cfg.Gemini.StyleAdviceModel),
		Payload:      buildStyleAdvicePayload,
		Extract:      extractCandidateText,
	}, client)
}

// NewImageEditService returns the pipeline that asks a Gemini image model to edit the photo
func NewImageEditService(cfg *config.Config, client *upstream.Client) *Pipeline {
	return NewPipeline(Integration{
		Name:         ImageEditName,
		Vendor:       geminiVendor,
		SuccessField: "newImageBase64",
		PayloadName:  "image data",
		Endpoint:     geminiEndpoint(ImageEditName, cfg.Gemini, cfg.Gemini.ImageEditModel),
		Payload:      buildImageEditPayload,
		Extract:      extractCandidateInlineData,
	}, client)
}

func geminiEndpoint(op string, gemini config.GeminiConfig, model string) EndpointBuilder {
	return func() (string, error) {
		if missing := gemini.MissingSetting(); missing != "" {
			return "", NewConfigurationError(op, missing)
		}
		return ExpandEndpoint(gemini.EndpointTemplate, EndpointParams{
			Model: model,
			Key:   gemini.APIKey,
		}), nil
	}
}

func geminiImageContent(text string, req *models.InboundRequest) []models.GeminiContent {
	return []models.GeminiContent{
		{
			Role: "user",
			Parts: []models.GeminiPart{
				{Text: text},
				{InlineData: &models.GeminiInlineData{
					MimeType: req.MimeType,
					Data:     req.ImageBase64,
				}},
			},
		},
	}
}

func buildStyleAdvicePayload(req *models.InboundRequest) (interface{}, error) {
	return &models.GeminiRequest{
		Contents:       geminiImageContent(fmt.Sprintf(styleAdvicePrompt, req.Prompt), req),
		SafetySettings: models.DefaultSafetySettings(),
	}, nil
}

func buildImageEditPayload(req *models.InboundRequest) (interface{}, error) {
	return &models.GeminiRequest{
		Contents:       geminiImageContent(req.Prompt, req),
		SafetySettings: models.DefaultSafetySettings(),
		GenerationConfig: &models.GeminiGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}, nil
}

// extractCandidateText reads candidates[0].content.parts[0].text
func extractCandidateText(body []byte) (string, bool, error) {
	var resp models.GeminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", false, nil
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	return text, text != "", nil
}

// extractCandidateInlineData returns the first part of candidates[0] carrying inline data
func extractCandidateInlineData(body []byte) (string, bool, error) {
	var resp models.GeminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false, err
	}

	if len(resp.Candidates) == 0 {
		return "", false, nil
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if inline := part.Inline(); inline != nil && inline.Data != "" {
			return inline.Data, true, nil
		}
	}
	return "", false, nil
}
