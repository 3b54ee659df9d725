package models

// GeminiRequest is the generateContent request body
type GeminiRequest struct {
	Contents         []GeminiContent         `json:"contents"`
	SafetySettings   []GeminiSafetySetting   `json:"safetySettings,omitempty"`
	GenerationConfig *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart carries either text or inline base64 data.
// Responses may use the snake_case inline_data key, so both are decoded.
type GeminiPart struct {
	Text          string            `json:"text,omitempty"`
	InlineData    *GeminiInlineData `json:"inlineData,omitempty"`
	InlineDataAlt *GeminiInlineData `json:"inline_data,omitempty"`
}

type GeminiInlineData struct {
	MimeType    string `json:"mimeType,omitempty"`
	MimeTypeAlt string `json:"mime_type,omitempty"`
	Data        string `json:"data"`
}

// Inline returns the part's inline data under either key, or nil
func (p GeminiPart) Inline() *GeminiInlineData {
	if p.InlineData != nil {
		return p.InlineData
	}
	return p.InlineDataAlt
}

type GeminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type GeminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

// GeminiResponse is the subset of the generateContent response the proxy reads
type GeminiResponse struct {
	Candidates []struct {
		Content      GeminiContent `json:"content"`
		FinishReason string        `json:"finishReason,omitempty"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback,omitempty"`
}

// Harm categories and the threshold applied to each of them on every Gemini call
const (
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	BlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)

// DefaultSafetySettings returns the block-medium-and-above policy for all four harm categories
func DefaultSafetySettings() []GeminiSafetySetting {
	categories := []string{
		HarmCategoryHarassment,
		HarmCategoryHateSpeech,
		HarmCategorySexuallyExplicit,
		HarmCategoryDangerousContent,
	}

	settings := make([]GeminiSafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, GeminiSafetySetting{
			Category:  category,
			Threshold: BlockMediumAndAbove,
		})
	}
	return settings
}
