package models

// ImagenRequest is the Vertex AI predict request body for Imagen models
type ImagenRequest struct {
	Instances  []ImagenInstance `json:"instances"`
	Parameters ImagenParameters `json:"parameters"`
}

type ImagenInstance struct {
	Prompt string       `json:"prompt"`
	Image  *ImagenImage `json:"image,omitempty"`
}

type ImagenImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType,omitempty"`
}

type ImagenParameters struct {
	SampleCount   int    `json:"sampleCount"`
	SafetySetting string `json:"safetySetting,omitempty"`
}

// ImagenSafetyBlockMediumAndAbove is the Imagen spelling of the Gemini threshold
const ImagenSafetyBlockMediumAndAbove = "block_medium_and_above"

// ImagenResponse is the Vertex AI predict response body
type ImagenResponse struct {
	Predictions []ImagenPrediction `json:"predictions"`
}

type ImagenPrediction struct {
	MimeType           string `json:"mimeType,omitempty"`
	BytesBase64Encoded string `json:"bytesBase64Encoded,omitempty"`
}
