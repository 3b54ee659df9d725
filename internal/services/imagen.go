package services

import (
	"encoding/json"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/models"
	"eyewear-ai-proxy/internal/upstream"
)

const ImagenEditName = "imagen-edit"

// NewImagenEditService returns the pipeline that calls a Vertex AI Imagen model
func NewImagenEditService(cfg *config.Config, client *upstream.Client) *Pipeline {
	return NewPipeline(Integration{
		Name:         ImagenEditName,
		Vendor:       "Imagen",
		SuccessField: "newBase64",
		PayloadName:  "image bytes",
		Endpoint:     imagenEndpoint(cfg.Imagen),
		Payload:      buildImagenPayload,
		Extract:      extractPredictionBytes,
	}, client)
}

func imagenEndpoint(imagen config.ImagenConfig) EndpointBuilder {
	return func() (string, error) {
		if missing := imagen.MissingSetting(); missing != "" {
			return "", NewConfigurationError(ImagenEditName, missing)
		}
		return ExpandEndpoint(imagen.EndpointTemplate, EndpointParams{
			Model:    imagen.Model,
			Key:      imagen.APIKey,
			Project:  imagen.ProjectID,
			Location: imagen.Location,
		}), nil
	}
}

func buildImagenPayload(req *models.InboundRequest) (interface{}, error) {
	return &models.ImagenRequest{
		Instances: []models.ImagenInstance{
			{
				Prompt: req.Prompt,
				Image: &models.ImagenImage{
					BytesBase64Encoded: req.ImageBase64,
					MimeType:           req.MimeType,
				},
			},
		},
		Parameters: models.ImagenParameters{
			SampleCount:   1,
			SafetySetting: models.ImagenSafetyBlockMediumAndAbove,
		},
	}, nil
}

// extractPredictionBytes reads predictions[0].bytesBase64Encoded
func extractPredictionBytes(body []byte) (string, bool, error) {
	var resp models.ImagenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false, err
	}

	if len(resp.Predictions) == 0 {
		return "", false, nil
	}

	data := resp.Predictions[0].BytesBase64Encoded
	return data, data != "", nil
}
