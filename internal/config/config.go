package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment  string
	Port         string
	MaxBodyBytes int64
	Logging      LoggingConfig
	Upstream     UpstreamConfig
	Gemini       GeminiConfig
	Imagen       ImagenConfig
	Routes       RoutesConfig
}

// LoggingConfig holds log output configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// UpstreamConfig holds settings shared by all upstream calls
type UpstreamConfig struct {
	// Timeout of zero leaves the deadline to the hosting platform.
	Timeout time.Duration
}

// GeminiConfig holds the Gemini generateContent integration settings.
// StyleAdviceModel backs the style advice handler, ImageEditModel the image edit handler.
type GeminiConfig struct {
	APIKey           string
	EndpointTemplate string
	StyleAdviceModel string
	ImageEditModel   string
}

// ImagenConfig holds the Vertex AI Imagen predict integration settings
type ImagenConfig struct {
	APIKey           string
	ProjectID        string
	Location         string
	Model            string
	EndpointTemplate string
}

// MissingSetting returns the name of the first required setting that is empty, or ""
func (g GeminiConfig) MissingSetting() string {
	if g.APIKey == "" {
		return "GEMINI_API_KEY"
	}
	return ""
}

// MissingSetting returns the name of the first required setting that is empty, or ""
func (i ImagenConfig) MissingSetting() string {
	switch {
	case i.APIKey == "":
		return "IMAGEN_API_KEY"
	case i.ProjectID == "":
		return "IMAGEN_PROJECT_ID"
	}
	return ""
}

// RoutesConfig holds the HTTP path of each handler
type RoutesConfig struct {
	StyleAdvice string
	ImageEdit   string
	ImagenEdit  string
}

const (
	DefaultGeminiEndpointTemplate = "https://generativelanguage.googleapis.com/v1beta/models/{model}:generateContent?key={key}"
	DefaultImagenEndpointTemplate = "https://{location}-aiplatform.googleapis.com/v1/projects/{project}/locations/{location}/publishers/google/models/{model}:predict?key={key}"
)

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("MAX_BODY_BYTES", 10*1024*1024)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")
	v.SetDefault("GEMINI_ENDPOINT_TEMPLATE", DefaultGeminiEndpointTemplate)
	v.SetDefault("STYLE_ADVICE_MODEL", "gemini-2.0-flash")
	v.SetDefault("IMAGE_EDIT_MODEL", "gemini-2.0-flash-preview-image-generation")
	v.SetDefault("IMAGEN_ENDPOINT_TEMPLATE", DefaultImagenEndpointTemplate)
	v.SetDefault("IMAGEN_MODEL", "imagegeneration@006")
	v.SetDefault("IMAGEN_LOCATION", "us-central1")
	v.SetDefault("STYLE_ADVICE_PATH", "/api/style-advice")
	v.SetDefault("IMAGE_EDIT_PATH", "/api/edit-image")
	v.SetDefault("IMAGEN_EDIT_PATH", "/api/imagen-edit")

	timeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	geminiKey := strings.TrimSpace(v.GetString("GEMINI_API_KEY"))
	imagenKey := strings.TrimSpace(v.GetString("IMAGEN_API_KEY"))
	if imagenKey == "" {
		imagenKey = geminiKey
	}

	config := &Config{
		Environment:  v.GetString("ENVIRONMENT"),
		Port:         v.GetString("PORT"),
		MaxBodyBytes: v.GetInt64("MAX_BODY_BYTES"),
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Upstream: UpstreamConfig{
			Timeout: timeout,
		},
		Gemini: GeminiConfig{
			APIKey:           geminiKey,
			EndpointTemplate: v.GetString("GEMINI_ENDPOINT_TEMPLATE"),
			StyleAdviceModel: v.GetString("STYLE_ADVICE_MODEL"),
			ImageEditModel:   v.GetString("IMAGE_EDIT_MODEL"),
		},
		Imagen: ImagenConfig{
			APIKey:           imagenKey,
			ProjectID:        strings.TrimSpace(v.GetString("IMAGEN_PROJECT_ID")),
			Location:         v.GetString("IMAGEN_LOCATION"),
			Model:            v.GetString("IMAGEN_MODEL"),
			EndpointTemplate: v.GetString("IMAGEN_ENDPOINT_TEMPLATE"),
		},
		Routes: RoutesConfig{
			StyleAdvice: v.GetString("STYLE_ADVICE_PATH"),
			ImageEdit:   v.GetString("IMAGE_EDIT_PATH"),
			ImagenEdit:  v.GetString("IMAGEN_EDIT_PATH"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
