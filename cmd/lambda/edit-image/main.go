// Command edit-image is the Lambda serving Gemini image edits.
package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/services"
	"eyewear-ai-proxy/pkg/server"
)

func main() {
	awslambda.Start(server.LambdaHandler(services.ImageEditName, config.GetOptimizedConfig, nil))
}
