// Command proxy is the combined Lambda serving every proxy route by path.
package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/pkg/server"
)

func main() {
	awslambda.Start(server.LambdaHandler("", config.GetOptimizedConfig, nil))
}
