// Package serverless adapts API Gateway proxy events to the gin router.
package serverless

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

// Handler is the Lambda entry point signature.
type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewHandler wraps r. Each invocation is translated to an http.Request,
// served by r and returned as-is.
func NewHandler(r *gin.Engine) Handler {
	adapter := ginadapter.New(r)
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	}
}
