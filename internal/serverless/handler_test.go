package serverless

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/models"
	"fleetdesk/internal/routes"
	"fleetdesk/internal/store/storetest"
)

func TestHandlerServesRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(routes.SetupRouter(routes.Deps{Store: storetest.Open(t)}))
	ctx := context.Background()

	resp, err := h(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/health"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body)

	resp, err = h(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/api/companies",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"name":"Acme","phone":"555-0100"}`,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.Body)

	var body struct {
		Company models.Company `json:"company"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Acme", body.Company.Name)

	resp, err = h(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/nowhere"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
