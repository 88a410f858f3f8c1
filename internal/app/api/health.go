package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthResponse is the unauthenticated service status document. It is not
// part of the resource API and does not use the response envelope.
type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
}

func healthHandler(version, environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{
			Status:      "healthy",
			Timestamp:   time.Now().UTC(),
			Version:     version,
			Environment: environment,
		})
	}
}
