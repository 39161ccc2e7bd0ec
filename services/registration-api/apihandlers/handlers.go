package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/registration"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	registrationService *registration.Service
}

func NewHTTPHandler(
	registrationService *registration.Service,
) *HttpEndpoints {
	return &HttpEndpoints{
		registrationService: registrationService,
	}
}
