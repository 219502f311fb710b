package handlers

import (
	"net/http"

	"nailbar/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the latest dependency health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
