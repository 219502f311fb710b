package handlers

import (
	"net/http"

	"nailbar/services/catalogue"
	"nailbar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service catalogue endpoints.
type ServiceHandler struct {
	Svc catalogue.CatalogueService
}

func NewServiceHandler(svc catalogue.CatalogueService) *ServiceHandler {
	return &ServiceHandler{Svc: svc}
}

// ListServices returns the public menu of active services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListAllServices returns every service including deactivated ones.
func (h *ServiceHandler) ListAllServices(c *gin.Context) {
	services, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService adds a catalogue entry.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var input catalogue.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	getLogger(c).Info("service created", zap.String("serviceId", svc.ID), zap.String("name", svc.Name))
	c.JSON(http.StatusCreated, svc)
}

// UpdateService replaces a catalogue entry's writable fields.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")
	var input catalogue.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Svc.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService removes a catalogue entry.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
