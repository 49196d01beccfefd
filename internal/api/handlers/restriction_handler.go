package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stayview/revgrid/backend-go/internal/restriction"
	"github.com/stayview/revgrid/backend-go/internal/service"
)

type RestrictionHandler struct {
	service *service.RestrictionService
}

func NewRestrictionHandler(svc *service.RestrictionService) *RestrictionHandler {
	return &RestrictionHandler{service: svc}
}

// List returns the current bulk-restriction catalog.
// GET /api/v1/restrictions
func (h *RestrictionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"restrictions": h.service.List()})
}

// ListTypes returns the static restriction-type catalog.
// GET /api/v1/restrictions/types
func (h *RestrictionHandler) ListTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": restriction.Types})
}

// Create registers a new bulk restriction.
// POST /api/v1/restrictions
func (h *RestrictionHandler) Create(c *gin.Context) {
	var input service.CreateRestrictionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid restriction payload: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Delete removes a bulk restriction by ID.
// DELETE /api/v1/restrictions/:id
func (h *RestrictionHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		errorResponse(c, http.StatusBadRequest, "restriction id is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// Resolve returns the applicable set, the priority winner, the closeout
// flag, and the cell style token for one grid cell.
// GET /api/v1/restrictions/resolve?room_type=Suite&rate_plan=BAR&date=2026-02-15
func (h *RestrictionHandler) Resolve(c *gin.Context) {
	roomType := strings.TrimSpace(c.Query("room_type"))
	ratePlan := strings.TrimSpace(c.Query("rate_plan"))
	dateStr := strings.TrimSpace(c.Query("date"))
	if roomType == "" || dateStr == "" {
		errorResponse(c, http.StatusBadRequest, "room_type and date are required")
		return
	}

	c.JSON(http.StatusOK, h.service.Resolve(roomType, ratePlan, dateStr))
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	log.Error().Msg(message)
	c.JSON(statusCode, gin.H{"error": message})
}
