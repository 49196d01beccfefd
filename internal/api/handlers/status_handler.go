package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stayview/revgrid/backend-go/internal/domain"
	"github.com/stayview/revgrid/backend-go/internal/service"
)

const dateLayout = "2006-01-02"

type StatusHandler struct {
	status *service.StatusService
	grid   *service.GridService
}

func NewStatusHandler(status *service.StatusService, grid *service.GridService) *StatusHandler {
	return &StatusHandler{status: status, grid: grid}
}

// GetStatus classifies one cell.
// GET /api/v1/grid/status?room_type=Suite&date=2026-09-12&inventory=3&capacity=18
func (h *StatusHandler) GetStatus(c *gin.Context) {
	roomType := strings.TrimSpace(c.Query("room_type"))
	dateStr := strings.TrimSpace(c.Query("date"))
	if roomType == "" || dateStr == "" {
		errorResponse(c, http.StatusBadRequest, "room_type and date are required")
		return
	}
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		errorResponse(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	inventory, err := strconv.Atoi(c.DefaultQuery("inventory", "0"))
	if err != nil || inventory < 0 {
		errorResponse(c, http.StatusBadRequest, "inventory must be a non-negative integer")
		return
	}

	capacity := 0
	if raw := c.Query("capacity"); raw != "" {
		if capacity, err = strconv.Atoi(raw); err != nil {
			errorResponse(c, http.StatusBadRequest, "capacity must be an integer")
			return
		}
	}

	status := h.status.GetStatus(c.Request.Context(), roomType, dateStr, inventory, capacity)
	c.JSON(http.StatusOK, status)
}

// Precompute warms the cache for a batch of cells ahead of a grid render.
// POST /api/v1/grid/precompute
func (h *StatusHandler) Precompute(c *gin.Context) {
	var req struct {
		Cells []domain.Cell `json:"cells"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid precompute payload: "+err.Error())
		return
	}
	if len(req.Cells) == 0 {
		c.JSON(http.StatusOK, gin.H{"processed": 0})
		return
	}

	processed, err := h.grid.PrecomputeRange(c.Request.Context(), req.Cells)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "precompute aborted: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

// UpdateInventory is the write path for an inventory change: evicts the
// stale memoized status for the old value and returns the fresh one.
// PUT /api/v1/grid/inventory
func (h *StatusHandler) UpdateInventory(c *gin.Context) {
	var req struct {
		RoomType     string `json:"room_type"`
		Date         string `json:"date"`
		OldInventory int    `json:"old_inventory"`
		NewInventory int    `json:"new_inventory"`
		Capacity     int    `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid inventory payload: "+err.Error())
		return
	}
	if strings.TrimSpace(req.RoomType) == "" || strings.TrimSpace(req.Date) == "" {
		errorResponse(c, http.StatusBadRequest, "room_type and date are required")
		return
	}
	if req.NewInventory < 0 {
		errorResponse(c, http.StatusBadRequest, "new_inventory must be non-negative")
		return
	}

	status := h.status.UpdateInventory(c.Request.Context(), req.RoomType, req.Date, req.OldInventory, req.NewInventory, req.Capacity)
	c.JSON(http.StatusOK, status)
}
