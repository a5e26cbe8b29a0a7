package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"campusbook/models"
	"campusbook/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the slot engine's query and revalidation
// operations over HTTP.
type AvailabilityHandler struct {
	Engine availability.AvailabilityEngine
	Logger *zap.Logger
}

func NewAvailabilityHandler(engine availability.AvailabilityEngine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// GetAvailableSlotsHandler handles
// GET /api/availability?date=2006-01-02&duration=60&workspaces=1,2&all=false&refresh=false
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: date"})
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration", "details": err.Error()})
		return
	}

	scope, err := parseScope(c.Query("workspaces"), c.Query("all") == "true")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspaces parameter", "details": err.Error()})
		return
	}

	forceRefresh := c.Query("refresh") == "true"

	slots, err := h.Engine.GetAvailableSlots(c.Request.Context(), date, duration, scope, forceRefresh)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"duration": duration,
		"scope":    scope.Signature(),
		"slots":    slots,
	})
}

// RevalidateRequest is the payload for the pre-commit availability check.
type RevalidateRequest struct {
	Date         string `json:"date" binding:"required"`
	Duration     int    `json:"duration" binding:"required"`
	WorkspaceIDs []int  `json:"workspaceIds"`
	AllSpaces    bool   `json:"allSpaces"`
	Slot         string `json:"slot" binding:"required"`
}

func (r RevalidateRequest) scope() models.ResourceScope {
	if r.AllSpaces {
		return models.AllResources()
	}
	return models.ScopeOf(r.WorkspaceIDs...)
}

// RevalidateHandler handles POST /api/availability/revalidate. A lost slot
// is reported with ok=false and the refreshed list, status 200: it is an
// expected outcome, not a failure.
func (h *AvailabilityHandler) RevalidateHandler(c *gin.Context) {
	var req RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Engine.RevalidateBeforeCommit(c.Request.Context(), req.Date, req.Duration, req.scope(), req.Slot)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AvailabilityHandler) respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
	case errors.Is(err, availability.ErrUpstreamFetchFailed):
		h.Logger.Error("commitment store unreachable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "commitment store unavailable", "details": err.Error()})
	default:
		h.Logger.Error("availability query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability", "details": err.Error()})
	}
}

// parseScope turns the "workspaces" CSV and "all" flag into a scope.
func parseScope(csv string, all bool) (models.ResourceScope, error) {
	if all {
		return models.AllResources(), nil
	}
	if csv == "" {
		return models.ResourceScope{}, nil
	}
	parts := strings.Split(csv, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return models.ResourceScope{}, err
		}
		ids = append(ids, id)
	}
	return models.ScopeOf(ids...), nil
}
