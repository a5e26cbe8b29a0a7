package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"campusbook/config"
	"campusbook/models"
	"campusbook/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "resv:"

// BookingHandler manages reservation sessions: the pending slot selection a
// user carries from the availability page to the confirmation step. The
// actual reservation write belongs to the external store.
type BookingHandler struct {
	Engine      availability.AvailabilityEngine
	CacheClient *redis.Client
	Logger      *zap.Logger
}

func NewBookingHandler(engine availability.AvailabilityEngine, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, CacheClient: cache, Logger: logger}
}

// StartSessionRequest captures the user's selection.
type StartSessionRequest struct {
	Date         string `json:"date" binding:"required"`
	Duration     int    `json:"duration" binding:"required"`
	WorkspaceIDs []int  `json:"workspaceIds"`
	AllSpaces    bool   `json:"allSpaces"`
	Slot         string `json:"slot" binding:"required"`
}

// StartSession handles POST /api/booking/session: caches the pending
// selection under a fresh session id with a short TTL.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	scope := models.ScopeOf(req.WorkspaceIDs...)
	if req.AllSpaces {
		scope = models.AllResources()
	}
	if scope.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "select at least one workspace or all spaces"})
		return
	}

	session := models.ReservationSession{
		Date:            req.Date,
		DurationMinutes: req.Duration,
		Scope:           scope,
		Slot:            req.Slot,
		CreatedAt:       time.Now(),
	}
	sessionData, err := json.Marshal(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal reservation session", "details": err.Error()})
		return
	}

	sessionID := uuid.New().String()
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	if err := h.CacheClient.Set(c.Request.Context(), sessionKeyPrefix+sessionID, sessionData, ttl).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cache reservation session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":      sessionID,
		"expiresMinutes": config.AppConfig.SessionTTLMinutes,
	})
}

// ConfirmSession handles POST /api/booking/session/:sessionID/confirm. It
// revalidates the selection against fresh commitment data; whatever the
// outcome the session is consumed, since a refused slot needs a new pick.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	ctx := c.Request.Context()

	sessionData, err := h.CacheClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation session not found or expired"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reservation session", "details": err.Error()})
		return
	}

	var session models.ReservationSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse reservation session", "details": err.Error()})
		return
	}

	result, err := h.Engine.RevalidateBeforeCommit(ctx, session.Date, session.DurationMinutes, session.Scope, session.Slot)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		case errors.Is(err, availability.ErrUpstreamFetchFailed):
			h.Logger.Error("commitment store unreachable during confirmation", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "commitment store unavailable", "details": err.Error()})
		default:
			h.Logger.Error("revalidation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revalidate reservation", "details": err.Error()})
		}
		return
	}

	h.CacheClient.Del(ctx, sessionKeyPrefix+sessionID)

	if !result.OK {
		c.JSON(http.StatusOK, gin.H{
			"ok":         false,
			"freshSlots": result.FreshSlots,
			"message":    "The selected time is no longer available. Pick another slot.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"reservation": session,
	})
}
