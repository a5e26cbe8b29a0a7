package handlers

import (
	"errors"
	"net/http"
	"strconv"

	workspaceRepo "campusbook/database/repository/workspace"
	"campusbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkspaceHandler serves the workspace catalogue used to pick a scope.
type WorkspaceHandler struct {
	Repo   workspaceRepo.WorkspaceRepository
	Logger *zap.Logger
}

func NewWorkspaceHandler(repo workspaceRepo.WorkspaceRepository, logger *zap.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{Repo: repo, Logger: logger}
}

// ListWorkspacesHandler handles GET /api/workspaces.
func (h *WorkspaceHandler) ListWorkspacesHandler(c *gin.Context) {
	workspaces, err := h.Repo.ListWorkspaces(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list workspaces", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list workspaces", err.Error())
		return
	}
	c.JSON(http.StatusOK, workspaces)
}

// GetWorkspaceHandler handles GET /api/workspaces/:id.
func (h *WorkspaceHandler) GetWorkspaceHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id", "details": err.Error()})
		return
	}

	ws, err := h.Repo.GetWorkspaceByID(c.Request.Context(), id)
	if errors.Is(err, workspaceRepo.ErrWorkspaceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		return
	}
	if err != nil {
		h.Logger.Error("failed to fetch workspace", zap.Int("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch workspace", err.Error())
		return
	}
	c.JSON(http.StatusOK, ws)
}
