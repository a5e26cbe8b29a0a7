package workspaceRepo

import (
	"context"

	"campusbook/models"
)

// WorkspaceRepository reads the workspace catalogue backing scope selection.
type WorkspaceRepository interface {
	ListWorkspaces(ctx context.Context) ([]models.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id int) (*models.Workspace, error)
}
