package workspaceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusbook/config"
	"campusbook/database"
	"campusbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrWorkspaceNotFound is returned when no workspace has the requested id.
var ErrWorkspaceNotFound = errors.New("workspace not found")

type MongoWorkspaceRepo struct {
	coll *mongo.Collection
}

func NewMongoWorkspaceRepo() WorkspaceRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("workspaces")
	return &MongoWorkspaceRepo{coll: coll}
}

func (r *MongoWorkspaceRepo) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"id_workspace": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer cursor.Close(ctx)

	var workspaces []models.Workspace
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to decode workspaces: %w", err)
	}
	return workspaces, nil
}

func (r *MongoWorkspaceRepo) GetWorkspaceByID(ctx context.Context, id int) (*models.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ws models.Workspace
	err := r.coll.FindOne(ctx, bson.M{"id_workspace": id}).Decode(&ws)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workspace %d: %w", id, err)
	}
	return &ws, nil
}
