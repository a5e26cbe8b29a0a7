package models

// Workspace is a bookable university space as published by the catalogue.
type Workspace struct {
	IDWorkspace  int      `bson:"id_workspace" json:"id_workspace"`
	Name         string   `bson:"name" json:"name"`
	SpaceType    string   `bson:"space_type" json:"space_type"`
	Description  string   `bson:"description" json:"description"`
	MaxOccupancy int      `bson:"max_occupancy" json:"max_occupancy"`
	Image        string   `bson:"image" json:"image"`
	Resources    []string `bson:"resources" json:"resources"`
}
