// internal/domain/models/resource.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Resource is a curated external link shown on the resources page.
type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Link        string             `bson:"link" json:"link"`
	Tags        []string           `bson:"tags" json:"tags"`
	Description string             `bson:"description" json:"description"`
}
