// internal/domain/models/announcement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a club-wide notice. Author is always the system
// identity ("The Team") and only admins create or delete them.
type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author      string             `bson:"author" json:"author"`
	Email       string             `bson:"email" json:"email"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
	Title       string             `bson:"title" json:"title"`
	Body        string             `bson:"body" json:"body"`
}
