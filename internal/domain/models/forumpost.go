// internal/domain/models/forumpost.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ForumPost is a general-discussion post with its comments embedded.
//
// Comments have no collection of their own; they live and die inside
// the parent post document and are mutated by rewriting the whole
// comments field.
type ForumPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author      string             `bson:"author" json:"author"`
	Email       string             `bson:"email" json:"email"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
	Title       string             `bson:"title" json:"title"`
	Body        string             `bson:"body" json:"body"`
	Comments    []Comment          `bson:"comments" json:"comments"`
}

// Comment is an embedded forum comment. The ID exists only to address
// the comment inside its parent post's list.
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author      string             `bson:"author" json:"author"`
	Email       string             `bson:"email" json:"email"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
	Body        string             `bson:"body" json:"body"`
}
