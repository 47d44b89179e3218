// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeneralMember is a general membership application form.
//
// The (FullName, Email) pair is unique per collection; uniqueness is
// enforced by a pre-insert existence check rather than an index.
type GeneralMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"full_name" json:"full_name"`
	Email       string             `bson:"email" json:"email"`
	Grade       int                `bson:"grade" json:"grade"`
	Skills      int                `bson:"skills" json:"skills"`
	Extra       string             `bson:"extra" json:"extra"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
}

// ExecutiveMember is an executive membership application form.
type ExecutiveMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"full_name" json:"full_name"`
	Email       string             `bson:"email" json:"email"`
	Grade       int                `bson:"grade" json:"grade"`
	ExecType    string             `bson:"exec_type" json:"exec_type"`
	Why         string             `bson:"why" json:"why"`
	Experience  string             `bson:"experience" json:"experience"`
	Portfolio   string             `bson:"portfolio" json:"portfolio"`
	Extra       string             `bson:"extra" json:"extra"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
}
