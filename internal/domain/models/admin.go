// internal/domain/models/admin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is the singleton admin credential record.
//
// Token is an opaque rotating secret (a uuid string) that admin JWTs
// are bound to; Password is the rotating sign-in secret. Both are
// replaced together with LastReset when the rotation window elapses,
// so the collection only ever holds one document.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Token     string             `bson:"token" json:"-"`
	Password  string             `bson:"password" json:"-"`
	LastReset time.Time          `bson:"last_reset" json:"last_reset"`
}
