// internal/domain/models/account.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a registered forum account.
//
// Password always holds the bcrypt hash, never the plaintext. Verified
// starts false and flips to true exactly once when the holder follows
// the emailed verification link; an unverified account can still sign
// in, verification only gates forum participation on the client side.
type Account struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Verified    bool               `bson:"verified" json:"verified"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
}
