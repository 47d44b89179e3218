// internal/app/store/admin/adminstore.go
package adminstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hbcybertech/clubhub/internal/app/system/passgen"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RotationWindow is how long admin credentials stay fixed. Rotation is
// lazy: it happens on the first sign-in attempt after the window has
// elapsed, not on a timer.
const RotationWindow = 6 * time.Hour

// ErrMissing means the singleton admin record does not exist. The
// record is seeded at startup, so hitting this at request time is an
// operational fault, not a client error.
var ErrMissing = errors.New("admin record missing")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("Admin")}
}

// Get returns the singleton admin record.
func (s *Store) Get(ctx context.Context) (models.Admin, error) {
	var admin models.Admin
	err := s.c.FindOne(ctx, bson.M{}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Admin{}, ErrMissing
		}
		return models.Admin{}, err
	}
	return admin, nil
}

// Seed creates the singleton admin record with fresh credentials if it
// does not exist yet. Returns the record either way.
func (s *Store) Seed(ctx context.Context) (models.Admin, error) {
	admin, err := s.Get(ctx)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, ErrMissing) {
		return models.Admin{}, err
	}

	admin = models.Admin{
		ID:        primitive.NewObjectID(),
		Token:     uuid.NewString(),
		Password:  passgen.NewAdminPassword(),
		LastReset: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, admin); err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

// NeedsRotation reports whether the credentials have outlived the
// rotation window.
func NeedsRotation(admin models.Admin, now time.Time) bool {
	return now.Sub(admin.LastReset) > RotationWindow
}

// Rotate replaces the admin password, token and reset timestamp in a
// single $set and returns the post-rotation record. Two concurrent
// sign-ins past the window can both rotate; the later write wins.
func (s *Store) Rotate(ctx context.Context, id primitive.ObjectID, now time.Time) (models.Admin, error) {
	set := bson.M{
		"token":      uuid.NewString(),
		"password":   passgen.NewAdminPassword(),
		"last_reset": now.UTC(),
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return models.Admin{}, err
	}
	if res.MatchedCount == 0 {
		return models.Admin{}, ErrMissing
	}
	return s.Get(ctx)
}
