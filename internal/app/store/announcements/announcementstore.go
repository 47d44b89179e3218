// internal/app/store/announcements/announcementstore.go
package announcementstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("announcement not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("Announcements")}
}

// Insert stores a new announcement.
func (s *Store) Insert(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// FindPaginated returns one page of announcements, newest first within
// the page.
func (s *Store) FindPaginated(ctx context.Context, args paging.Args) ([]models.Announcement, error) {
	filter := bson.M{}
	if args.Search != "" {
		field := args.Field
		if field != "title" && field != "body" {
			field = "title"
		}
		filter[field] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(args.Search),
			Options: "i",
		}}
	}

	opts := options.Find().SetSkip(args.Skip()).SetLimit(args.Limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var anns []models.Announcement
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	paging.SortNewestFirst(anns, func(a models.Announcement) time.Time { return a.DateCreated })
	return anns, nil
}

// Count returns the total number of announcements.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Delete removes an announcement by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
