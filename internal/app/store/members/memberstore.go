// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/hbcybertech/clubhub/internal/app/system/inputval"
	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicate = errors.New("an application with this name or email already exists")

// searchFilter builds the find filter shared by both application
// collections. Field values naming an exec type switch to a categorical
// match; otherwise Search is a case-insensitive substring on full_name
// or email.
func searchFilter(args paging.Args) bson.M {
	filter := bson.M{}
	switch {
	case inputval.IsExecType(args.Field):
		filter["exec_type"] = args.Field
	case args.Search != "":
		field := args.Field
		if field != "full_name" && field != "email" {
			field = "full_name"
		}
		filter[field] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(args.Search),
			Options: "i",
		}}
	}
	return filter
}

func existsNameOrEmail(ctx context.Context, c *mongo.Collection, fullName, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"full_name": fullName},
		bson.M{"email": email},
	}}
	n, err := c.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

// GeneralStore persists general membership applications.
type GeneralStore struct {
	c *mongo.Collection
}

func NewGeneral(db *mongo.Database) *GeneralStore {
	return &GeneralStore{c: db.Collection("GeneralMemberForms")}
}

// ExistsByNameOrEmail reports whether an application matches the given
// full name or email.
func (s *GeneralStore) ExistsByNameOrEmail(ctx context.Context, fullName, email string) (bool, error) {
	return existsNameOrEmail(ctx, s.c, fullName, email)
}

// Insert stores a new application after a duplicate check on full name
// and email. Check-then-insert; the race window is accepted.
func (s *GeneralStore) Insert(ctx context.Context, m models.GeneralMember) (models.GeneralMember, error) {
	dup, err := existsNameOrEmail(ctx, s.c, m.FullName, m.Email)
	if err != nil {
		return models.GeneralMember{}, err
	}
	if dup {
		return models.GeneralMember{}, ErrDuplicate
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.GeneralMember{}, err
	}
	return m, nil
}

// FindPaginated returns one page of applications, newest first within
// the page.
func (s *GeneralStore) FindPaginated(ctx context.Context, args paging.Args) ([]models.GeneralMember, error) {
	opts := options.Find().SetSkip(args.Skip()).SetLimit(args.Limit)
	cur, err := s.c.Find(ctx, searchFilter(args), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.GeneralMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	paging.SortNewestFirst(members, func(m models.GeneralMember) time.Time { return m.DateCreated })
	return members, nil
}

// Count returns the total number of applications.
func (s *GeneralStore) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Delete removes an application by id.
func (s *GeneralStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ExecutiveStore persists executive membership applications.
type ExecutiveStore struct {
	c *mongo.Collection
}

func NewExecutive(db *mongo.Database) *ExecutiveStore {
	return &ExecutiveStore{c: db.Collection("ExecutiveMemberForms")}
}

func (s *ExecutiveStore) ExistsByNameOrEmail(ctx context.Context, fullName, email string) (bool, error) {
	return existsNameOrEmail(ctx, s.c, fullName, email)
}

func (s *ExecutiveStore) Insert(ctx context.Context, m models.ExecutiveMember) (models.ExecutiveMember, error) {
	dup, err := existsNameOrEmail(ctx, s.c, m.FullName, m.Email)
	if err != nil {
		return models.ExecutiveMember{}, err
	}
	if dup {
		return models.ExecutiveMember{}, ErrDuplicate
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.ExecutiveMember{}, err
	}
	return m, nil
}

func (s *ExecutiveStore) FindPaginated(ctx context.Context, args paging.Args) ([]models.ExecutiveMember, error) {
	opts := options.Find().SetSkip(args.Skip()).SetLimit(args.Limit)
	cur, err := s.c.Find(ctx, searchFilter(args), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.ExecutiveMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	paging.SortNewestFirst(members, func(m models.ExecutiveMember) time.Time { return m.DateCreated })
	return members, nil
}

func (s *ExecutiveStore) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

func (s *ExecutiveStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
