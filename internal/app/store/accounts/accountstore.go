// internal/app/store/accounts/accountstore.go
package accountstore

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

var (
	ErrDuplicate = errors.New("an account with this username or email already exists")
	ErrNotFound  = errors.New("account not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("Accounts")}
}

// ExistsByUsername reports whether an account with the given username exists.
func (s *Store) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	return n > 0, err
}

// ExistsByEmail reports whether an account with the given email exists.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	return n > 0, err
}

// ExistsDuplicate reports whether an account already uses the username
// or the email.
func (s *Store) ExistsDuplicate(ctx context.Context, acct models.Account) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": acct.Username},
		bson.M{"email": acct.Email},
	}}
	n, err := s.c.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

// Insert stores a new account after a duplicate check on username and
// email. The check and the insert are separate operations, so a
// concurrent signup with the same values can slip through; the window
// is accepted.
func (s *Store) Insert(ctx context.Context, acct models.Account) (models.Account, error) {
	dup, err := s.ExistsDuplicate(ctx, acct)
	if err != nil {
		return models.Account{}, err
	}
	if dup {
		return models.Account{}, ErrDuplicate
	}
	if acct.ID.IsZero() {
		acct.ID = primitive.NewObjectID()
	}
	if _, err := s.c.InsertOne(ctx, acct); err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// GetByEmail retrieves an account by email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&acct)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, err
	}
	return acct, nil
}

// Verify marks the account with the given id as verified.
func (s *Store) Verify(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"verified": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindPaginated returns one page of accounts. Field selects the search
// attribute; the values "verified" and "unverified" switch to a
// categorical filter instead of a substring match.
func (s *Store) FindPaginated(ctx context.Context, args paging.Args) ([]models.Account, error) {
	filter := bson.M{}
	switch {
	case args.Field == "verified":
		filter["verified"] = true
	case args.Field == "unverified":
		filter["verified"] = false
	case args.Search != "":
		field := args.Field
		if field != "username" && field != "email" {
			field = "username"
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

	var accounts []models.Account
	if err := cur.All(ctx, &accounts); err != nil {
		return nil, err
	}
	paging.SortNewestFirst(accounts, func(a models.Account) time.Time { return a.DateCreated })
	return accounts, nil
}

// Count returns the total number of accounts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Delete removes an account by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates indexes for the Accounts collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("idx_account_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_account_email"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
