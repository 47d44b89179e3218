// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/hbcybertech/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAccount creates a verified test account with the given
// credentials. The stored password is the bcrypt hash of password.
func (f *Fixtures) CreateAccount(ctx context.Context, username, email, password string) models.Account {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		f.t.Fatalf("failed to hash password: %v", err)
	}
	acct := models.Account{
		ID:          primitive.NewObjectID(),
		Username:    username,
		Email:       email,
		Password:    string(hash),
		Verified:    true,
		DateCreated: time.Now().UTC(),
	}
	if _, err := f.db.Collection("Accounts").InsertOne(ctx, acct); err != nil {
		f.t.Fatalf("failed to create test account: %v", err)
	}
	return acct
}

// CreateAdmin creates the singleton admin record with known
// credentials and the given last reset time.
func (f *Fixtures) CreateAdmin(ctx context.Context, token, password string, lastReset time.Time) models.Admin {
	f.t.Helper()

	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Token:     token,
		Password:  password,
		LastReset: lastReset,
	}
	if _, err := f.db.Collection("Admin").InsertOne(ctx, admin); err != nil {
		f.t.Fatalf("failed to create test admin: %v", err)
	}
	return admin
}

// CreateForumPost creates a test forum post with an empty comment list.
func (f *Fixtures) CreateForumPost(ctx context.Context, author, email, title, body string) models.ForumPost {
	f.t.Helper()

	post := models.ForumPost{
		ID:          primitive.NewObjectID(),
		Author:      author,
		Email:       email,
		DateCreated: time.Now().UTC(),
		Title:       title,
		Body:        body,
		Comments:    []models.Comment{},
	}
	if _, err := f.db.Collection("ForumPosts").InsertOne(ctx, post); err != nil {
		f.t.Fatalf("failed to create test forum post: %v", err)
	}
	return post
}

// CreateGeneralMember creates a test general membership application.
func (f *Fixtures) CreateGeneralMember(ctx context.Context, fullName, email string) models.GeneralMember {
	f.t.Helper()

	m := models.GeneralMember{
		ID:          primitive.NewObjectID(),
		FullName:    fullName,
		Email:       email,
		Grade:       10,
		Skills:      50,
		DateCreated: time.Now().UTC(),
	}
	if _, err := f.db.Collection("GeneralMemberForms").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test general member: %v", err)
	}
	return m
}

// CreateAnnouncement creates a test announcement at the given time.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, title, body string, at time.Time) models.Announcement {
	f.t.Helper()

	a := models.Announcement{
		ID:          primitive.NewObjectID(),
		Author:      "The Team",
		Email:       "team@example.com",
		DateCreated: at,
		Title:       title,
		Body:        body,
	}
	if _, err := f.db.Collection("Announcements").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}
	return a
}
