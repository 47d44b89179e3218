package forumpoststore_test

import (
	"fmt"
	"testing"
	"time"

	forumpoststore "github.com/hbcybertech/clubhub/internal/app/store/forumposts"
	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"github.com/hbcybertech/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Insert_InitializesComments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post, err := store.Insert(ctx, models.ForumPost{
		Author:      "jsmith",
		Email:       "1234567@pdsb.net",
		DateCreated: time.Now().UTC(),
		Title:       "Hello all",
		Body:        "This is a long enough body for a forum post.",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Comments == nil {
		t.Error("expected comments to be an empty list, not nil")
	}
	if len(got.Comments) != 0 {
		t.Errorf("expected no comments, got %d", len(got.Comments))
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != forumpoststore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AppendComment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreateForumPost(ctx, "jsmith", "1234567@pdsb.net", "Hello all", "This is a long enough body for a forum post.")

	comment := models.Comment{
		Author:      "other",
		Email:       "7654321@pdsb.net",
		DateCreated: time.Now().UTC(),
		Body:        "This is a long enough comment body to pass.",
	}
	added, err := store.AppendComment(ctx, post.ID, comment)
	if err != nil {
		t.Fatalf("AppendComment failed: %v", err)
	}
	if added.ID == primitive.NilObjectID {
		t.Error("expected comment ID to be assigned")
	}

	got, err := store.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Comments) != 1 || got.Comments[0].Author != "other" {
		t.Errorf("comments after append = %v", got.Comments)
	}
}

func TestStore_AppendComment_UnknownPost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.AppendComment(ctx, primitive.NewObjectID(), models.Comment{Author: "x"})
	if err != forumpoststore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListComments_NewestFirstWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreateForumPost(ctx, "jsmith", "1234567@pdsb.net", "Hello all", "This is a long enough body for a forum post.")
	for i := 0; i < 5; i++ {
		_, err := store.AppendComment(ctx, post.ID, models.Comment{
			Author:      fmt.Sprintf("author%d", i),
			Email:       fmt.Sprintf("100000%d@pdsb.net", i),
			DateCreated: time.Now().UTC(),
			Body:        "This is a long enough comment body to pass.",
		})
		if err != nil {
			t.Fatalf("AppendComment %d failed: %v", i, err)
		}
	}

	got, err := store.ListComments(ctx, post.ID, paging.Args{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(got) != 2 || got[0].Author != "author4" || got[1].Author != "author3" {
		t.Errorf("page 1 = %v", got)
	}

	got, err = store.ListComments(ctx, post.ID, paging.Args{Page: 3, Limit: 2})
	if err != nil {
		t.Fatalf("ListComments page 3 failed: %v", err)
	}
	if len(got) != 1 || got[0].Author != "author0" {
		t.Errorf("page 3 = %v", got)
	}
}

func TestStore_ListComments_FilterAfterPagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreateForumPost(ctx, "jsmith", "1234567@pdsb.net", "Hello all", "This is a long enough body for a forum post.")
	authors := []string{"match", "other", "other", "match"}
	for i, a := range authors {
		_, err := store.AppendComment(ctx, post.ID, models.Comment{
			Author:      a,
			Email:       fmt.Sprintf("100000%d@pdsb.net", i),
			DateCreated: time.Now().UTC(),
			Body:        "This is a long enough comment body to pass.",
		})
		if err != nil {
			t.Fatalf("AppendComment %d failed: %v", i, err)
		}
	}

	// Newest-first order is [match other other match]. The window of
	// page 1 limit 2 holds [match other]; the filter then runs inside
	// that window only, so one match comes back even though a second
	// exists past the window.
	got, err := store.ListComments(ctx, post.ID, paging.Args{Page: 1, Limit: 2, Search: "match", Field: "author"})
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(got) != 1 || got[0].Author != "match" {
		t.Errorf("filtered page = %v", got)
	}
}

func TestStore_DeleteComment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreateForumPost(ctx, "jsmith", "1234567@pdsb.net", "Hello all", "This is a long enough body for a forum post.")
	kept, err := store.AppendComment(ctx, post.ID, models.Comment{
		Author: "keep", Email: "1000001@pdsb.net", DateCreated: time.Now().UTC(),
		Body: "This is a long enough comment body to pass.",
	})
	if err != nil {
		t.Fatalf("AppendComment failed: %v", err)
	}
	doomed, err := store.AppendComment(ctx, post.ID, models.Comment{
		Author: "remove", Email: "1000002@pdsb.net", DateCreated: time.Now().UTC(),
		Body: "This is a long enough comment body to pass.",
	})
	if err != nil {
		t.Fatalf("AppendComment failed: %v", err)
	}

	if err := store.DeleteComment(ctx, post.ID, doomed.ID); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	got, err := store.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Comments) != 1 || got.Comments[0].ID != kept.ID {
		t.Errorf("comments after delete = %v", got.Comments)
	}

	if err := store.DeleteComment(ctx, post.ID, doomed.ID); err != forumpoststore.ErrCommentNotFound {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := forumpoststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreateForumPost(ctx, "jsmith", "1234567@pdsb.net", "Hello all", "This is a long enough body for a forum post.")

	n, err := store.Delete(ctx, post.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Delete removed %d posts, want 1", n)
	}
	if _, err := store.GetByID(ctx, post.ID); err != forumpoststore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
