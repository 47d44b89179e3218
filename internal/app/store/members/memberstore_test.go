package memberstore_test

import (
	"testing"
	"time"

	memberstore "github.com/hbcybertech/clubhub/internal/app/store/members"
	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"github.com/hbcybertech/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGeneralStore_Insert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.NewGeneral(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := models.GeneralMember{
		FullName:    "Jane Smith",
		Email:       "1234567@pdsb.net",
		Grade:       10,
		Skills:      80,
		DateCreated: time.Now().UTC(),
	}
	created, err := store.Insert(ctx, m)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
}

func TestGeneralStore_Insert_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.NewGeneral(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.GeneralMember{FullName: "Jane Smith", Email: "1234567@pdsb.net", Grade: 10, DateCreated: time.Now().UTC()}
	if _, err := store.Insert(ctx, first); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}

	// Same name, different email.
	dup := models.GeneralMember{FullName: "Jane Smith", Email: "7654321@pdsb.net", Grade: 11, DateCreated: time.Now().UTC()}
	if _, err := store.Insert(ctx, dup); err != memberstore.ErrDuplicate {
		t.Errorf("expected ErrDuplicate for name, got %v", err)
	}

	// Same email, different name.
	dup = models.GeneralMember{FullName: "Other Person", Email: "1234567@pdsb.net", Grade: 11, DateCreated: time.Now().UTC()}
	if _, err := store.Insert(ctx, dup); err != memberstore.ErrDuplicate {
		t.Errorf("expected ErrDuplicate for email, got %v", err)
	}
}

func TestGeneralStore_ExistsByNameOrEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.NewGeneral(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGeneralMember(ctx, "Jane Smith", "1234567@pdsb.net")

	if ok, err := store.ExistsByNameOrEmail(ctx, "Jane Smith", ""); err != nil || !ok {
		t.Errorf("exists by name = %v, %v, want true", ok, err)
	}
	if ok, err := store.ExistsByNameOrEmail(ctx, "", "1234567@pdsb.net"); err != nil || !ok {
		t.Errorf("exists by email = %v, %v, want true", ok, err)
	}
	if ok, err := store.ExistsByNameOrEmail(ctx, "Nobody", "0000000@pdsb.net"); err != nil || ok {
		t.Errorf("exists for unknown = %v, %v, want false", ok, err)
	}
}

func TestExecutiveStore_FindPaginated_ExecTypeFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.NewExecutive(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.ExecutiveMember{
		{FullName: "Dev One", Email: "1000001@pdsb.net", Grade: 11, ExecType: "development", Why: "w", Experience: "e", DateCreated: time.Now().UTC()},
		{FullName: "Marketer", Email: "1000002@pdsb.net", Grade: 12, ExecType: "marketing", Why: "w", Experience: "e", DateCreated: time.Now().UTC()},
		{FullName: "Dev Two", Email: "1000003@pdsb.net", Grade: 9, ExecType: "development", Why: "w", Experience: "e", DateCreated: time.Now().UTC()},
	}
	for _, m := range seed {
		if _, err := store.Insert(ctx, m); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := store.FindPaginated(ctx, paging.Args{Page: 1, Limit: 10, Field: "development"})
	if err != nil {
		t.Fatalf("FindPaginated failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 development applications, got %d", len(got))
	}
	for _, m := range got {
		if m.ExecType != "development" {
			t.Errorf("unexpected exec type %q", m.ExecType)
		}
	}
}

func TestExecutiveStore_FindPaginated_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.NewExecutive(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.ExecutiveMember{
		{FullName: "Jane Smith", Email: "1000001@pdsb.net", Grade: 11, ExecType: "events", Why: "w", Experience: "e", DateCreated: time.Now().UTC()},
		{FullName: "John Doe", Email: "1000002@pdsb.net", Grade: 12, ExecType: "events", Why: "w", Experience: "e", DateCreated: time.Now().UTC()},
	}
	for _, m := range seed {
		if _, err := store.Insert(ctx, m); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := store.FindPaginated(ctx, paging.Args{Page: 1, Limit: 10, Search: "smith", Field: "full_name"})
	if err != nil {
		t.Fatalf("FindPaginated failed: %v", err)
	}
	if len(got) != 1 || got[0].FullName != "Jane Smith" {
		t.Errorf("search result = %v", got)
	}
}

func TestGeneralStore_Count(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.NewGeneral(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGeneralMember(ctx, "Jane Smith", "1000001@pdsb.net")
	fixtures.CreateGeneralMember(ctx, "John Doe", "1000002@pdsb.net")

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}
