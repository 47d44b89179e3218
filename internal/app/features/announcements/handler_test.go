package announcements_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hbcybertech/clubhub/internal/app/features/announcements"
	adminstore "github.com/hbcybertech/clubhub/internal/app/store/admin"
	announcementstore "github.com/hbcybertech/clubhub/internal/app/store/announcements"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"github.com/hbcybertech/clubhub/internal/app/system/jwtauth"
	"github.com/hbcybertech/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const systemEmail = "club@example.com"

func newTestHandler(t *testing.T) (*announcements.Handler, *mongo.Database, *jwtauth.Auth) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	auth := jwtauth.New("test-secret")
	gate := &gates.AdminGate{Admin: adminstore.New(db), Auth: auth}
	h := announcements.NewHandler(announcementstore.New(db), gate, systemEmail, zap.NewNop())
	return h, db, auth
}

func adminJWT(t *testing.T, db *mongo.Database, auth *jwtauth.Auth) string {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := testutil.NewFixtures(t, db).CreateAdmin(ctx, "admin-token", "adminpass", time.Now().UTC())
	token, err := auth.IssueAdminToken(admin.Token, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}
	return token
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("POST", path, &buf))
	return rec
}

func TestHandleCreate(t *testing.T) {
	h, db, auth := newTestHandler(t)
	token := adminJWT(t, db, auth)

	body := map[string]any{
		"token":        token,
		"title":        "New meeting",
		"body":         "We meet on Thursday after school in room 214.",
		"date_created": time.Now().UTC().Format(time.RFC3339),
	}
	rec := postJSON(t, h.HandleCreate, "/forum/announcements/create", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	// The author is stamped server-side regardless of the caller.
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["author"] != "The Team" {
		t.Errorf("author = %v, want The Team", resp["author"])
	}
	if resp["email"] != systemEmail {
		t.Errorf("email = %v, want %s", resp["email"], systemEmail)
	}
}

func TestHandleCreate_Unauthorized(t *testing.T) {
	h, _, _ := newTestHandler(t)

	body := map[string]any{
		"token":        "garbage",
		"title":        "New meeting",
		"body":         "We meet on Thursday after school in room 214.",
		"date_created": time.Now().UTC().Format(time.RFC3339),
	}
	rec := postJSON(t, h.HandleCreate, "/forum/announcements/create", body)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("create status = %d, want 401", rec.Code)
	}
}

func TestHandleList_NewestFirst(t *testing.T) {
	h, db, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fixtures := testutil.NewFixtures(t, db)
	base := time.Now().UTC().Truncate(time.Second)
	fixtures.CreateAnnouncement(ctx, "First post", "The oldest announcement body for the list.", base.Add(-2*time.Hour))
	fixtures.CreateAnnouncement(ctx, "Second one", "A newer announcement body for the list.", base.Add(-time.Hour))
	fixtures.CreateAnnouncement(ctx, "Third here", "The newest announcement body for the list.", base)

	rec := postJSON(t, h.HandleList, "/forum/announcements/get", map[string]any{"page": 1, "limit": 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["title"] != "Third here" || rows[1]["title"] != "Second one" {
		t.Errorf("order = %v, %v; want newest first", rows[0]["title"], rows[1]["title"])
	}
}

func TestHandleDelete(t *testing.T) {
	h, db, auth := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fixtures := testutil.NewFixtures(t, db)
	ann := fixtures.CreateAnnouncement(ctx, "Doomed one", "This announcement exists only to be removed.", time.Now().UTC())
	token := adminJWT(t, db, auth)

	req := httptest.NewRequest("DELETE", "/forum/announcements/delete/"+ann.ID.Hex(), nil)
	req.Header.Set("Authorization", token)
	req = testutil.WithChiURLParam(req, "id", ann.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	// A second delete of the same id misses.
	req = httptest.NewRequest("DELETE", "/forum/announcements/delete/"+ann.ID.Hex(), nil)
	req.Header.Set("Authorization", token)
	req = testutil.WithChiURLParam(req, "id", ann.ID.Hex())
	rec = httptest.NewRecorder()
	h.HandleDelete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", rec.Code)
	}
}
