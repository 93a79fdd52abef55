package entstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tracker-studio-api/ent"
	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/identity"
	"tracker-studio-api/internal/sharelink"
	"tracker-studio-api/internal/tracker"
)

func newTestStores(t *testing.T) *Stores {
	t.Helper()
	dsn := "file:ent?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = client.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(client)
}

func newAccount(t *testing.T, s *Stores, username string) *identity.Account {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	a := &identity.Account{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "x",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(context.Background(), a); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return a
}

func TestUserStoreDuplicateUsername(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	newAccount(t, s, "alice")
	now := time.Now().UTC()
	err := s.Users.Create(ctx, &identity.Account{
		ID: uuid.New(), Username: "alice", PasswordHash: "y",
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("duplicate username: got %v, want conflict", err)
	}

	got, err := s.Users.GetByUsername(ctx, "alice")
	if err != nil || got == nil {
		t.Fatalf("GetByUsername: %v, %v", got, err)
	}
	missing, err := s.Users.GetByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("missing username: got %v, %v, want nil, nil", missing, err)
	}
}

func TestTemplateTrackerEntryRoundTrip(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	owner := newAccount(t, s, "alice")
	now := time.Now().UTC().Truncate(time.Second)

	schema := []tracker.FieldDef{
		{ID: "mood", Label: "Mood", Type: tracker.FieldRating, Required: true},
		{ID: "slept", Label: "Slept well", Type: tracker.FieldBoolean},
	}
	tpl := &tracker.Template{
		ID: uuid.New(), OwnerID: &owner.ID, Name: "Mood", Scope: tracker.ScopeUser,
		FieldSchema: schema, CreatedAt: now, UpdatedAt: now,
	}
	if err := s.Templates.Create(ctx, tpl); err != nil {
		t.Fatalf("create template: %v", err)
	}
	gotTpl, err := s.Templates.Get(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	if gotTpl == nil || len(gotTpl.FieldSchema) != 2 || gotTpl.FieldSchema[0].ID != "mood" {
		t.Fatalf("template round trip: %+v", gotTpl)
	}
	exists, err := s.Templates.NameExists(ctx, owner.ID, "Mood")
	if err != nil || !exists {
		t.Fatalf("NameExists: %v, %v", exists, err)
	}

	tr := &tracker.Tracker{
		ID: uuid.New(), OwnerID: owner.ID, TemplateID: &tpl.ID, Name: "Mood log",
		Granularity: tracker.GranularityDaily, SchemaSnapshot: schema,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.Trackers.Create(ctx, tr); err != nil {
		t.Fatalf("create tracker: %v", err)
	}
	gotTr, err := s.Trackers.Get(ctx, tr.ID)
	if err != nil || gotTr == nil {
		t.Fatalf("get tracker: %v, %v", gotTr, err)
	}
	if gotTr.TemplateID == nil || *gotTr.TemplateID != tpl.ID {
		t.Fatalf("tracker template link: %v", gotTr.TemplateID)
	}
	if len(gotTr.SchemaSnapshot) != 2 {
		t.Fatalf("schema snapshot: got %d fields", len(gotTr.SchemaSnapshot))
	}

	e := &tracker.Entry{
		ID: uuid.New(), TrackerID: tr.ID, OwnerID: owner.ID, Date: "2026-08-20",
		Granularity: tracker.GranularityDaily,
		Values:      map[string]any{"mood": 4.0, "slept": true},
		CreatedAt:   now, UpdatedAt: now,
	}
	if err := s.Entries.Create(ctx, e); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	// the (tracker, owner, date, slot) unique index is the duplicate guard
	dup := &tracker.Entry{
		ID: uuid.New(), TrackerID: tr.ID, OwnerID: owner.ID, Date: "2026-08-20",
		Granularity: tracker.GranularityDaily, Values: map[string]any{"mood": 1.0},
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.Entries.Create(ctx, dup); !apperr.IsConflict(err) {
		t.Fatalf("duplicate entry: got %v, want conflict", err)
	}

	byDate, err := s.Entries.GetByDate(ctx, tr.ID, owner.ID, "2026-08-20")
	if err != nil || byDate == nil || byDate.ID != e.ID {
		t.Fatalf("GetByDate: %+v, %v", byDate, err)
	}
	if v, ok := byDate.Values["slept"].(bool); !ok || !v {
		t.Fatalf("entry values round trip: %+v", byDate.Values)
	}

	later := &tracker.Entry{
		ID: uuid.New(), TrackerID: tr.ID, OwnerID: owner.ID, Date: "2026-08-22",
		Granularity: tracker.GranularityDaily, Values: map[string]any{"mood": 5.0},
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.Entries.Create(ctx, later); err != nil {
		t.Fatalf("create later entry: %v", err)
	}
	items, err := s.Entries.List(ctx, tr.ID, "2026-08-01", "2026-08-21", 50, 0)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(items) != 1 || items[0].Date != "2026-08-20" {
		t.Fatalf("range list: got %d items", len(items))
	}
}

func TestShareLinkConsumeUseCAS(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	owner := newAccount(t, s, "alice")
	now := time.Now().UTC().Truncate(time.Second)

	tpl := &tracker.Template{
		ID: uuid.New(), OwnerID: &owner.ID, Name: "Sleep", Scope: tracker.ScopeUser,
		FieldSchema: []tracker.FieldDef{{ID: "hours", Label: "Hours", Type: tracker.FieldNumber}},
		CreatedAt:   now, UpdatedAt: now,
	}
	if err := s.Templates.Create(ctx, tpl); err != nil {
		t.Fatalf("create template: %v", err)
	}

	l := &sharelink.Link{
		ID: uuid.New(), TemplateID: tpl.ID, Token: "tok-cas", CreatedBy: owner.ID,
		MaxUses: 2, CreatedAt: now,
	}
	if err := s.ShareLinks.Create(ctx, l); err != nil {
		t.Fatalf("create link: %v", err)
	}

	if err := s.ShareLinks.ConsumeUse(ctx, l.ID, 0); err != nil {
		t.Fatalf("first consume: %v", err)
	}
	// a second consume against the stale observed count must lose
	if err := s.ShareLinks.ConsumeUse(ctx, l.ID, 0); !apperr.IsConflict(err) {
		t.Fatalf("stale consume: got %v, want conflict", err)
	}
	got, err := s.ShareLinks.Get(ctx, l.ID)
	if err != nil || got == nil {
		t.Fatalf("get link: %v, %v", got, err)
	}
	if got.UseCount != 1 {
		t.Fatalf("use count: got %d, want 1", got.UseCount)
	}

	if err := s.ShareLinks.Revoke(ctx, l.ID, now); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	byToken, err := s.ShareLinks.GetByToken(ctx, "tok-cas")
	if err != nil || byToken == nil || byToken.RevokedAt == nil {
		t.Fatalf("revoked link: %+v, %v", byToken, err)
	}
}
