package sharelink_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/sharelink"
	"tracker-studio-api/internal/tracker"
	"tracker-studio-api/internal/tracker/trackertest"
)

type memLinkStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*sharelink.Link
}

func newMemLinkStore() *memLinkStore {
	return &memLinkStore{rows: map[uuid.UUID]*sharelink.Link{}}
}

func (s *memLinkStore) Create(ctx context.Context, l *sharelink.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.rows[l.ID] = &cp
	return nil
}

func (s *memLinkStore) Get(ctx context.Context, id uuid.UUID) (*sharelink.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.rows[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (s *memLinkStore) GetByToken(ctx context.Context, token string) (*sharelink.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.rows {
		if l.Token == token {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memLinkStore) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*sharelink.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*sharelink.Link
	for _, l := range s.rows {
		if l.TemplateID == templateID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memLinkStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rows[id]
	if !ok {
		return apperr.NotFound("share link")
	}
	l.RevokedAt = &at
	return nil
}

func (s *memLinkStore) ConsumeUse(ctx context.Context, id uuid.UUID, observed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rows[id]
	if !ok {
		return apperr.NotFound("share link")
	}
	if l.UseCount != observed {
		return apperr.Conflict("use count moved")
	}
	l.UseCount++
	return nil
}

func setup(t *testing.T) (*sharelink.Service, *memLinkStore, *tracker.Service, tracker.Principal, *tracker.Template) {
	t.Helper()
	trackerSvc, m := trackertest.NewService()
	owner := tracker.Principal{ID: uuid.New()}
	tpl, err := trackerSvc.CreateTemplate(context.Background(), owner, tracker.CreateTemplateInput{
		Name: "Sleep Tracker",
		FieldSchema: []tracker.FieldDef{
			{ID: "mood", Label: "Mood", Type: tracker.FieldRating, Required: true},
		},
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	store := newMemLinkStore()
	svc := sharelink.NewService(store, m, trackerSvc)
	return svc, store, trackerSvc, owner, tpl
}

func TestCreateLinkOwnerOnly(t *testing.T) {
	svc, _, _, owner, tpl := setup(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.Token == "" {
		t.Fatal("link has no token")
	}

	stranger := tracker.Principal{ID: uuid.New()}
	if _, err := svc.Create(ctx, stranger, sharelink.CreateInput{TemplateID: tpl.ID}); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for stranger, got %v", err)
	}
	if _, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID, MaxUses: -1}); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for negative max_uses, got %v", err)
	}
	past := time.Now().Add(-time.Hour)
	if _, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID, ExpiresAt: &past}); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for past expiry, got %v", err)
	}
}

func TestStatusOrder(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	// revoked wins over expired and exhaustion
	l := &sharelink.Link{RevokedAt: &past, ExpiresAt: &past, MaxUses: 1, UseCount: 1}
	if got := l.StatusAt(now); got != sharelink.StatusRevoked {
		t.Fatalf("status = %s, want revoked", got)
	}
	// expired wins over exhaustion
	l = &sharelink.Link{ExpiresAt: &past, MaxUses: 1, UseCount: 1}
	if got := l.StatusAt(now); got != sharelink.StatusExpired {
		t.Fatalf("status = %s, want expired", got)
	}
	l = &sharelink.Link{MaxUses: 1, UseCount: 1}
	if got := l.StatusAt(now); got != sharelink.StatusExhausted {
		t.Fatalf("status = %s, want exhausted", got)
	}
	// zero max uses means unlimited
	l = &sharelink.Link{MaxUses: 0, UseCount: 10_000}
	if got := l.StatusAt(now); got != sharelink.StatusValid {
		t.Fatalf("status = %s, want valid", got)
	}
}

func TestPreviewAndImport(t *testing.T) {
	svc, _, trackerSvc, owner, tpl := setup(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Preview(ctx, l.Token)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if got.Name != "Sleep Tracker" {
		t.Fatalf("preview name = %q", got.Name)
	}
	if _, err := svc.Preview(ctx, "bogus"); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for bogus token, got %v", err)
	}

	importer := tracker.Principal{ID: uuid.New()}
	cp, err := svc.Import(ctx, importer, l.Token)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if cp.OwnerID == nil || *cp.OwnerID != importer.ID {
		t.Fatalf("copy owner = %v, want importer", cp.OwnerID)
	}
	if cp.ID == tpl.ID {
		t.Fatal("import returned the original, not a copy")
	}
	if cp.Locked || cp.Scope != tracker.ScopeUser {
		t.Fatalf("copy should be an unlocked user template: %+v", cp)
	}

	// decoupled: editing the original does not touch the copy
	if _, err := trackerSvc.UpdateTemplate(ctx, owner, tpl.ID, tracker.UpdateTemplateInput{
		FieldSchema: []tracker.FieldDef{{ID: "hours", Label: "Hours", Type: tracker.FieldNumber}},
	}); err != nil {
		t.Fatalf("UpdateTemplate: %v", err)
	}
	fresh, err := trackerSvc.GetTemplate(ctx, importer, cp.ID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if len(fresh.FieldSchema) != 1 || fresh.FieldSchema[0].ID != "mood" {
		t.Fatalf("imported copy changed with original: %+v", fresh.FieldSchema)
	}
}

func TestImportNameCollision(t *testing.T) {
	svc, _, trackerSvc, owner, tpl := setup(t)
	ctx := context.Background()
	l, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	importer := tracker.Principal{ID: uuid.New()}
	if _, err := trackerSvc.CreateTemplate(ctx, importer, tracker.CreateTemplateInput{
		Name:        "Sleep Tracker",
		FieldSchema: []tracker.FieldDef{{ID: "x", Label: "X", Type: tracker.FieldText}},
	}); err != nil {
		t.Fatalf("seed colliding template: %v", err)
	}

	cp, err := svc.Import(ctx, importer, l.Token)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if cp.Name != "Sleep Tracker (1)" {
		t.Fatalf("import name = %q, want collision suffix", cp.Name)
	}
}

func TestImportConsumesUses(t *testing.T) {
	svc, store, _, owner, tpl := setup(t)
	ctx := context.Background()
	l, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID, MaxUses: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 2; i++ {
		p := tracker.Principal{ID: uuid.New()}
		if _, err := svc.Import(ctx, p, l.Token); err != nil {
			t.Fatalf("import %d: %v", i+1, err)
		}
	}
	p := tracker.Principal{ID: uuid.New()}
	if _, err := svc.Import(ctx, p, l.Token); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError on exhausted link, got %v", err)
	}

	cur, _ := store.Get(ctx, l.ID)
	if cur.UseCount != 2 {
		t.Fatalf("use count = %d, want 2", cur.UseCount)
	}
}

// contendedStore makes the first ConsumeUse call land a concurrent increment
// before delegating, forcing exactly one CAS loss.
type contendedStore struct {
	*memLinkStore
	once sync.Once
}

func (s *contendedStore) ConsumeUse(ctx context.Context, id uuid.UUID, observed int) error {
	var raced bool
	s.once.Do(func() {
		raced = true
		if err := s.memLinkStore.ConsumeUse(ctx, id, observed); err != nil {
			panic(err)
		}
	})
	if raced {
		return apperr.Conflict("use count moved")
	}
	return s.memLinkStore.ConsumeUse(ctx, id, observed)
}

func TestImportRetriesCASLoss(t *testing.T) {
	ctx := context.Background()
	trackerSvc, m := trackertest.NewService()
	owner := tracker.Principal{ID: uuid.New()}
	tpl, err := trackerSvc.CreateTemplate(ctx, owner, tracker.CreateTemplateInput{
		Name:        "Sleep Tracker",
		FieldSchema: []tracker.FieldDef{{ID: "mood", Label: "Mood", Type: tracker.FieldRating}},
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	inner := newMemLinkStore()
	store := &contendedStore{memLinkStore: inner}
	svc := sharelink.NewService(store, m, trackerSvc)

	l, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p := tracker.Principal{ID: uuid.New()}
	if _, err := svc.Import(ctx, p, l.Token); err != nil {
		t.Fatalf("Import should retry past one CAS loss: %v", err)
	}
	cur, _ := inner.Get(ctx, l.ID)
	if cur.UseCount != 2 {
		t.Fatalf("use count = %d, want 2", cur.UseCount)
	}
}

func TestRevokedLinkStopsImports(t *testing.T) {
	svc, _, _, owner, tpl := setup(t)
	ctx := context.Background()
	l, err := svc.Create(ctx, owner, sharelink.CreateInput{TemplateID: tpl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Revoke(ctx, owner, l.ID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	// idempotent
	if err := svc.Revoke(ctx, owner, l.ID); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}

	p := tracker.Principal{ID: uuid.New()}
	if _, err := svc.Import(ctx, p, l.Token); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError on revoked link, got %v", err)
	}
	if _, err := svc.Preview(ctx, l.Token); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError on revoked preview, got %v", err)
	}
}
