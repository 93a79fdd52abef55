package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/config"
	"tracker-studio-api/internal/httpx"
	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/identity"
	"tracker-studio-api/internal/insights"
	"tracker-studio-api/internal/perm"
	"tracker-studio-api/internal/reminder"
	"tracker-studio-api/internal/sharelink"
	"tracker-studio-api/internal/tracker"
	"tracker-studio-api/internal/tracker/trackertest"
)

// --- in-memory backends ---

type memAccounts struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*identity.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{rows: map[uuid.UUID]*identity.Account{}}
}

func (s *memAccounts) Create(ctx context.Context, a *identity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.Username == a.Username {
			return apperr.Conflict("username already taken")
		}
	}
	cp := *a
	s.rows[a.ID] = &cp
	return nil
}

func (s *memAccounts) GetByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.rows[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (s *memAccounts) GetByUsername(ctx context.Context, username string) (*identity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.rows {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memAccounts) Update(ctx context.Context, a *identity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[a.ID]; !ok {
		return apperr.NotFound("account")
	}
	cp := *a
	s.rows[a.ID] = &cp
	return nil
}

// memGroups keeps membership in the same MemStore the permission resolver
// reads, so group grants resolve against the members added over HTTP.
type memGroups struct {
	mu    sync.Mutex
	m     *trackertest.MemStore
	names map[uuid.UUID]string
}

func newMemGroups(m *trackertest.MemStore) *memGroups {
	return &memGroups{m: m, names: map[uuid.UUID]string{}}
}

func (s *memGroups) Create(ctx context.Context, name string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.names[id] = name
	return id, nil
}

func (s *memGroups) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.names[groupID]; !ok {
		return apperr.NotFound("group")
	}
	for _, g := range s.m.Groups[userID] {
		if g == groupID {
			return nil
		}
	}
	s.m.Groups[userID] = append(s.m.Groups[userID], groupID)
	return nil
}

func (s *memGroups) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs := s.m.Groups[userID]
	for i, g := range gs {
		if g == groupID {
			s.m.Groups[userID] = append(gs[:i], gs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memGroups) ListMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []uuid.UUID
	for uid, gs := range s.m.Groups {
		for _, g := range gs {
			if g == groupID {
				out = append(out, uid)
				break
			}
		}
	}
	return out, nil
}

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

type memReminderStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*reminder.Reminder
}

func newMemReminderStore() *memReminderStore {
	return &memReminderStore{rows: map[uuid.UUID]*reminder.Reminder{}}
}

func (s *memReminderStore) Create(ctx context.Context, r *reminder.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.rows[r.ID] = &cp
	return nil
}

func (s *memReminderStore) Get(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rows[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (s *memReminderStore) Update(ctx context.Context, r *reminder.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[r.ID]; !ok {
		return apperr.NotFound("reminder")
	}
	cp := *r
	s.rows[r.ID] = &cp
	return nil
}

func (s *memReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

func (s *memReminderStore) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*reminder.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reminder.Reminder
	for _, r := range s.rows {
		if r.OwnerID == owner {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memReminderStore) ListEnabled(ctx context.Context) ([]*reminder.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reminder.Reminder
	for _, r := range s.rows {
		if r.Enabled {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memReminderStore) MarkFired(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rows[id]; ok {
		r.LastFiredAt = &at
	}
	return nil
}

// --- app wiring ---

func newE2EApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "e2e-secret"
	cfg.JWT.Issuer = "tracker-studio"
	cfg.JWT.Audience = "tracker-studio"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7

	trackerSvc, m := trackertest.NewService()
	resolver := perm.NewResolver(trackertest.EntitlementStore{M: m}, trackertest.GroupDirectory{M: m})
	insightSvc := insights.NewService(resolver, trackertest.TrackerStore{M: m}, trackertest.EntryStore{M: m}, insights.NewMemoryCache(), time.Minute)
	reminderSvc := reminder.NewService(newMemReminderStore(), trackertest.TrackerStore{M: m})
	linkSvc := sharelink.NewService(newMemLinkStore(), m, trackerSvc)

	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.Register(app, &httpx.Deps{
		Cfg:       cfg,
		Accounts:  newMemAccounts(),
		Groups:    newMemGroups(m),
		Trackers:  trackerSvc,
		Insights:  insightSvc,
		Reminders: reminderSvc,
		Links:     linkSvc,
	})
	return app
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && resp.StatusCode != http.StatusNoContent {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func unmarshalData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func register(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"username": username,
		"password": "correct-horse-battery",
	})
	if status != http.StatusOK {
		t.Fatalf("register %s: status %d (%s)", username, status, env.Message)
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	unmarshalData(t, env, &tok)
	if tok.AccessToken == "" {
		t.Fatalf("register %s: empty access token", username)
	}
	return tok.AccessToken
}

func whoami(t *testing.T, app *fiber.App, token string) uuid.UUID {
	t.Helper()
	status, env := doJSON(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("me: status %d", status)
	}
	var me struct {
		ID string `json:"id"`
	}
	unmarshalData(t, env, &me)
	return uuid.MustParse(me.ID)
}

// --- the flow ---

func TestEndToEndTrackingFlow(t *testing.T) {
	app := newE2EApp(t)

	alice := register(t, app, "alice")
	bob := register(t, app, "bob")
	bobID := whoami(t, app, bob)

	// alice builds a template and a tracker from it
	status, env := doJSON(t, app, http.MethodPost, "/api/v1/templates", alice, fiber.Map{
		"name": "Mood",
		"field_schema": []fiber.Map{
			{"id": "mood", "label": "Mood", "type": "rating"},
			{"id": "slept", "label": "Slept well", "type": "boolean"},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create template: status %d (%s)", status, env.Message)
	}
	var tpl tracker.Template
	unmarshalData(t, env, &tpl)

	status, env = doJSON(t, app, http.MethodPost, "/api/v1/trackers", alice, fiber.Map{
		"name":        "Mood log",
		"template_id": tpl.ID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create tracker: status %d (%s)", status, env.Message)
	}
	var tr tracker.Tracker
	unmarshalData(t, env, &tr)
	if len(tr.SchemaSnapshot) != 2 {
		t.Fatalf("schema snapshot: got %d fields, want 2", len(tr.SchemaSnapshot))
	}

	// entries: one per day, the second write for the same day conflicts
	entriesPath := fmt.Sprintf("/api/v1/trackers/%s/entries", tr.ID)
	status, env = doJSON(t, app, http.MethodPost, entriesPath, alice, fiber.Map{
		"entry_date":   "2026-08-20",
		"field_values": fiber.Map{"mood": 4, "slept": true},
	})
	if status != http.StatusCreated {
		t.Fatalf("create entry: status %d (%s)", status, env.Message)
	}
	status, _ = doJSON(t, app, http.MethodPost, entriesPath, alice, fiber.Map{
		"entry_date":   "2026-08-20",
		"field_values": fiber.Map{"mood": 2},
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate entry: status %d, want 409", status)
	}

	// bob has no access yet; the tracker must not even be visible
	trackerPath := fmt.Sprintf("/api/v1/trackers/%s", tr.ID)
	status, _ = doJSON(t, app, http.MethodGet, trackerPath, bob, nil)
	if status != http.StatusNotFound {
		t.Fatalf("stranger read: status %d, want 404", status)
	}

	// viewer grant opens reads but not writes
	status, env = doJSON(t, app, http.MethodPost, "/api/v1/shares/grants", alice, fiber.Map{
		"entity_type":  "tracker",
		"entity_id":    tr.ID,
		"subject_type": "user",
		"subject_id":   bobID,
		"role":         "viewer",
	})
	if status != http.StatusCreated {
		t.Fatalf("create grant: status %d (%s)", status, env.Message)
	}
	status, _ = doJSON(t, app, http.MethodGet, trackerPath, bob, nil)
	if status != http.StatusOK {
		t.Fatalf("viewer read: status %d, want 200", status)
	}
	status, _ = doJSON(t, app, http.MethodPost, entriesPath, bob, fiber.Map{
		"entry_date":   "2026-08-21",
		"field_values": fiber.Map{"mood": 5},
	})
	if status != http.StatusForbidden {
		t.Fatalf("viewer write: status %d, want 403", status)
	}

	status, env = doJSON(t, app, http.MethodGet, trackerPath+"/permissions", bob, nil)
	if status != http.StatusOK {
		t.Fatalf("permissions: status %d", status)
	}
	var pm perm.Permissions
	unmarshalData(t, env, &pm)
	if !pm.CanView || pm.CanEdit {
		t.Fatalf("viewer permissions: got %+v", pm)
	}

	// an editor grant through a group lets bob write
	status, env = doJSON(t, app, http.MethodPost, "/api/v1/groups", alice, fiber.Map{
		"name":       "family",
		"member_ids": []uuid.UUID{bobID},
	})
	if status != http.StatusCreated {
		t.Fatalf("create group: status %d (%s)", status, env.Message)
	}
	var grp struct {
		ID uuid.UUID `json:"id"`
	}
	unmarshalData(t, env, &grp)
	status, env = doJSON(t, app, http.MethodPost, "/api/v1/shares/grants", alice, fiber.Map{
		"entity_type":  "tracker",
		"entity_id":    tr.ID,
		"subject_type": "group",
		"subject_id":   grp.ID,
		"role":         "editor",
	})
	if status != http.StatusCreated {
		t.Fatalf("group grant: status %d (%s)", status, env.Message)
	}
	status, env = doJSON(t, app, http.MethodPost, entriesPath, bob, fiber.Map{
		"entry_date":   "2026-08-21",
		"field_values": fiber.Map{"mood": 5, "slept": false},
	})
	if status != http.StatusCreated {
		t.Fatalf("editor write: status %d (%s)", status, env.Message)
	}

	// insights over both entries
	status, env = doJSON(t, app, http.MethodGet, trackerPath+"/insights?from=2026-08-01&to=2026-08-31", alice, nil)
	if status != http.StatusOK {
		t.Fatalf("insights: status %d (%s)", status, env.Message)
	}
	var sum insights.Summary
	unmarshalData(t, env, &sum)
	if sum.EntryCount != 2 {
		t.Fatalf("insights entry count: got %d, want 2", sum.EntryCount)
	}
	for _, f := range sum.Fields {
		if f.FieldID == "mood" {
			if f.Mean == nil || *f.Mean != 4.5 {
				t.Fatalf("mood mean: got %v, want 4.5", f.Mean)
			}
		}
	}

	// reminders are owner-scoped CRUD
	status, env = doJSON(t, app, http.MethodPost, "/api/v1/reminders", alice, fiber.Map{
		"tracker_id":  tr.ID,
		"kind":        "entry_prompt",
		"time_of_day": 540,
	})
	if status != http.StatusCreated {
		t.Fatalf("create reminder: status %d (%s)", status, env.Message)
	}
	status, env = doJSON(t, app, http.MethodGet, "/api/v1/reminders", alice, nil)
	if status != http.StatusOK {
		t.Fatalf("list reminders: status %d", status)
	}
	var rems []reminder.Reminder
	unmarshalData(t, env, &rems)
	if len(rems) != 1 {
		t.Fatalf("list reminders: got %d, want 1", len(rems))
	}
}

func TestEndToEndShareLinkImport(t *testing.T) {
	app := newE2EApp(t)

	alice := register(t, app, "alice")
	bob := register(t, app, "bob")

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/templates", alice, fiber.Map{
		"name": "Sleep",
		"field_schema": []fiber.Map{
			{"id": "hours", "label": "Hours", "type": "number"},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create template: status %d (%s)", status, env.Message)
	}
	var tpl tracker.Template
	unmarshalData(t, env, &tpl)

	status, env = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/templates/%s/links", tpl.ID), alice, fiber.Map{
		"max_uses": 1,
	})
	if status != http.StatusCreated {
		t.Fatalf("create link: status %d (%s)", status, env.Message)
	}
	var link sharelink.Link
	unmarshalData(t, env, &link)
	if link.Token == "" {
		t.Fatal("create link: empty token")
	}

	// preview is public and does not consume a use
	status, env = doJSON(t, app, http.MethodGet, "/api/v1/links/"+link.Token+"/preview", "", nil)
	if status != http.StatusOK {
		t.Fatalf("preview: status %d (%s)", status, env.Message)
	}
	var preview tracker.Template
	unmarshalData(t, env, &preview)
	if preview.Name != "Sleep" {
		t.Fatalf("preview name: got %q", preview.Name)
	}

	status, env = doJSON(t, app, http.MethodPost, "/api/v1/links/"+link.Token+"/import", bob, nil)
	if status != http.StatusCreated {
		t.Fatalf("import: status %d (%s)", status, env.Message)
	}
	var imported tracker.Template
	unmarshalData(t, env, &imported)
	if imported.OwnerID == nil || *imported.OwnerID == *tpl.OwnerID {
		t.Fatalf("import owner: got %v", imported.OwnerID)
	}

	// the single use is consumed
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/links/"+link.Token+"/import", bob, nil)
	if status != http.StatusNotFound {
		t.Fatalf("exhausted import: status %d, want 404", status)
	}

	// an unknown token never reveals why it failed
	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/links/nope/preview", "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("bad token preview: status %d, want 404", status)
	}
}
