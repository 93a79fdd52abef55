package entries

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/httpx/kit/testutil"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/tracker"
	"tracker-studio-api/internal/tracker/trackertest"
)

func newTestApp(svc *tracker.Service, owner uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + owner.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Post("/trackers/:id/entries", mw.RequireUser(), CreateHandler(svc))
			app.Get("/trackers/:id/entries", mw.RequireUser(), ListHandler(svc))
			app.Get("/entries/:id", mw.RequireUser(), GetHandler(svc))
			app.Patch("/entries/:id", mw.RequireUser(), UpdateHandler(svc))
		},
	)
}

func doReq(t *testing.T, app *fiber.App, method, path string, body any) (int, json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env.Data
}

func seedTracker(t *testing.T, svc *tracker.Service, owner uuid.UUID) *tracker.Tracker {
	t.Helper()
	tr, err := svc.CreateTracker(context.Background(), tracker.Principal{ID: owner}, tracker.CreateTrackerInput{
		Name: "Mood log",
		FieldSchema: []tracker.FieldDef{
			{ID: "mood", Label: "Mood", Type: tracker.FieldRating, Required: true},
			{ID: "note", Label: "Note", Type: tracker.FieldText},
		},
	})
	if err != nil {
		t.Fatalf("seed tracker: %v", err)
	}
	return tr
}

func TestEntries_CreateDuplicateAndUpdate(t *testing.T) {
	svc, _ := trackertest.NewService()
	owner := uuid.New()
	app := newTestApp(svc, owner)
	tr := seedTracker(t, svc, owner)
	base := "/trackers/" + tr.ID.String() + "/entries"

	status, data := doReq(t, app, http.MethodPost, base, fiber.Map{
		"entry_date":   "2026-08-20",
		"field_values": fiber.Map{"mood": 3},
	})
	if status != http.StatusCreated {
		t.Fatalf("create: status %d", status)
	}
	var e tracker.Entry
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("decode: %v", err)
	}

	status, _ = doReq(t, app, http.MethodPost, base, fiber.Map{
		"entry_date":   "2026-08-20",
		"field_values": fiber.Map{"mood": 5},
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate day: status %d, want 409", status)
	}

	// partial update merges values and keeps the rest
	status, data = doReq(t, app, http.MethodPatch, "/entries/"+e.ID.String(), fiber.Map{
		"field_values": fiber.Map{"note": "better evening"},
	})
	if status != http.StatusOK {
		t.Fatalf("update: status %d", status)
	}
	var updated tracker.Entry
	if err := json.Unmarshal(data, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Values["note"] != "better evening" {
		t.Fatalf("merged note: %+v", updated.Values)
	}
	if v, ok := updated.Values["mood"].(float64); !ok || v != 3 {
		t.Fatalf("mood survived merge: %+v", updated.Values)
	}
}

func TestEntries_CreateRejectsUnknownField(t *testing.T) {
	svc, _ := trackertest.NewService()
	owner := uuid.New()
	app := newTestApp(svc, owner)
	tr := seedTracker(t, svc, owner)

	status, _ := doReq(t, app, http.MethodPost, "/trackers/"+tr.ID.String()+"/entries", fiber.Map{
		"entry_date":   "2026-08-20",
		"field_values": fiber.Map{"mood": 3, "stealth": true},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("unknown field: status %d, want 400", status)
	}
}

func TestEntries_ListSortedWindow(t *testing.T) {
	svc, _ := trackertest.NewService()
	owner := uuid.New()
	app := newTestApp(svc, owner)
	tr := seedTracker(t, svc, owner)
	base := "/trackers/" + tr.ID.String() + "/entries"

	for _, day := range []string{"2026-08-18", "2026-08-19", "2026-08-20"} {
		status, _ := doReq(t, app, http.MethodPost, base, fiber.Map{
			"entry_date":   day,
			"field_values": fiber.Map{"mood": 4},
		})
		if status != http.StatusCreated {
			t.Fatalf("seed %s: status %d", day, status)
		}
	}

	status, data := doReq(t, app, http.MethodGet, base+"?from=2026-08-18&to=2026-08-19&sort=entry_date:desc", nil)
	if status != http.StatusOK {
		t.Fatalf("list: status %d", status)
	}
	var items []tracker.Entry
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("window: got %d items, want 2", len(items))
	}
	if items[0].Date != "2026-08-19" || items[1].Date != "2026-08-18" {
		t.Fatalf("desc order: %s, %s", items[0].Date, items[1].Date)
	}

	status, _ = doReq(t, app, http.MethodGet, base+"?sort=notes:desc", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("bad sort field: status %d, want 400", status)
	}
}
