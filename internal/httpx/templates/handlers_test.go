package templates

import (
	"bytes"
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

func newTestApp(svc *tracker.Service, subject string, roles []string) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: subject, Kind: "user", Roles: roles})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Get("/templates", mw.RequireUser(), ListHandler(svc))
			app.Post("/templates", mw.RequireUser(), CreateHandler(svc))
			app.Get("/templates/:id", mw.RequireUser(), GetHandler(svc))
			app.Patch("/templates/:id", mw.RequireUser(), UpdateHandler(svc))
			app.Delete("/templates/:id", mw.RequireUser(), ArchiveHandler(svc))
			app.Post("/templates/:id/duplicate", mw.RequireUser(), DuplicateHandler(svc))
			app.Post("/templates/:id/promote", mw.RequireUser(), PromoteHandler(svc))
			app.Post("/templates/:id/lock", mw.RequireUser(), SetLockHandler(svc))
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

func TestTemplates_CreateGetArchive(t *testing.T) {
	svc, _ := trackertest.NewService()
	owner := uuid.New()
	app := newTestApp(svc, "user:"+owner.String(), nil)

	status, data := doReq(t, app, http.MethodPost, "/templates", fiber.Map{
		"name": "Mood",
		"field_schema": []fiber.Map{
			{"id": "mood", "label": "Mood", "type": "rating"},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create: status %d", status)
	}
	var tpl tracker.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		t.Fatalf("decode: %v", err)
	}

	status, _ = doReq(t, app, http.MethodGet, "/templates/"+tpl.ID.String(), nil)
	if status != http.StatusOK {
		t.Fatalf("get: status %d", status)
	}

	status, _ = doReq(t, app, http.MethodDelete, "/templates/"+tpl.ID.String(), nil)
	if status != http.StatusOK {
		t.Fatalf("archive: status %d", status)
	}
	status, _ = doReq(t, app, http.MethodGet, "/templates/"+tpl.ID.String(), nil)
	if status != http.StatusNotFound {
		t.Fatalf("get archived: status %d, want 404", status)
	}
}

func TestTemplates_CreateRejectsEmptySchema(t *testing.T) {
	svc, _ := trackertest.NewService()
	app := newTestApp(svc, "user:"+uuid.New().String(), nil)

	status, _ := doReq(t, app, http.MethodPost, "/templates", fiber.Map{
		"name": "Empty", "field_schema": []fiber.Map{},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("empty schema: status %d, want 400", status)
	}
}

func TestTemplates_PromoteRequiresAdmin(t *testing.T) {
	svc, _ := trackertest.NewService()
	owner := uuid.New()
	app := newTestApp(svc, "user:"+owner.String(), nil)

	status, data := doReq(t, app, http.MethodPost, "/templates", fiber.Map{
		"name": "Sleep",
		"field_schema": []fiber.Map{
			{"id": "hours", "label": "Hours", "type": "number"},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create: status %d", status)
	}
	var tpl tracker.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		t.Fatalf("decode: %v", err)
	}

	status, _ = doReq(t, app, http.MethodPost, "/templates/"+tpl.ID.String()+"/promote", nil)
	if status != http.StatusForbidden {
		t.Fatalf("promote as user: status %d, want 403", status)
	}

	admin := newTestApp(svc, "user:"+owner.String(), []string{"admin"})
	status, data = doReq(t, admin, http.MethodPost, "/templates/"+tpl.ID.String()+"/promote", nil)
	if status != http.StatusOK {
		t.Fatalf("promote as admin: status %d", status)
	}
	var promoted tracker.Template
	if err := json.Unmarshal(data, &promoted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if promoted.Scope != tracker.ScopeGlobal || !promoted.Locked || promoted.OwnerID != nil {
		t.Fatalf("promoted template: %+v", promoted)
	}
}

func TestTemplates_DuplicateResolvesNameCollision(t *testing.T) {
	svc, _ := trackertest.NewService()
	owner := uuid.New()
	app := newTestApp(svc, "user:"+owner.String(), nil)

	status, data := doReq(t, app, http.MethodPost, "/templates", fiber.Map{
		"name": "Habits",
		"field_schema": []fiber.Map{
			{"id": "done", "label": "Done", "type": "boolean"},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create: status %d", status)
	}
	var tpl tracker.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		t.Fatalf("decode: %v", err)
	}

	status, data = doReq(t, app, http.MethodPost, "/templates/"+tpl.ID.String()+"/duplicate", nil)
	if status != http.StatusCreated {
		t.Fatalf("duplicate: status %d", status)
	}
	var copy1 tracker.Template
	if err := json.Unmarshal(data, &copy1); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if copy1.Name != "Habits (1)" {
		t.Fatalf("duplicate name: got %q, want %q", copy1.Name, "Habits (1)")
	}
	if copy1.Locked || copy1.Scope != tracker.ScopeUser {
		t.Fatalf("duplicate flags: %+v", copy1)
	}
}
