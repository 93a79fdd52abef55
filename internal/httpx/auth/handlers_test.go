package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/config"
	testutil "tracker-studio-api/internal/httpx/kit/testutil"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/identity"
)

type memAccounts struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*identity.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{rows: map[uuid.UUID]*identity.Account{}}
}

func (m *memAccounts) Create(_ context.Context, a *identity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Username == a.Username {
			return apperr.Conflict("username already taken")
		}
	}
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *memAccounts) GetByID(_ context.Context, id uuid.UUID) (*identity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row, ok := m.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, nil
}

func (m *memAccounts) GetByUsername(_ context.Context, username string) (*identity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Username == username {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) Update(_ context.Context, a *identity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	return cfg
}

func newTestApp(cfg *config.Config, accounts identity.Store) *fiber.App {
	parse := func(token string) (string, string, []string, string, error) {
		claims, err := ParseAndValidate(cfg, token)
		if err != nil {
			return "", "", nil, "", err
		}
		return claims.Subject, claims.Kind, claims.Roles, claims.DeviceID, nil
	}
	return testutil.NewApp(
		func(app *fiber.App) { app.Use(mw.JWTMiddlewareDynamic(parse)) },
		func(app *fiber.App) { app.Post("/auth/register", RegisterHandler(cfg, accounts)) },
		func(app *fiber.App) { app.Post("/auth/login", LoginHandler(cfg, accounts)) },
		func(app *fiber.App) { app.Post("/auth/refresh", RefreshHandler(cfg, accounts)) },
		func(app *fiber.App) { app.Get("/auth/me", MeHandler(accounts)) },
	)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, hdr map[string]string) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func decodeToken(t *testing.T, res *http.Response) TokenResponse {
	t.Helper()
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestRegisterLoginMe(t *testing.T) {
	cfg := newTestConfig()
	accounts := newMemAccounts()
	app := newTestApp(cfg, accounts)

	res := postJSON(t, app, "/auth/register", RegisterRequest{Username: "alice", Password: "P@ssw0rd1", DisplayName: "Alice"}, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("register status=%d", res.StatusCode)
	}
	tok := decodeToken(t, res)
	if tok.AccessToken == "" {
		t.Fatalf("missing access token")
	}

	res = postJSON(t, app, "/auth/login", LoginRequest{Username: "alice", Password: "P@ssw0rd1"}, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status=%d", res.StatusCode)
	}
	tok = decodeToken(t, res)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	mres, err := app.Test(req)
	if err != nil {
		t.Fatalf("me request: %v", err)
	}
	if mres.StatusCode != http.StatusOK {
		t.Fatalf("me status=%d", mres.StatusCode)
	}
	var env struct{ Data AccountResponse }
	if err := json.NewDecoder(mres.Body).Decode(&env); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if env.Data.Username != "alice" {
		t.Fatalf("unexpected account: %+v", env.Data)
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	cfg := newTestConfig()
	accounts := newMemAccounts()
	app := newTestApp(cfg, accounts)

	res := postJSON(t, app, "/auth/register", RegisterRequest{Username: "bob", Password: "P@ssw0rd1"}, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("register status=%d", res.StatusCode)
	}
	res = postJSON(t, app, "/auth/register", RegisterRequest{Username: "bob", Password: "P@ssw0rd2"}, nil)
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register status=%d, want 409", res.StatusCode)
	}
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	cfg := newTestConfig()
	accounts := newMemAccounts()
	app := newTestApp(cfg, accounts)

	postJSON(t, app, "/auth/register", RegisterRequest{Username: "carol", Password: "P@ssw0rd1"}, nil)
	res := postJSON(t, app, "/auth/login", LoginRequest{Username: "carol", Password: "wrong-password"}, nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("login status=%d, want 401", res.StatusCode)
	}
}

func TestRefreshFromCookie(t *testing.T) {
	cfg := newTestConfig()
	accounts := newMemAccounts()
	app := newTestApp(cfg, accounts)

	res := postJSON(t, app, "/auth/register", RegisterRequest{Username: "dave", Password: "P@ssw0rd1"}, nil)
	var refresh string
	for _, ck := range res.Cookies() {
		if ck.Name == "refresh_token" {
			refresh = ck.Value
		}
	}
	if refresh == "" {
		t.Fatalf("refresh cookie not set")
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	rres, err := app.Test(req)
	if err != nil {
		t.Fatalf("refresh request: %v", err)
	}
	if rres.StatusCode != http.StatusOK {
		t.Fatalf("refresh status=%d", rres.StatusCode)
	}
	if tok := decodeToken(t, rres); tok.AccessToken == "" {
		t.Fatalf("missing refreshed access token")
	}

	// deactivated accounts cannot refresh
	a, _ := accounts.GetByUsername(context.Background(), "dave")
	a.IsActive = false
	_ = accounts.Update(context.Background(), a)
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	rres, err = app.Test(req)
	if err != nil {
		t.Fatalf("refresh request: %v", err)
	}
	if rres.StatusCode != http.StatusUnauthorized {
		t.Fatalf("refresh for inactive account status=%d, want 401", rres.StatusCode)
	}
}
