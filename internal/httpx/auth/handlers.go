// Package auth implements registration, password login and token refresh for
// tracker accounts.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/config"
	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/identity"
)

func rolesFor(a *identity.Account) []string {
	if a.IsAdmin {
		return []string{"admin"}
	}
	return nil
}

// RegisterHandler creates a new account and issues tokens.
//
//	@Summary      Register (password)
//	@Description  Create an account with a password, then issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.RegisterRequest  true  "register"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Router       /api/v1/auth/register [post]
func RegisterHandler(cfg *config.Config, accounts identity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		username := strings.TrimSpace(req.Username)
		if username == "" || len(req.Password) < 8 {
			return kit.BadRequest("username and password (min 8 chars) required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		hash, err := HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}
		now := time.Now().UTC()
		a := &identity.Account{
			ID:           uuid.New(),
			Username:     username,
			DisplayName:  strings.TrimSpace(req.DisplayName),
			PasswordHash: hash,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := accounts.Create(ctx, a); err != nil {
			// duplicate username surfaces as a ConflictError
			return err
		}
		return issueTokens(c, cfg, a, req.DeviceID)
	}
}

// LoginHandler authenticates by username/password and issues tokens.
//
//	@Summary      Login (password)
//	@Description  Authenticate by username/password and issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.LoginRequest  true  "login"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/login [post]
func LoginHandler(cfg *config.Config, accounts identity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return kit.BadRequest("username and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		a, err := accounts.GetByUsername(ctx, req.Username)
		if err != nil {
			return kit.InternalError("load account failed", err.Error())
		}
		if a == nil || !a.IsActive || !VerifyPassword(req.Password, a.PasswordHash) {
			return fiber.ErrUnauthorized
		}
		return issueTokens(c, cfg, a, req.DeviceID)
	}
}

// RefreshHandler issues a new access token using the refresh cookie. Roles
// are re-read from the store so admin/active changes take effect on refresh.
//
//	@Summary      Refresh Access Token
//	@Description  Mint new access token from refresh cookie
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/refresh [post]
func RefreshHandler(cfg *config.Config, accounts identity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rt := c.Cookies("refresh_token")
		if rt == "" {
			return fiber.ErrUnauthorized
		}
		claims, err := ParseAndValidate(cfg, rt)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(strings.TrimPrefix(claims.Subject, "user:"))
		if err != nil {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		a, err := accounts.GetByID(ctx, id)
		if err != nil {
			return kit.InternalError("load account failed", err.Error())
		}
		if a == nil || !a.IsActive {
			return fiber.ErrUnauthorized
		}
		access, _, err := SignAccess(cfg, claims.Subject, "user", rolesFor(a), claims.DeviceID)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60, DeviceID: claims.DeviceID})
	}
}

// LogoutHandler clears the refresh cookie.
//
//	@Summary      Logout (clear refresh)
//	@Description  Clear refresh cookie; access tokens expire naturally
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      204   {string}  string  "no content"
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MeHandler returns the current account.
//
//	@Summary      Who am I
//	@Description  Return the authenticated account
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200   {object}  auth.AccountResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/me [get]
func MeHandler(accounts identity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _, ok := mw.CurrentUser(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		a, err := accounts.GetByID(ctx, id)
		if err != nil {
			return kit.InternalError("load account failed", err.Error())
		}
		if a == nil {
			return fiber.ErrUnauthorized
		}
		return kit.OK(c, AccountResponse{ID: a.ID.String(), Username: a.Username, DisplayName: a.DisplayName, IsAdmin: a.IsAdmin})
	}
}

func issueTokens(c *fiber.Ctx, cfg *config.Config, a *identity.Account, deviceID string) error {
	sub := "user:" + a.ID.String()
	access, _, err := SignAccess(cfg, sub, "user", rolesFor(a), deviceID)
	if err != nil {
		return kit.InternalError("sign access failed", err.Error())
	}
	refresh, _, err := SignRefresh(cfg, sub, "user", deviceID)
	if err != nil {
		return kit.InternalError("sign refresh failed", err.Error())
	}
	SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
	return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60, DeviceID: deviceID})
}
