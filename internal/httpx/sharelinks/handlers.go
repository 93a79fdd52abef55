// Package sharelinks provides HTTP handlers for template share links. The
// preview route is deliberately unauthenticated: the token is the
// authorization.
package sharelinks

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/sharelink"
	"tracker-studio-api/internal/tracker"
)

// CreateLinkRequest mints a share link for an owned template.
// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxUses   int        `json:"max_uses,omitempty"` // 0 means unlimited
}

func principal(c *fiber.Ctx) (tracker.Principal, error) {
	id, admin, ok := mw.CurrentUser(c)
	if !ok {
		return tracker.Principal{}, fiber.ErrUnauthorized
	}
	return tracker.Principal{ID: id, Admin: admin}, nil
}

// CreateHandler mints a link for a template the caller owns.
//
//	@Summary      Create share link
//	@Tags         sharelinks
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                        true  "Template UUID"
//	@Param        body  body  sharelinks.CreateLinkRequest  true  "link options"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id}/links [post]
func CreateHandler(svc *sharelink.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		templateID, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var req CreateLinkRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		l, err := svc.Create(ctx, p, sharelink.CreateInput{
			TemplateID: templateID,
			ExpiresAt:  req.ExpiresAt,
			MaxUses:    req.MaxUses,
		})
		if err != nil {
			return err
		}
		return kit.Created(c, l)
	}
}

// ListHandler lists all links on an owned template, any status.
//
//	@Summary      List share links
//	@Tags         sharelinks
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Template UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id}/links [get]
func ListHandler(svc *sharelink.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		templateID, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.List(ctx, p, templateID)
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}

// RevokeHandler revokes a link the caller created. Idempotent.
//
//	@Summary      Revoke share link
//	@Tags         sharelinks
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Link UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/links/{id} [delete]
func RevokeHandler(svc *sharelink.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if err := svc.Revoke(ctx, p, id); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// PreviewHandler shows the template behind a token without consuming a use.
// Every invalid flavor answers 404 so link state cannot be probed.
//
//	@Summary      Preview shared template
//	@Tags         sharelinks
//	@Produce      json
//	@Param        token  path  string  true  "link token"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/links/{token}/preview [get]
func PreviewHandler(svc *sharelink.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Params("token")
		if token == "" {
			return kit.BadRequest("token required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		tpl, err := svc.Preview(ctx, token)
		if err != nil {
			return err
		}
		return kit.OK(c, tpl)
	}
}

// ImportHandler consumes one use of a link and copies the template into the
// caller's collection.
//
//	@Summary      Import shared template
//	@Tags         sharelinks
//	@Produce      json
//	@Security     BearerAuth
//	@Param        token  path  string  true  "link token"
//	@Success      201  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Failure      409  {object}  map[string]interface{}
//	@Router       /api/v1/links/{token}/import [post]
func ImportHandler(svc *sharelink.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		token := c.Params("token")
		if token == "" {
			return kit.BadRequest("token required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		tpl, err := svc.Import(ctx, p, token)
		if err != nil {
			return err
		}
		return kit.Created(c, tpl)
	}
}
