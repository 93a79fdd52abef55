// Package templates provides HTTP handlers for the template catalog.
package templates

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/tracker"
)

// CreateTemplateRequest is the request body for creating a template.
// swagger:model CreateTemplateRequest
type CreateTemplateRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	FieldSchema []tracker.FieldDef `json:"field_schema"`
}

// UpdateTemplateRequest carries optional template mutations.
// swagger:model UpdateTemplateRequest
type UpdateTemplateRequest struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	FieldSchema []tracker.FieldDef `json:"field_schema,omitempty"`
}

// SetLockRequest toggles a template's lock.
// swagger:model SetLockRequest
type SetLockRequest struct {
	Locked bool `json:"locked"`
}

func principal(c *fiber.Ctx) (tracker.Principal, error) {
	id, admin, ok := mw.CurrentUser(c)
	if !ok {
		return tracker.Principal{}, fiber.ErrUnauthorized
	}
	return tracker.Principal{ID: id, Admin: admin}, nil
}

// ListHandler lists templates visible to the caller: own plus global catalog.
//
//	@Summary      List templates
//	@Tags         templates
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/templates [get]
func ListHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.ListTemplates(ctx, p)
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}

// CreateHandler creates a user-scoped template.
//
//	@Summary      Create template
//	@Tags         templates
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  templates.CreateTemplateRequest  true  "template payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/templates [post]
func CreateHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req CreateTemplateRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		tpl, err := svc.CreateTemplate(ctx, p, tracker.CreateTemplateInput{
			Name:        req.Name,
			Description: req.Description,
			FieldSchema: req.FieldSchema,
		})
		if err != nil {
			return err
		}
		return kit.Created(c, tpl)
	}
}

// GetHandler returns one template the caller can see.
//
//	@Summary      Get template
//	@Tags         templates
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Template UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id} [get]
func GetHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		tpl, err := svc.GetTemplate(ctx, p, id)
		if err != nil {
			return err
		}
		if tpl == nil {
			return kit.NotFound("template not found")
		}
		return kit.OK(c, tpl)
	}
}

// UpdateHandler mutates a template's name, description or schema.
//
//	@Summary      Update template
//	@Tags         templates
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                           true  "Template UUID"
//	@Param        body  body  templates.UpdateTemplateRequest  true  "mutations"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id} [patch]
func UpdateHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var req UpdateTemplateRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		tpl, err := svc.UpdateTemplate(ctx, p, id, tracker.UpdateTemplateInput{
			Name:        req.Name,
			Description: req.Description,
			FieldSchema: req.FieldSchema,
		})
		if err != nil {
			return err
		}
		return kit.OK(c, tpl)
	}
}

// ArchiveHandler soft-deletes a template. Existing trackers keep their
// snapshots.
//
//	@Summary      Archive template
//	@Tags         templates
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Template UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id} [delete]
func ArchiveHandler(svc *tracker.Service) fiber.Handler {
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
		if err := svc.ArchiveTemplate(ctx, p, id); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// DuplicateHandler copies a visible template into the caller's collection.
//
//	@Summary      Duplicate template
//	@Tags         templates
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Template UUID"
//	@Success      201  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id}/duplicate [post]
func DuplicateHandler(svc *tracker.Service) fiber.Handler {
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
		tpl, err := svc.DuplicateTemplate(ctx, p, id)
		if err != nil {
			return err
		}
		return kit.Created(c, tpl)
	}
}

// PromoteHandler promotes a user template into the global catalog. Admin only.
//
//	@Summary      Promote template to global
//	@Tags         templates
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Template UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id}/promote [post]
func PromoteHandler(svc *tracker.Service) fiber.Handler {
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
		tpl, err := svc.PromoteTemplate(ctx, p, id)
		if err != nil {
			return err
		}
		return kit.OK(c, tpl)
	}
}

// SetLockHandler locks or unlocks a template.
//
//	@Summary      Lock/unlock template
//	@Tags         templates
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                    true  "Template UUID"
//	@Param        body  body  templates.SetLockRequest  true  "lock flag"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/templates/{id}/lock [post]
func SetLockHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var req SetLockRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		tpl, err := svc.SetTemplateLock(ctx, p, id, req.Locked)
		if err != nil {
			return err
		}
		return kit.OK(c, tpl)
	}
}
