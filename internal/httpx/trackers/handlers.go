// Package trackers provides HTTP handlers for the tracker lifecycle.
package trackers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/tracker"
)

// CreateTrackerRequest is the request body for creating a tracker, either
// from a template or from a raw schema.
// swagger:model CreateTrackerRequest
type CreateTrackerRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	TemplateID  *uuid.UUID          `json:"template_id,omitempty"`
	FieldSchema []tracker.FieldDef  `json:"field_schema,omitempty"`
	Granularity tracker.Granularity `json:"granularity,omitempty"`
	ChartConfig map[string]any      `json:"chart_config,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Color       string              `json:"color,omitempty"`
}

// UpdateTrackerRequest carries optional tracker mutations. The schema
// snapshot is immutable and deliberately absent.
// swagger:model UpdateTrackerRequest
type UpdateTrackerRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	ChartConfig map[string]any `json:"chart_config,omitempty"`
	Icon        *string        `json:"icon,omitempty"`
	Color       *string        `json:"color,omitempty"`
}

// ReorderRequest sets the caller's tracker display order.
// swagger:model ReorderRequest
type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func principal(c *fiber.Ctx) (tracker.Principal, error) {
	id, admin, ok := mw.CurrentUser(c)
	if !ok {
		return tracker.Principal{}, fiber.ErrUnauthorized
	}
	return tracker.Principal{ID: id, Admin: admin}, nil
}

// ListHandler lists the caller's trackers.
//
//	@Summary      List my trackers
//	@Tags         trackers
//	@Produce      json
//	@Security     BearerAuth
//	@Param        include_archived  query  bool  false  "include archived trackers"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/trackers [get]
func ListHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.ListTrackers(ctx, p, c.QueryBool("include_archived", false))
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}

// CreateHandler creates a tracker; the field schema is frozen at this moment.
//
//	@Summary      Create tracker
//	@Tags         trackers
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  trackers.CreateTrackerRequest  true  "tracker payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/trackers [post]
func CreateHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req CreateTrackerRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		t, err := svc.CreateTracker(ctx, p, tracker.CreateTrackerInput{
			Name:        req.Name,
			Description: req.Description,
			TemplateID:  req.TemplateID,
			FieldSchema: req.FieldSchema,
			Granularity: req.Granularity,
			ChartConfig: req.ChartConfig,
			Icon:        req.Icon,
			Color:       req.Color,
		})
		if err != nil {
			return err
		}
		return kit.Created(c, t)
	}
}

// GetHandler returns one tracker the caller can view.
//
//	@Summary      Get tracker
//	@Tags         trackers
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id        path   string  true   "Tracker UUID"
//	@Param        obs_type  query  string  false  "observation context type"
//	@Param        obs_id    query  string  false  "observation context id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/trackers/{id} [get]
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
		obs, err := kit.ObsContext(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		t, err := svc.GetTracker(ctx, p, id, obs)
		if err != nil {
			return err
		}
		if t == nil {
			return kit.NotFound("tracker not found")
		}
		return kit.OK(c, t)
	}
}

// UpdateHandler mutates name/description/config of a tracker.
//
//	@Summary      Update tracker
//	@Tags         trackers
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                         true  "Tracker UUID"
//	@Param        body  body  trackers.UpdateTrackerRequest  true  "mutations"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/trackers/{id} [patch]
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
		var req UpdateTrackerRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		t, err := svc.UpdateTracker(ctx, p, id, tracker.UpdateTrackerInput{
			Name:        req.Name,
			Description: req.Description,
			ChartConfig: req.ChartConfig,
			Icon:        req.Icon,
			Color:       req.Color,
		})
		if err != nil {
			return err
		}
		return kit.OK(c, t)
	}
}

// ArchiveHandler soft-deletes a tracker. Data is retained; the tracker
// becomes read-only for the owner and invisible to everyone else.
//
//	@Summary      Archive tracker
//	@Tags         trackers
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Tracker UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/trackers/{id} [delete]
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
		if err := svc.ArchiveTracker(ctx, p, id); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// ReorderHandler sets the display order of the caller's trackers.
//
//	@Summary      Reorder trackers
//	@Tags         trackers
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  trackers.ReorderRequest  true  "ordered tracker ids"
//	@Success      200   {object}  map[string]string
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/trackers/reorder [put]
func ReorderHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req ReorderRequest
		if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
			return kit.BadRequest("ids required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if err := svc.ReorderTrackers(ctx, p, req.IDs); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// PermissionsHandler surfaces the caller's resolved capabilities on a
// tracker, for UI hints.
//
//	@Summary      Resolve my permissions on a tracker
//	@Tags         trackers
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id        path   string  true   "Tracker UUID"
//	@Param        obs_type  query  string  false  "observation context type"
//	@Param        obs_id    query  string  false  "observation context id"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/trackers/{id}/permissions [get]
func PermissionsHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		obs, err := kit.ObsContext(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		pm, err := svc.Resolve(ctx, id, p.ID, obs)
		if err != nil {
			return err
		}
		return kit.OK(c, pm)
	}
}
