// Package shares provides HTTP handlers for sharing grants and observation
// links.
package shares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/perm"
	"tracker-studio-api/internal/tracker"
)

// CreateGrantRequest shares an entity with a user or group at a role.
// swagger:model CreateGrantRequest
type CreateGrantRequest struct {
	EntityType  string    `json:"entity_type"` // tracker | template
	EntityID    uuid.UUID `json:"entity_id"`
	SubjectType string    `json:"subject_type"` // user | group
	SubjectID   uuid.UUID `json:"subject_id"`
	Role        string    `json:"role"`
}

// CreateObservationRequest consents to context-scoped read-only observation.
// swagger:model CreateObservationRequest
type CreateObservationRequest struct {
	TrackerID   uuid.UUID `json:"tracker_id"`
	ObserverID  uuid.UUID `json:"observer_id"`
	ContextType string    `json:"context_type"`
	ContextID   uuid.UUID `json:"context_id"`
}

func principal(c *fiber.Ctx) (tracker.Principal, error) {
	id, admin, ok := mw.CurrentUser(c)
	if !ok {
		return tracker.Principal{}, fiber.ErrUnauthorized
	}
	return tracker.Principal{ID: id, Admin: admin}, nil
}

// CreateGrantHandler creates a sharing grant. Owner only; grants never confer
// the right to re-share.
//
//	@Summary      Create grant
//	@Tags         shares
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  shares.CreateGrantRequest  true  "grant payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/shares/grants [post]
func CreateGrantHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req CreateGrantRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		g, err := svc.CreateGrant(ctx, p, tracker.CreateGrantInput{
			EntityType:  req.EntityType,
			EntityID:    req.EntityID,
			SubjectType: perm.SubjectType(req.SubjectType),
			SubjectID:   req.SubjectID,
			Role:        perm.Role(req.Role),
		})
		if err != nil {
			return err
		}
		return kit.Created(c, g)
	}
}

// RevokeGrantHandler soft-revokes a grant. Takes effect on the next
// resolution; there is no grace period.
//
//	@Summary      Revoke grant
//	@Tags         shares
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Grant UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/shares/grants/{id} [delete]
func RevokeGrantHandler(svc *tracker.Service) fiber.Handler {
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
		if err := svc.RevokeGrant(ctx, p, id); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// ListGrantsHandler lists grants on an entity the caller manages.
//
//	@Summary      List grants
//	@Tags         shares
//	@Produce      json
//	@Security     BearerAuth
//	@Param        entity_id  query  string  true  "Entity UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/shares/grants [get]
func ListGrantsHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		entityID, err := uuid.Parse(c.Query("entity_id"))
		if err != nil {
			return kit.BadRequest("invalid entity_id", c.Query("entity_id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.ListGrants(ctx, p, entityID)
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}

// CreateObservationHandler creates or restores an observation link.
//
//	@Summary      Create observation link
//	@Tags         shares
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  shares.CreateObservationRequest  true  "observation payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/shares/observations [post]
func CreateObservationHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req CreateObservationRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		l, err := svc.CreateObservationLink(ctx, p, tracker.CreateObservationLinkInput{
			TrackerID:  req.TrackerID,
			ObserverID: req.ObserverID,
			Context:    perm.ObservationContext{Type: perm.ContextType(req.ContextType), ID: req.ContextID},
		})
		if err != nil {
			return err
		}
		return kit.Created(c, l)
	}
}

// RevokeObservationHandler soft-revokes an observation link.
//
//	@Summary      Revoke observation link
//	@Tags         shares
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Observation link UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/shares/observations/{id} [delete]
func RevokeObservationHandler(svc *tracker.Service) fiber.Handler {
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
		if err := svc.RevokeObservationLink(ctx, p, id); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// ListObservationsHandler lists observation links on a tracker the caller
// owns.
//
//	@Summary      List observation links
//	@Tags         shares
//	@Produce      json
//	@Security     BearerAuth
//	@Param        tracker_id  query  string  true  "Tracker UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/shares/observations [get]
func ListObservationsHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		trackerID, err := uuid.Parse(c.Query("tracker_id"))
		if err != nil {
			return kit.BadRequest("invalid tracker_id", c.Query("tracker_id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.ListObservationLinks(ctx, p, trackerID)
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}
