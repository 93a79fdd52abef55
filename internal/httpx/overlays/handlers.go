// Package overlays provides HTTP handlers for context events and
// interpretation notes, including interpretation full-text search.
package overlays

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tracker-studio-api/internal/esx"
	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/logx"
	"tracker-studio-api/internal/tracker"
)

var logger = logx.GetScope("httpx.overlays")

// CreateContextEventRequest annotates a date range with a life-state event.
// swagger:model CreateContextEventRequest
type CreateContextEventRequest struct {
	TrackerID *uuid.UUID `json:"tracker_id,omitempty"`
	Label     string     `json:"label"`
	Kind      string     `json:"kind,omitempty"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date,omitempty"`
}

// CreateInterpretationRequest is a reflection note over a tracker date range.
// swagger:model CreateInterpretationRequest
type CreateInterpretationRequest struct {
	TrackerID uuid.UUID `json:"tracker_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date,omitempty"`
	Body      string    `json:"body"`
}

// UpdateInterpretationRequest replaces an interpretation's body.
// swagger:model UpdateInterpretationRequest
type UpdateInterpretationRequest struct {
	Body string `json:"body"`
}

func principal(c *fiber.Ctx) (tracker.Principal, error) {
	id, admin, ok := mw.CurrentUser(c)
	if !ok {
		return tracker.Principal{}, fiber.ErrUnauthorized
	}
	return tracker.Principal{ID: id, Admin: admin}, nil
}

// CreateEventHandler records an owner-scoped context event.
//
//	@Summary      Create context event
//	@Tags         overlays
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  overlays.CreateContextEventRequest  true  "event payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/overlays/events [post]
func CreateEventHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req CreateContextEventRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		e, err := svc.CreateContextEvent(ctx, p, tracker.CreateContextEventInput{
			TrackerID: req.TrackerID,
			Label:     req.Label,
			Kind:      req.Kind,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return err
		}
		return kit.Created(c, e)
	}
}

// ListEventsHandler lists the caller's context events.
//
//	@Summary      List context events
//	@Tags         overlays
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/overlays/events [get]
func ListEventsHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.ListContextEvents(ctx, p)
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}

// DeleteEventHandler removes a context event the caller owns.
//
//	@Summary      Delete context event
//	@Tags         overlays
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Context event UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/overlays/events/{id} [delete]
func DeleteEventHandler(svc *tracker.Service) fiber.Handler {
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
		if err := svc.DeleteContextEvent(ctx, p, id); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// CreateInterpretationHandler records a reflection note and indexes it for
// search. Indexing is best-effort; the note is the source of truth.
//
//	@Summary      Create interpretation
//	@Tags         overlays
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  overlays.CreateInterpretationRequest  true  "interpretation payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/overlays/interpretations [post]
func CreateInterpretationHandler(svc *tracker.Service, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req CreateInterpretationRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		i, err := svc.CreateInterpretation(ctx, p, tracker.CreateInterpretationInput{
			TrackerID: req.TrackerID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Body:      req.Body,
		})
		if err != nil {
			return err
		}
		if err := esx.IndexInterpretation(ctx, es, esx.DefaultIndex, esx.DocFromInterpretation(i)); err != nil {
			logger.Warn("index interpretation failed", zap.String("id", i.ID.String()), zap.Error(err))
		}
		return kit.Created(c, i)
	}
}

// ListInterpretationsHandler lists the caller's interpretations, optionally
// filtered by tracker.
//
//	@Summary      List interpretations
//	@Tags         overlays
//	@Produce      json
//	@Security     BearerAuth
//	@Param        tracker_id  query  string  false  "Tracker UUID filter"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/overlays/interpretations [get]
func ListInterpretationsHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var trackerID *uuid.UUID
		if s := c.Query("tracker_id"); s != "" {
			id, err := uuid.Parse(s)
			if err != nil {
				return kit.BadRequest("invalid tracker_id", s)
			}
			trackerID = &id
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.ListInterpretations(ctx, p, trackerID)
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}

// UpdateInterpretationHandler replaces an interpretation's body and reindexes.
//
//	@Summary      Update interpretation
//	@Tags         overlays
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                                true  "Interpretation UUID"
//	@Param        body  body  overlays.UpdateInterpretationRequest  true  "new body"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/overlays/interpretations/{id} [patch]
func UpdateInterpretationHandler(svc *tracker.Service, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var req UpdateInterpretationRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		i, err := svc.UpdateInterpretation(ctx, p, id, req.Body)
		if err != nil {
			return err
		}
		if err := esx.IndexInterpretation(ctx, es, esx.DefaultIndex, esx.DocFromInterpretation(i)); err != nil {
			logger.Warn("reindex interpretation failed", zap.String("id", i.ID.String()), zap.Error(err))
		}
		return kit.OK(c, i)
	}
}

// DeleteInterpretationHandler removes an interpretation and its document.
//
//	@Summary      Delete interpretation
//	@Tags         overlays
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Interpretation UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/overlays/interpretations/{id} [delete]
func DeleteInterpretationHandler(svc *tracker.Service, es *esx.Client) fiber.Handler {
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
		if err := svc.DeleteInterpretation(ctx, p, id); err != nil {
			return err
		}
		if err := esx.DeleteInterpretation(ctx, es, esx.DefaultIndex, id); err != nil {
			logger.Warn("delete interpretation document failed", zap.String("id", id.String()), zap.Error(err))
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// SearchInterpretationsHandler runs full-text search over the caller's own
// interpretation notes.
//
//	@Summary      Search interpretations
//	@Tags         overlays
//	@Produce      json
//	@Security     BearerAuth
//	@Param        q       query  string  true   "query text"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/overlays/interpretations/search [get]
func SearchInterpretationsHandler(es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		q := c.Query("q")
		if q == "" {
			return kit.BadRequest("q required", nil)
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		res, err := esx.SearchInterpretations(ctx, es, esx.DefaultIndex, p.ID, q, pg.Offset, pg.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, res)
	}
}
