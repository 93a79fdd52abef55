// Package entries provides HTTP handlers for tracker entries.
package entries

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/tracker"
)

// CreateEntryRequest is the request body for recording an entry.
// swagger:model CreateEntryRequest
type CreateEntryRequest struct {
	Date   string         `json:"entry_date"`
	Values map[string]any `json:"field_values"`
	Notes  string         `json:"notes,omitempty"`
	Slot   int            `json:"slot,omitempty"`
}

// UpdateEntryRequest carries a partial entry update; values merge into the
// stored map.
// swagger:model UpdateEntryRequest
type UpdateEntryRequest struct {
	Values map[string]any `json:"field_values,omitempty"`
	Notes  *string        `json:"notes,omitempty"`
}

func principal(c *fiber.Ctx) (tracker.Principal, error) {
	id, admin, ok := mw.CurrentUser(c)
	if !ok {
		return tracker.Principal{}, fiber.ErrUnauthorized
	}
	return tracker.Principal{ID: id, Admin: admin}, nil
}

// CreateHandler records a new entry for a tracker. Duplicate daily entries
// surface as 409 directing the caller to update instead.
//
//	@Summary      Create entry
//	@Tags         entries
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                      true  "Tracker UUID"
//	@Param        body  body  entries.CreateEntryRequest  true  "entry payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Router       /api/v1/trackers/{id}/entries [post]
func CreateHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		trackerID, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var req CreateEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		e, err := svc.CreateEntry(ctx, p, trackerID, tracker.CreateEntryInput{
			Date:   req.Date,
			Values: req.Values,
			Notes:  req.Notes,
			Slot:   req.Slot,
		})
		if err != nil {
			return err
		}
		return kit.Created(c, e)
	}
}

// ListHandler lists a tracker's entries in a date window. Callers without
// view access get an empty list, not an error.
//
//	@Summary      List entries
//	@Tags         entries
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id      path   string  true   "Tracker UUID"
//	@Param        from    query  string  false  "start date YYYY-MM-DD"
//	@Param        to      query  string  false  "end date YYYY-MM-DD"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Param        sort    query  string  false  "entry_date:asc|desc"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/trackers/{id}/entries [get]
func ListHandler(svc *tracker.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		trackerID, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		obs, err := kit.ObsContext(c)
		if err != nil {
			return err
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		sort, err := kit.ParseSort(pg.Sort, "entry_date")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.ListEntries(ctx, p, trackerID, c.Query("from"), c.Query("to"), pg.Limit, pg.Offset, obs)
		if err != nil {
			return err
		}
		// store order is entry_date ascending
		if !sort.Asc {
			items = lo.Reverse(items)
		}
		nextOff := pg.Offset + len(items)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: &nextOff, HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// GetHandler returns one entry the caller can view.
//
//	@Summary      Get entry
//	@Tags         entries
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Entry UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/entries/{id} [get]
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
		e, err := svc.GetEntry(ctx, p, id, obs)
		if err != nil {
			return err
		}
		if e == nil {
			return kit.NotFound("entry not found")
		}
		return kit.OK(c, e)
	}
}

// UpdateHandler merges a partial update into an entry and revalidates the
// result against the tracker's schema snapshot.
//
//	@Summary      Update entry
//	@Tags         entries
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                      true  "Entry UUID"
//	@Param        body  body  entries.UpdateEntryRequest  true  "partial update"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/entries/{id} [patch]
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
		var req UpdateEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		e, err := svc.UpdateEntry(ctx, p, id, tracker.UpdateEntryInput{
			Values: req.Values,
			Notes:  req.Notes,
		})
		if err != nil {
			return err
		}
		return kit.OK(c, e)
	}
}
