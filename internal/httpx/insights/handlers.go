// Package insights provides the HTTP handler for derived tracker summaries.
package insights

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/insights"
	"tracker-studio-api/internal/tracker"
)

// SummaryHandler returns per-field aggregates for a tracker's entries in a
// date window. Results are derived and cached; entry writes invalidate them.
//
//	@Summary      Tracker insights summary
//	@Tags         insights
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id        path   string  true   "Tracker UUID"
//	@Param        from      query  string  false  "start date YYYY-MM-DD"
//	@Param        to        query  string  false  "end date YYYY-MM-DD"
//	@Param        obs_type  query  string  false  "observation context type"
//	@Param        obs_id    query  string  false  "observation context id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/trackers/{id}/insights [get]
func SummaryHandler(svc *insights.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, admin, ok := mw.CurrentUser(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		trackerID, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		obs, err := kit.ObsContext(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		sum, err := svc.Summary(ctx, tracker.Principal{ID: id, Admin: admin}, trackerID, c.Query("from"), c.Query("to"), obs)
		if err != nil {
			return err
		}
		return kit.OK(c, sum)
	}
}
