package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/perm"
)

// UUIDParam parses a path parameter as a UUID.
func UUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, BadRequest("invalid "+name, c.Params(name))
	}
	return id, nil
}

// ObsContext reads the optional observation context from the obs_type/obs_id
// query pair. Both must be present together; without them observation links
// are never consulted.
func ObsContext(c *fiber.Ctx) (*perm.ObservationContext, error) {
	typ := c.Query("obs_type")
	idStr := c.Query("obs_id")
	if typ == "" && idStr == "" {
		return nil, nil
	}
	if typ == "" || idStr == "" {
		return nil, BadRequest("obs_type and obs_id must be supplied together", nil)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, BadRequest("invalid obs_id", idStr)
	}
	return &perm.ObservationContext{Type: perm.ContextType(typ), ID: id}, nil
}
