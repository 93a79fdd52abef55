// Package reminders provides HTTP handlers for reminder schedules.
package reminders

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/reminder"
	"tracker-studio-api/internal/tracker"
)

// CreateReminderRequest attaches a schedule to an owned tracker.
// swagger:model CreateReminderRequest
type CreateReminderRequest struct {
	TrackerID  uuid.UUID `json:"tracker_id"`
	Kind       string    `json:"kind"` // entry_prompt | reflection
	TimeOfDay  int       `json:"time_of_day"`
	DaysOfWeek []int     `json:"days_of_week,omitempty"`
}

// UpdateReminderRequest carries optional reminder mutations.
// swagger:model UpdateReminderRequest
type UpdateReminderRequest struct {
	TimeOfDay  *int  `json:"time_of_day,omitempty"`
	DaysOfWeek []int `json:"days_of_week,omitempty"`
	Enabled    *bool `json:"enabled,omitempty"`
}

func principal(c *fiber.Ctx) (tracker.Principal, error) {
	id, admin, ok := mw.CurrentUser(c)
	if !ok {
		return tracker.Principal{}, fiber.ErrUnauthorized
	}
	return tracker.Principal{ID: id, Admin: admin}, nil
}

// CreateHandler creates a reminder on a tracker the caller owns.
//
//	@Summary      Create reminder
//	@Tags         reminders
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  reminders.CreateReminderRequest  true  "reminder payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/reminders [post]
func CreateHandler(svc *reminder.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		var req CreateReminderRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		r, err := svc.Create(ctx, p, reminder.CreateInput{
			TrackerID:  req.TrackerID,
			Kind:       reminder.Kind(req.Kind),
			TimeOfDay:  req.TimeOfDay,
			DaysOfWeek: req.DaysOfWeek,
		})
		if err != nil {
			return err
		}
		return kit.Created(c, r)
	}
}

// ListHandler lists the caller's reminders.
//
//	@Summary      List my reminders
//	@Tags         reminders
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/reminders [get]
func ListHandler(svc *reminder.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := svc.List(ctx, p)
		if err != nil {
			return err
		}
		return kit.OK(c, items)
	}
}

// UpdateHandler mutates a reminder the caller owns.
//
//	@Summary      Update reminder
//	@Tags         reminders
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                           true  "Reminder UUID"
//	@Param        body  body  reminders.UpdateReminderRequest  true  "mutations"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/reminders/{id} [patch]
func UpdateHandler(svc *reminder.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var req UpdateReminderRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		r, err := svc.Update(ctx, p, id, reminder.UpdateInput{
			TimeOfDay:  req.TimeOfDay,
			DaysOfWeek: req.DaysOfWeek,
			Enabled:    req.Enabled,
		})
		if err != nil {
			return err
		}
		return kit.OK(c, r)
	}
}

// DeleteHandler removes a reminder the caller owns.
//
//	@Summary      Delete reminder
//	@Tags         reminders
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Reminder UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/reminders/{id} [delete]
func DeleteHandler(svc *reminder.Service) fiber.Handler {
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
		if err := svc.Delete(ctx, p, id); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}
