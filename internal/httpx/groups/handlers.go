// Package groups provides HTTP handlers for grant-subject groups.
package groups

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tracker-studio-api/internal/httpx/kit"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/identity"
)

// CreateGroupRequest is the request payload to create a group.
// swagger:model CreateGroupRequest
type CreateGroupRequest struct {
	Name      string      `json:"name"`
	MemberIDs []uuid.UUID `json:"member_ids,omitempty"`
}

// CreateHandler creates a group and adds members; the caller is always
// included.
//
//	@Summary      Create group
//	@Tags         groups
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  groups.CreateGroupRequest  true  "group payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/groups [post]
func CreateHandler(store identity.GroupStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _, ok := mw.CurrentUser(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req CreateGroupRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name required", nil)
		}
		hasCaller := false
		for _, id := range req.MemberIDs {
			if id == uid {
				hasCaller = true
				break
			}
		}
		if !hasCaller {
			req.MemberIDs = append(req.MemberIDs, uid)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		gid, err := store.Create(ctx, strings.TrimSpace(req.Name))
		if err != nil {
			return err
		}
		for _, id := range req.MemberIDs {
			if err := store.AddMember(ctx, gid, id); err != nil {
				return kit.InternalError("add member failed", err.Error())
			}
		}
		return kit.Created(c, fiber.Map{"id": gid, "name": req.Name, "member_ids": req.MemberIDs})
	}
}

// AddMemberHandler adds a user to a group. Member only.
//
//	@Summary      Add group member
//	@Tags         groups
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id       path  string  true  "Group UUID"
//	@Param        user_id  path  string  true  "User UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      403  {object}  map[string]interface{}
//	@Router       /api/v1/groups/{id}/members/{user_id} [post]
func AddMemberHandler(store identity.GroupStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _, ok := mw.CurrentUser(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		gid, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		target, err := kit.UUIDParam(c, "user_id")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if err := requireMember(ctx, store, gid, uid); err != nil {
			return err
		}
		if err := store.AddMember(ctx, gid, target); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// RemoveMemberHandler removes a user from a group. Member only.
//
//	@Summary      Remove group member
//	@Tags         groups
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id       path  string  true  "Group UUID"
//	@Param        user_id  path  string  true  "User UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      403  {object}  map[string]interface{}
//	@Router       /api/v1/groups/{id}/members/{user_id} [delete]
func RemoveMemberHandler(store identity.GroupStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _, ok := mw.CurrentUser(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		gid, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		target, err := kit.UUIDParam(c, "user_id")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if err := requireMember(ctx, store, gid, uid); err != nil {
			return err
		}
		if err := store.RemoveMember(ctx, gid, target); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// ListMembersHandler lists a group's members. Member only.
//
//	@Summary      List group members
//	@Tags         groups
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Group UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Router       /api/v1/groups/{id}/members [get]
func ListMembersHandler(store identity.GroupStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _, ok := mw.CurrentUser(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		gid, err := kit.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := requireMember(ctx, store, gid, uid); err != nil {
			return err
		}
		members, err := store.ListMembers(ctx, gid)
		if err != nil {
			return err
		}
		return kit.OK(c, members)
	}
}

func requireMember(ctx context.Context, store identity.GroupStore, gid, uid uuid.UUID) error {
	members, err := store.ListMembers(ctx, gid)
	if err != nil {
		return kit.InternalError("query group failed", err.Error())
	}
	for _, m := range members {
		if m == uid {
			return nil
		}
	}
	return fiber.ErrForbidden
}
