package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
)

// duplicate-name resolution tries "Name (1)" .. "Name (99)" before falling
// back to a timestamp suffix.
const maxNameAttempts = 99

// CreateTemplateInput carries the fields for a new user-scoped template.
type CreateTemplateInput struct {
	Name        string
	Description string
	FieldSchema []FieldDef
}

// CreateTemplate creates a user-scoped, unlocked template owned by the
// principal.
func (s *Service) CreateTemplate(ctx context.Context, p Principal, in CreateTemplateInput) (*Template, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("template name must not be blank")
	}
	if err := ValidateFieldSchema(in.FieldSchema); err != nil {
		return nil, err
	}
	owner := p.ID
	now := s.now()
	t := &Template{
		ID:          uuid.New(),
		OwnerID:     &owner,
		Name:        name,
		Description: in.Description,
		Scope:       ScopeUser,
		FieldSchema: CloneSchema(in.FieldSchema),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.templates.Create(ctx, t); err != nil {
		return nil, apperr.Wrap("create template", err)
	}
	return t, nil
}

// UpdateTemplateInput carries optional template mutations. A nil field is
// left unchanged.
type UpdateTemplateInput struct {
	Name        *string
	Description *string
	FieldSchema []FieldDef
}

// UpdateTemplate mutates a template. Global templates are always locked and
// only mutable by an admin; locked user templates are immutable until
// unlocked by their owner. Trackers created earlier keep their snapshots no
// matter what changes here.
func (s *Service) UpdateTemplate(ctx context.Context, p Principal, id uuid.UUID, in UpdateTemplateInput) (*Template, error) {
	t, err := s.templates.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if t == nil {
		return nil, apperr.NotFound("template")
	}
	if err := s.requireTemplateManage(t, p); err != nil {
		return nil, err
	}
	if t.ArchivedAt != nil {
		return nil, apperr.Permission("archived templates are read-only")
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("template name must not be blank")
		}
		t.Name = name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.FieldSchema != nil {
		if err := ValidateFieldSchema(in.FieldSchema); err != nil {
			return nil, err
		}
		t.FieldSchema = CloneSchema(in.FieldSchema)
	}
	t.UpdatedAt = s.now()
	if err := s.templates.Update(ctx, t); err != nil {
		return nil, apperr.Wrap("update template", err)
	}
	return t, nil
}

// ArchiveTemplate soft-deletes a template. Referenced trackers are unaffected:
// their snapshots are already decoupled.
func (s *Service) ArchiveTemplate(ctx context.Context, p Principal, id uuid.UUID) error {
	t, err := s.templates.Get(ctx, id)
	if err != nil {
		return apperr.Wrap("load template", err)
	}
	if t == nil {
		return apperr.NotFound("template")
	}
	if err := s.requireTemplateManage(t, p); err != nil {
		return err
	}
	if t.ArchivedAt != nil {
		return nil
	}
	now := s.now()
	t.ArchivedAt = &now
	t.UpdatedAt = now
	if err := s.templates.Update(ctx, t); err != nil {
		return apperr.Wrap("archive template", err)
	}
	return nil
}

// PromoteTemplate turns a user template into a global one: admin only,
// one-directional, force-locks and clears the owner.
func (s *Service) PromoteTemplate(ctx context.Context, p Principal, id uuid.UUID) (*Template, error) {
	if !p.Admin {
		return nil, apperr.Permission("template promotion requires an admin")
	}
	t, err := s.templates.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if t == nil {
		return nil, apperr.NotFound("template")
	}
	if t.Scope == ScopeGlobal {
		return t, nil
	}
	t.Scope = ScopeGlobal
	t.Locked = true
	t.OwnerID = nil
	t.UpdatedAt = s.now()
	if err := s.templates.Update(ctx, t); err != nil {
		return nil, apperr.Wrap("promote template", err)
	}
	s.publish(ctx, "template.promoted", map[string]any{"template_id": t.ID})
	return t, nil
}

// DuplicateTemplate copies a template the principal can see into a new
// user-scoped, unlocked template they own, resolving name collisions.
func (s *Service) DuplicateTemplate(ctx context.Context, p Principal, id uuid.UUID) (*Template, error) {
	src, err := s.templates.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if src == nil {
		return nil, apperr.NotFound("template")
	}
	visible, err := s.templateVisible(ctx, src, p)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperr.NotFound("template")
	}
	return s.copyTemplate(ctx, p, src)
}

// ImportTemplate materializes an owned copy of src for p. Share-link imports
// land here after the link itself has been validated; visibility checks are
// deliberately skipped because the token is the authorization.
func (s *Service) ImportTemplate(ctx context.Context, p Principal, src *Template) (*Template, error) {
	return s.copyTemplate(ctx, p, src)
}

// copyTemplate materializes an owned copy of src for p, used by duplication
// and share-link import.
func (s *Service) copyTemplate(ctx context.Context, p Principal, src *Template) (*Template, error) {
	name, err := s.resolveName(ctx, p.ID, src.Name)
	if err != nil {
		return nil, err
	}
	owner := p.ID
	now := s.now()
	dup := &Template{
		ID:          uuid.New(),
		OwnerID:     &owner,
		Name:        name,
		Description: src.Description,
		Scope:       ScopeUser,
		Locked:      false,
		FieldSchema: CloneSchema(src.FieldSchema),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.templates.Create(ctx, dup); err != nil {
		return nil, apperr.Wrap("create template copy", err)
	}
	return dup, nil
}

func (s *Service) resolveName(ctx context.Context, owner uuid.UUID, base string) (string, error) {
	taken, err := s.templates.NameExists(ctx, owner, base)
	if err != nil {
		return "", apperr.Wrap("check template name", err)
	}
	if !taken {
		return base, nil
	}
	for i := 1; i <= maxNameAttempts; i++ {
		cand := fmt.Sprintf("%s (%d)", base, i)
		taken, err := s.templates.NameExists(ctx, owner, cand)
		if err != nil {
			return "", apperr.Wrap("check template name", err)
		}
		if !taken {
			return cand, nil
		}
	}
	return fmt.Sprintf("%s (%d)", base, s.now().Unix()), nil
}

// GetTemplate returns a template the principal can see, or nil.
func (s *Service) GetTemplate(ctx context.Context, p Principal, id uuid.UUID) (*Template, error) {
	t, err := s.templates.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if t == nil {
		return nil, nil
	}
	visible, err := s.templateVisible(ctx, t, p)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, nil
	}
	return t, nil
}

// ListTemplates returns the principal's templates plus the global catalog.
func (s *Service) ListTemplates(ctx context.Context, p Principal) ([]*Template, error) {
	items, err := s.templates.List(ctx, p.ID, true)
	if err != nil {
		return nil, apperr.Wrap("list templates", err)
	}
	return items, nil
}

// templateVisible decides whether p may read t: global catalog entries,
// ownership and admin short-circuit; otherwise the resolver is consulted so
// template grants (direct or via group) confer view access.
func (s *Service) templateVisible(ctx context.Context, t *Template, p Principal) (bool, error) {
	if t.Scope == ScopeGlobal {
		return t.ArchivedAt == nil || p.Admin, nil
	}
	if t.OwnerID != nil && *t.OwnerID == p.ID {
		return true, nil
	}
	if p.Admin {
		return true, nil
	}
	pm, err := s.resolver.Resolve(ctx, t.ID, p.ID, nil)
	if err != nil {
		return false, apperr.Wrap("resolve permissions", err)
	}
	return pm.CanView, nil
}

// requireTemplateManage enforces the template mutation rules: global implies
// admin; locked user templates refuse mutation; otherwise owner only.
func (s *Service) requireTemplateManage(t *Template, p Principal) error {
	if t.Scope == ScopeGlobal {
		if !p.Admin {
			return apperr.Permission("global templates are locked")
		}
		return nil
	}
	if t.OwnerID == nil || *t.OwnerID != p.ID {
		if p.Admin {
			return nil
		}
		return apperr.Permission("only the template owner may modify it")
	}
	if t.Locked {
		return apperr.Permission("template is locked")
	}
	return nil
}

// SetTemplateLock toggles the lock on a user template (owner only).
func (s *Service) SetTemplateLock(ctx context.Context, p Principal, id uuid.UUID, locked bool) (*Template, error) {
	t, err := s.templates.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if t == nil {
		return nil, apperr.NotFound("template")
	}
	if t.Scope == ScopeGlobal {
		return nil, apperr.Permission("global templates are always locked")
	}
	if t.OwnerID == nil || *t.OwnerID != p.ID {
		return nil, apperr.Permission("only the template owner may change its lock")
	}
	t.Locked = locked
	t.UpdatedAt = s.now()
	if err := s.templates.Update(ctx, t); err != nil {
		return nil, apperr.Wrap("update template lock", err)
	}
	return t, nil
}
