// Package sharelink implements tokenized template sharing: an owner mints an
// opaque link for a template, anyone holding the token can preview it and
// import an owned copy. Links carry optional expiry and use limits; the use
// counter is consumed with compare-and-swap so concurrent imports cannot
// oversubscribe a limited link.
package sharelink

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/tracker"
)

// Link is one share token for one template.
type Link struct {
	ID         uuid.UUID  `json:"id"`
	TemplateID uuid.UUID  `json:"template_id"`
	Token      string     `json:"token"`
	CreatedBy  uuid.UUID  `json:"created_by"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	// MaxUses caps imports; 0 means unlimited.
	MaxUses   int        `json:"max_uses"`
	UseCount  int        `json:"use_count"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Status is the validity verdict for a link, checked in a fixed order so a
// link that is both revoked and expired always reports revoked.
type Status string

// Link statuses.
const (
	StatusValid     Status = "valid"
	StatusRevoked   Status = "revoked"
	StatusExpired   Status = "expired"
	StatusExhausted Status = "exhausted"
)

// StatusAt evaluates the link's validity at a moment: revoked, then expired,
// then use-count exhaustion.
func (l *Link) StatusAt(now time.Time) Status {
	if l.RevokedAt != nil {
		return StatusRevoked
	}
	if l.ExpiresAt != nil && !now.Before(*l.ExpiresAt) {
		return StatusExpired
	}
	if l.MaxUses > 0 && l.UseCount >= l.MaxUses {
		return StatusExhausted
	}
	return StatusValid
}

// Store persists share links. ConsumeUse must increment use_count atomically
// guarded on the observed count (compare-and-swap): when the stored count no
// longer matches, it returns a ConflictError and the caller re-reads.
type Store interface {
	Create(ctx context.Context, l *Link) error
	Get(ctx context.Context, id uuid.UUID) (*Link, error)
	GetByToken(ctx context.Context, token string) (*Link, error)
	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*Link, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	ConsumeUse(ctx context.Context, id uuid.UUID, observed int) error
}

// TemplateImporter materializes an owned copy of a template for a principal.
// Satisfied by tracker.Service.
type TemplateImporter interface {
	ImportTemplate(ctx context.Context, p tracker.Principal, src *tracker.Template) (*tracker.Template, error)
}

// consume retries this many times against CAS losses before giving up.
const consumeAttempts = 3

// Service manages link lifecycle and the import flow.
type Service struct {
	store     Store
	templates tracker.TemplateStore
	importer  TemplateImporter
	now       func() time.Time
}

// NewService builds the sharelink service.
func NewService(store Store, templates tracker.TemplateStore, importer TemplateImporter) *Service {
	return &Service{store: store, templates: templates, importer: importer, now: time.Now}
}

// CreateInput mints a new link.
type CreateInput struct {
	TemplateID uuid.UUID
	ExpiresAt  *time.Time
	MaxUses    int
}

// Create mints a link for a template the principal owns. Global templates are
// shared through the catalog, not through links.
func (s *Service) Create(ctx context.Context, p tracker.Principal, in CreateInput) (*Link, error) {
	if in.MaxUses < 0 {
		return nil, apperr.Validation("max_uses must not be negative", apperr.FieldError{Field: "max_uses", Value: in.MaxUses, Message: "0 means unlimited"})
	}
	now := s.now()
	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		return nil, apperr.Validation("expires_at must be in the future", apperr.FieldError{Field: "expires_at", Value: in.ExpiresAt, Message: "already past"})
	}
	t, err := s.templates.Get(ctx, in.TemplateID)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if t == nil || t.OwnerID == nil || *t.OwnerID != p.ID {
		return nil, apperr.NotFound("template")
	}
	if t.ArchivedAt != nil {
		return nil, apperr.Validation("archived templates cannot be shared")
	}

	l := &Link{
		ID:         uuid.New(),
		TemplateID: in.TemplateID,
		Token:      newToken(),
		CreatedBy:  p.ID,
		ExpiresAt:  in.ExpiresAt,
		MaxUses:    in.MaxUses,
		CreatedAt:  now,
	}
	if err := s.store.Create(ctx, l); err != nil {
		return nil, apperr.Wrap("create share link", err)
	}
	return l, nil
}

// Revoke soft-revokes a link the principal created. Idempotent.
func (s *Service) Revoke(ctx context.Context, p tracker.Principal, id uuid.UUID) error {
	l, err := s.store.Get(ctx, id)
	if err != nil {
		return apperr.Wrap("load share link", err)
	}
	if l == nil || l.CreatedBy != p.ID {
		return apperr.NotFound("share link")
	}
	if l.RevokedAt != nil {
		return nil
	}
	if err := s.store.Revoke(ctx, id, s.now()); err != nil {
		return apperr.Wrap("revoke share link", err)
	}
	return nil
}

// List returns all links (any status) on a template the principal owns.
func (s *Service) List(ctx context.Context, p tracker.Principal, templateID uuid.UUID) ([]*Link, error) {
	t, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if t == nil || t.OwnerID == nil || *t.OwnerID != p.ID {
		return nil, apperr.NotFound("template")
	}
	items, err := s.store.ListByTemplate(ctx, templateID)
	if err != nil {
		return nil, apperr.Wrap("list share links", err)
	}
	return items, nil
}

// Preview returns the template behind a valid token without consuming a use.
// Invalid tokens of every flavor surface as not-found so callers cannot probe
// link state.
func (s *Service) Preview(ctx context.Context, token string) (*tracker.Template, error) {
	l, _, err := s.validToken(ctx, token)
	if err != nil {
		return nil, err
	}
	t, err := s.templates.Get(ctx, l.TemplateID)
	if err != nil {
		return nil, apperr.Wrap("load template", err)
	}
	if t == nil || t.ArchivedAt != nil {
		return nil, apperr.NotFound("share link")
	}
	return t, nil
}

// Import consumes one use of the link and copies the template into the
// principal's ownership. The copy is a fresh user-scoped template; later
// changes to the original never reach it.
func (s *Service) Import(ctx context.Context, p tracker.Principal, token string) (*tracker.Template, error) {
	var (
		l   *Link
		src *tracker.Template
	)
	for attempt := 0; ; attempt++ {
		var err error
		l, _, err = s.validToken(ctx, token)
		if err != nil {
			return nil, err
		}
		src, err = s.templates.Get(ctx, l.TemplateID)
		if err != nil {
			return nil, apperr.Wrap("load template", err)
		}
		if src == nil || src.ArchivedAt != nil {
			return nil, apperr.NotFound("share link")
		}
		err = s.store.ConsumeUse(ctx, l.ID, l.UseCount)
		if err == nil {
			break
		}
		if !apperr.IsConflict(err) {
			return nil, apperr.Wrap("consume share link use", err)
		}
		if attempt+1 >= consumeAttempts {
			return nil, apperr.Conflict("share link is contended; try again")
		}
	}
	return s.importer.ImportTemplate(ctx, p, src)
}

func (s *Service) validToken(ctx context.Context, token string) (*Link, Status, error) {
	if token == "" {
		return nil, "", apperr.NotFound("share link")
	}
	l, err := s.store.GetByToken(ctx, token)
	if err != nil {
		return nil, "", apperr.Wrap("load share link", err)
	}
	if l == nil {
		return nil, "", apperr.NotFound("share link")
	}
	if st := l.StatusAt(s.now()); st != StatusValid {
		return nil, st, apperr.NotFound("share link")
	}
	return l, StatusValid, nil
}

// newToken mints an opaque 256-bit URL-safe token.
func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand read only fails when the platform RNG is broken
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
