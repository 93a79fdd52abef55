package entstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	enttemplate "tracker-studio-api/ent/template"
	entlink "tracker-studio-api/ent/templatesharelink"
	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/sharelink"
)

// ShareLinkStore implements sharelink.Store. ConsumeUse is the
// compare-and-swap: the UPDATE is guarded on the observed use_count, and zero
// affected rows means another import won the race.
type ShareLinkStore struct {
	client *ent.Client
}

func (s *ShareLinkStore) Create(ctx context.Context, l *sharelink.Link) error {
	b := s.client.TemplateShareLink.Create().
		SetID(l.ID).
		SetTemplateID(l.TemplateID).
		SetToken(l.Token).
		SetCreatedBy(l.CreatedBy).
		SetMaxUses(l.MaxUses).
		SetUseCount(l.UseCount).
		SetCreatedAt(l.CreatedAt)
	if l.ExpiresAt != nil {
		b.SetExpiresAt(*l.ExpiresAt)
	}
	_, err := b.Save(ctx)
	return mapErr(err)
}

func (s *ShareLinkStore) Get(ctx context.Context, id uuid.UUID) (*sharelink.Link, error) {
	row, err := s.client.TemplateShareLink.Query().
		Where(entlink.ID(id)).
		WithTemplate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return shareLinkFromRow(row), nil
}

func (s *ShareLinkStore) GetByToken(ctx context.Context, token string) (*sharelink.Link, error) {
	row, err := s.client.TemplateShareLink.Query().
		Where(entlink.Token(token)).
		WithTemplate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return shareLinkFromRow(row), nil
}

func (s *ShareLinkStore) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*sharelink.Link, error) {
	rows, err := s.client.TemplateShareLink.Query().
		Where(entlink.HasTemplateWith(enttemplate.ID(templateID))).
		WithTemplate().
		Order(ent.Asc(entlink.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*sharelink.Link, 0, len(rows))
	for _, row := range rows {
		out = append(out, shareLinkFromRow(row))
	}
	return out, nil
}

func (s *ShareLinkStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.client.TemplateShareLink.UpdateOneID(id).SetRevokedAt(at).Save(ctx)
	return mapErr(err)
}

func (s *ShareLinkStore) ConsumeUse(ctx context.Context, id uuid.UUID, observed int) error {
	n, err := s.client.TemplateShareLink.Update().
		Where(entlink.ID(id), entlink.UseCount(observed)).
		AddUseCount(1).
		Save(ctx)
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return apperr.Conflict("share link use count moved")
	}
	return nil
}

func shareLinkFromRow(row *ent.TemplateShareLink) *sharelink.Link {
	l := &sharelink.Link{
		ID:        row.ID,
		Token:     row.Token,
		CreatedBy: row.CreatedBy,
		ExpiresAt: row.ExpiresAt,
		MaxUses:   row.MaxUses,
		UseCount:  row.UseCount,
		RevokedAt: row.RevokedAt,
		CreatedAt: row.CreatedAt,
	}
	if row.Edges.Template != nil {
		l.TemplateID = row.Edges.Template.ID
	}
	return l
}
