package entstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	entgrant "tracker-studio-api/ent/grant"
	"tracker-studio-api/internal/perm"
)

// GrantStore implements tracker.GrantStore.
type GrantStore struct {
	client *ent.Client
}

func (s *GrantStore) Create(ctx context.Context, g *perm.Grant) error {
	_, err := s.client.Grant.Create().
		SetID(g.ID).
		SetEntityType(entgrant.EntityType(g.EntityType)).
		SetEntityID(g.EntityID).
		SetSubjectType(entgrant.SubjectType(g.SubjectType)).
		SetSubjectID(g.SubjectID).
		SetRole(entgrant.Role(g.Role)).
		SetGrantedBy(g.GrantedBy).
		SetCreatedAt(g.CreatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *GrantStore) Get(ctx context.Context, id uuid.UUID) (*perm.Grant, error) {
	row, err := s.client.Grant.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g := grantFromRow(row)
	return &g, nil
}

func (s *GrantStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.client.Grant.UpdateOneID(id).SetRevokedAt(at).Save(ctx)
	return mapErr(err)
}

func (s *GrantStore) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]perm.Grant, error) {
	rows, err := s.client.Grant.Query().
		Where(entgrant.EntityID(entityID)).
		Order(ent.Asc(entgrant.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]perm.Grant, 0, len(rows))
	for _, row := range rows {
		out = append(out, grantFromRow(row))
	}
	return out, nil
}

func grantFromRow(row *ent.Grant) perm.Grant {
	return perm.Grant{
		ID:          row.ID,
		EntityType:  string(row.EntityType),
		EntityID:    row.EntityID,
		SubjectType: perm.SubjectType(row.SubjectType),
		SubjectID:   row.SubjectID,
		Role:        perm.Role(row.Role),
		GrantedBy:   row.GrantedBy,
		RevokedAt:   row.RevokedAt,
		CreatedAt:   row.CreatedAt,
	}
}
