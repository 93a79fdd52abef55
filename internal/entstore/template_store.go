package entstore

import (
	"context"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	enttemplate "tracker-studio-api/ent/template"
	entuser "tracker-studio-api/ent/user"
	"tracker-studio-api/internal/tracker"
)

// TemplateStore implements tracker.TemplateStore.
type TemplateStore struct {
	client *ent.Client
}

func (s *TemplateStore) Create(ctx context.Context, t *tracker.Template) error {
	rows, err := schemaToRows(t.FieldSchema)
	if err != nil {
		return err
	}
	b := s.client.Template.Create().
		SetID(t.ID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetScope(enttemplate.Scope(t.Scope)).
		SetLocked(t.Locked).
		SetFieldSchema(rows).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt)
	if t.OwnerID != nil {
		b.SetOwnerID(*t.OwnerID)
	}
	if t.ArchivedAt != nil {
		b.SetArchivedAt(*t.ArchivedAt)
	}
	_, err = b.Save(ctx)
	return mapErr(err)
}

func (s *TemplateStore) Get(ctx context.Context, id uuid.UUID) (*tracker.Template, error) {
	row, err := s.client.Template.Query().
		Where(enttemplate.ID(id)).
		WithOwner().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return templateFromRow(row)
}

func (s *TemplateStore) Update(ctx context.Context, t *tracker.Template) error {
	rows, err := schemaToRows(t.FieldSchema)
	if err != nil {
		return err
	}
	b := s.client.Template.UpdateOneID(t.ID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetScope(enttemplate.Scope(t.Scope)).
		SetLocked(t.Locked).
		SetFieldSchema(rows).
		SetUpdatedAt(t.UpdatedAt)
	if t.OwnerID != nil {
		b.SetOwnerID(*t.OwnerID)
	} else {
		b.ClearOwner()
	}
	if t.ArchivedAt != nil {
		b.SetArchivedAt(*t.ArchivedAt)
	} else {
		b.ClearArchivedAt()
	}
	_, err = b.Save(ctx)
	return mapErr(err)
}

func (s *TemplateStore) List(ctx context.Context, owner uuid.UUID, includeGlobal bool) ([]*tracker.Template, error) {
	pred := enttemplate.HasOwnerWith(entuser.ID(owner))
	if includeGlobal {
		pred = enttemplate.Or(pred, enttemplate.ScopeEQ(enttemplate.ScopeGlobal))
	}
	rows, err := s.client.Template.Query().
		Where(pred, enttemplate.ArchivedAtIsNil()).
		WithOwner().
		Order(ent.Asc(enttemplate.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*tracker.Template, 0, len(rows))
	for _, row := range rows {
		t, err := templateFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TemplateStore) NameExists(ctx context.Context, owner uuid.UUID, name string) (bool, error) {
	return s.client.Template.Query().
		Where(
			enttemplate.HasOwnerWith(entuser.ID(owner)),
			enttemplate.Name(name),
			enttemplate.ArchivedAtIsNil(),
		).
		Exist(ctx)
}

func templateFromRow(row *ent.Template) (*tracker.Template, error) {
	schema, err := schemaFromRows(row.FieldSchema)
	if err != nil {
		return nil, err
	}
	t := &tracker.Template{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Scope:       tracker.TemplateScope(row.Scope),
		Locked:      row.Locked,
		FieldSchema: schema,
		ArchivedAt:  row.ArchivedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Edges.Owner != nil {
		id := row.Edges.Owner.ID
		t.OwnerID = &id
	}
	return t, nil
}
