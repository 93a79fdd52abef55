package entstore

import (
	"context"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	enttracker "tracker-studio-api/ent/tracker"
	entuser "tracker-studio-api/ent/user"
	"tracker-studio-api/internal/tracker"
)

// TrackerStore implements tracker.TrackerStore. The schema snapshot column is
// immutable in the generated code, so Update can never touch it.
type TrackerStore struct {
	client *ent.Client
}

func (s *TrackerStore) Create(ctx context.Context, t *tracker.Tracker) error {
	rows, err := schemaToRows(t.SchemaSnapshot)
	if err != nil {
		return err
	}
	b := s.client.Tracker.Create().
		SetID(t.ID).
		SetOwnerID(t.OwnerID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetGranularity(enttracker.Granularity(t.Granularity)).
		SetFieldSchemaSnapshot(rows).
		SetDisplayOrder(t.DisplayOrder).
		SetIcon(t.Icon).
		SetColor(t.Color).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt)
	if t.TemplateID != nil {
		b.SetTemplateID(*t.TemplateID)
	}
	if t.ChartConfig != nil {
		b.SetChartConfig(t.ChartConfig)
	}
	_, err = b.Save(ctx)
	return mapErr(err)
}

func (s *TrackerStore) Get(ctx context.Context, id uuid.UUID) (*tracker.Tracker, error) {
	row, err := s.client.Tracker.Query().
		Where(enttracker.ID(id)).
		WithOwner().
		WithTemplate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return trackerFromRow(row)
}

func (s *TrackerStore) Update(ctx context.Context, t *tracker.Tracker) error {
	b := s.client.Tracker.UpdateOneID(t.ID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetDisplayOrder(t.DisplayOrder).
		SetIcon(t.Icon).
		SetColor(t.Color).
		SetUpdatedAt(t.UpdatedAt)
	if t.ChartConfig != nil {
		b.SetChartConfig(t.ChartConfig)
	}
	if t.ArchivedAt != nil {
		b.SetArchivedAt(*t.ArchivedAt)
	} else {
		b.ClearArchivedAt()
	}
	_, err := b.Save(ctx)
	return mapErr(err)
}

func (s *TrackerStore) ListByOwner(ctx context.Context, owner uuid.UUID, includeArchived bool) ([]*tracker.Tracker, error) {
	q := s.client.Tracker.Query().
		Where(enttracker.HasOwnerWith(entuser.ID(owner))).
		WithOwner().
		WithTemplate().
		Order(ent.Asc(enttracker.FieldDisplayOrder), ent.Asc(enttracker.FieldCreatedAt))
	if !includeArchived {
		q = q.Where(enttracker.ArchivedAtIsNil())
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*tracker.Tracker, 0, len(rows))
	for _, row := range rows {
		t, err := trackerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func trackerFromRow(row *ent.Tracker) (*tracker.Tracker, error) {
	schema, err := schemaFromRows(row.FieldSchemaSnapshot)
	if err != nil {
		return nil, err
	}
	t := &tracker.Tracker{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		Granularity:    tracker.Granularity(row.Granularity),
		SchemaSnapshot: schema,
		DisplayOrder:   row.DisplayOrder,
		ChartConfig:    row.ChartConfig,
		Icon:           row.Icon,
		Color:          row.Color,
		ArchivedAt:     row.ArchivedAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.Edges.Owner != nil {
		t.OwnerID = row.Edges.Owner.ID
	}
	if row.Edges.Template != nil {
		id := row.Edges.Template.ID
		t.TemplateID = &id
	}
	return t, nil
}
