// Package trackertest provides in-memory store implementations for tests.
// The stores honor the same contracts as the ent-backed ones, including the
// entry uniqueness constraint and soft revocation, so engine and handler
// tests run without a database.
package trackertest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/perm"
	"tracker-studio-api/internal/tracker"
)

// MemStore is an in-memory implementation of every store interface the
// tracker service and the permission resolver consume.
type MemStore struct {
	mu              sync.Mutex
	Templates       map[uuid.UUID]*tracker.Template
	Trackers        map[uuid.UUID]*tracker.Tracker
	Entries         map[uuid.UUID]*tracker.Entry
	Grants          map[uuid.UUID]*perm.Grant
	Links           map[uuid.UUID]*perm.ObservationLink
	ContextEvents   map[uuid.UUID]*tracker.ContextEvent
	Interpretations map[uuid.UUID]*tracker.Interpretation
	Groups          map[uuid.UUID][]uuid.UUID // principal -> groups
}

// NewMemStore builds an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		Templates:       map[uuid.UUID]*tracker.Template{},
		Trackers:        map[uuid.UUID]*tracker.Tracker{},
		Entries:         map[uuid.UUID]*tracker.Entry{},
		Grants:          map[uuid.UUID]*perm.Grant{},
		Links:           map[uuid.UUID]*perm.ObservationLink{},
		ContextEvents:   map[uuid.UUID]*tracker.ContextEvent{},
		Interpretations: map[uuid.UUID]*tracker.Interpretation{},
		Groups:          map[uuid.UUID][]uuid.UUID{},
	}
}

// clone round-trips through JSON so callers never share pointers with the
// store, mirroring a real database round-trip.
func clone[T any](in *T) *T {
	if in == nil {
		return nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		panic(fmt.Sprintf("trackertest clone: %v", err))
	}
	out := new(T)
	if err := json.Unmarshal(b, out); err != nil {
		panic(fmt.Sprintf("trackertest clone: %v", err))
	}
	return out
}

// --- tracker.TemplateStore ---

func (m *MemStore) Create(ctx context.Context, t *tracker.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Templates[t.ID] = clone(t)
	return nil
}

func (m *MemStore) Get(ctx context.Context, id uuid.UUID) (*tracker.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.Templates[id]), nil
}

func (m *MemStore) Update(ctx context.Context, t *tracker.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Templates[t.ID]; !ok {
		return apperr.NotFound("template")
	}
	m.Templates[t.ID] = clone(t)
	return nil
}

func (m *MemStore) List(ctx context.Context, owner uuid.UUID, includeGlobal bool) ([]*tracker.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*tracker.Template
	for _, t := range m.Templates {
		if t.ArchivedAt != nil {
			continue
		}
		if (t.OwnerID != nil && *t.OwnerID == owner) || (includeGlobal && t.Scope == tracker.ScopeGlobal) {
			out = append(out, clone(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemStore) NameExists(ctx context.Context, owner uuid.UUID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.Templates {
		if t.OwnerID != nil && *t.OwnerID == owner && t.Name == name && t.ArchivedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

// TrackerStore wraps MemStore's tracker table; separate type because the
// method sets of TemplateStore and TrackerStore collide on names.
type TrackerStore struct{ M *MemStore }

func (s TrackerStore) Create(ctx context.Context, t *tracker.Tracker) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	s.M.Trackers[t.ID] = clone(t)
	return nil
}

func (s TrackerStore) Get(ctx context.Context, id uuid.UUID) (*tracker.Tracker, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	return clone(s.M.Trackers[id]), nil
}

func (s TrackerStore) Update(ctx context.Context, t *tracker.Tracker) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	cur, ok := s.M.Trackers[t.ID]
	if !ok {
		return apperr.NotFound("tracker")
	}
	next := clone(t)
	// the snapshot column is immutable in the real store
	next.SchemaSnapshot = cur.SchemaSnapshot
	s.M.Trackers[t.ID] = next
	return nil
}

func (s TrackerStore) ListByOwner(ctx context.Context, owner uuid.UUID, includeArchived bool) ([]*tracker.Tracker, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	var out []*tracker.Tracker
	for _, t := range s.M.Trackers {
		if t.OwnerID != owner {
			continue
		}
		if t.ArchivedAt != nil && !includeArchived {
			continue
		}
		out = append(out, clone(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

// EntryStore wraps MemStore's entry table.
type EntryStore struct{ M *MemStore }

func (s EntryStore) Create(ctx context.Context, e *tracker.Entry) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	for _, cur := range s.M.Entries {
		if cur.TrackerID == e.TrackerID && cur.OwnerID == e.OwnerID && cur.Date == e.Date && cur.Slot == e.Slot {
			return apperr.Conflict("duplicate entry")
		}
	}
	s.M.Entries[e.ID] = clone(e)
	return nil
}

func (s EntryStore) Get(ctx context.Context, id uuid.UUID) (*tracker.Entry, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	return clone(s.M.Entries[id]), nil
}

func (s EntryStore) GetByDate(ctx context.Context, trackerID, owner uuid.UUID, date string) (*tracker.Entry, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	for _, e := range s.M.Entries {
		if e.TrackerID == trackerID && e.OwnerID == owner && e.Date == date {
			return clone(e), nil
		}
	}
	return nil, nil
}

func (s EntryStore) Update(ctx context.Context, e *tracker.Entry) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	if _, ok := s.M.Entries[e.ID]; !ok {
		return apperr.NotFound("entry")
	}
	s.M.Entries[e.ID] = clone(e)
	return nil
}

func (s EntryStore) List(ctx context.Context, trackerID uuid.UUID, from, to string, limit, offset int) ([]*tracker.Entry, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	var out []*tracker.Entry
	for _, e := range s.M.Entries {
		if e.TrackerID != trackerID {
			continue
		}
		if from != "" && e.Date < from {
			continue
		}
		if to != "" && e.Date > to {
			continue
		}
		out = append(out, clone(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// GrantStore wraps MemStore's grant table.
type GrantStore struct{ M *MemStore }

func (s GrantStore) Create(ctx context.Context, g *perm.Grant) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	cp := *g
	s.M.Grants[g.ID] = &cp
	return nil
}

func (s GrantStore) Get(ctx context.Context, id uuid.UUID) (*perm.Grant, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	if g, ok := s.M.Grants[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, nil
}

func (s GrantStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	g, ok := s.M.Grants[id]
	if !ok {
		return apperr.NotFound("grant")
	}
	g.RevokedAt = &at
	return nil
}

func (s GrantStore) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]perm.Grant, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	var out []perm.Grant
	for _, g := range s.M.Grants {
		if g.EntityID == entityID {
			out = append(out, *g)
		}
	}
	return out, nil
}

// ObservationStore wraps MemStore's observation-link table.
type ObservationStore struct{ M *MemStore }

func (s ObservationStore) Create(ctx context.Context, l *perm.ObservationLink) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	cp := *l
	s.M.Links[l.ID] = &cp
	return nil
}

func (s ObservationStore) Get(ctx context.Context, id uuid.UUID) (*perm.ObservationLink, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	if l, ok := s.M.Links[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (s ObservationStore) FindTuple(ctx context.Context, trackerID, observerID uuid.UUID, obs perm.ObservationContext) (*perm.ObservationLink, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	for _, l := range s.M.Links {
		if l.TrackerID == trackerID && l.ObserverID == observerID && l.ContextType == obs.Type && l.ContextID == obs.ID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (s ObservationStore) Restore(ctx context.Context, id uuid.UUID) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	l, ok := s.M.Links[id]
	if !ok {
		return apperr.NotFound("observation link")
	}
	l.RevokedAt = nil
	return nil
}

func (s ObservationStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	l, ok := s.M.Links[id]
	if !ok {
		return apperr.NotFound("observation link")
	}
	l.RevokedAt = &at
	return nil
}

func (s ObservationStore) ListByTracker(ctx context.Context, trackerID uuid.UUID) ([]perm.ObservationLink, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	var out []perm.ObservationLink
	for _, l := range s.M.Links {
		if l.TrackerID == trackerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

// OverlayStore wraps MemStore's overlay tables.
type OverlayStore struct{ M *MemStore }

func (s OverlayStore) CreateContextEvent(ctx context.Context, e *tracker.ContextEvent) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	s.M.ContextEvents[e.ID] = clone(e)
	return nil
}

func (s OverlayStore) GetContextEvent(ctx context.Context, id uuid.UUID) (*tracker.ContextEvent, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	return clone(s.M.ContextEvents[id]), nil
}

func (s OverlayStore) ListContextEvents(ctx context.Context, owner uuid.UUID) ([]*tracker.ContextEvent, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	var out []*tracker.ContextEvent
	for _, e := range s.M.ContextEvents {
		if e.OwnerID == owner {
			out = append(out, clone(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (s OverlayStore) DeleteContextEvent(ctx context.Context, id uuid.UUID) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	delete(s.M.ContextEvents, id)
	return nil
}

func (s OverlayStore) CreateInterpretation(ctx context.Context, i *tracker.Interpretation) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	s.M.Interpretations[i.ID] = clone(i)
	return nil
}

func (s OverlayStore) GetInterpretation(ctx context.Context, id uuid.UUID) (*tracker.Interpretation, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	return clone(s.M.Interpretations[id]), nil
}

func (s OverlayStore) UpdateInterpretation(ctx context.Context, i *tracker.Interpretation) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	if _, ok := s.M.Interpretations[i.ID]; !ok {
		return apperr.NotFound("interpretation")
	}
	s.M.Interpretations[i.ID] = clone(i)
	return nil
}

func (s OverlayStore) ListInterpretations(ctx context.Context, owner uuid.UUID, trackerID *uuid.UUID) ([]*tracker.Interpretation, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	var out []*tracker.Interpretation
	for _, i := range s.M.Interpretations {
		if i.OwnerID != owner {
			continue
		}
		if trackerID != nil && i.TrackerID != *trackerID {
			continue
		}
		out = append(out, clone(i))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (s OverlayStore) DeleteInterpretation(ctx context.Context, id uuid.UUID) error {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	delete(s.M.Interpretations, id)
	return nil
}

// EntitlementStore implements perm.EntitlementStore over the MemStore tables,
// resolving entity ids across trackers and templates like the ent store does.
type EntitlementStore struct{ M *MemStore }

func (s EntitlementStore) GetOwner(ctx context.Context, entityID uuid.UUID) (uuid.UUID, bool, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	if t, ok := s.M.Trackers[entityID]; ok {
		return t.OwnerID, true, nil
	}
	if t, ok := s.M.Templates[entityID]; ok && t.OwnerID != nil {
		return *t.OwnerID, true, nil
	}
	return uuid.Nil, false, nil
}

func (s EntitlementStore) GetArchivalState(ctx context.Context, entityID uuid.UUID) (*time.Time, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	if t, ok := s.M.Trackers[entityID]; ok {
		return t.ArchivedAt, nil
	}
	if t, ok := s.M.Templates[entityID]; ok {
		return t.ArchivedAt, nil
	}
	return nil, nil
}

func (s EntitlementStore) ListActiveGrants(ctx context.Context, entityID, principalID uuid.UUID, groupIDs []uuid.UUID) ([]perm.Grant, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	inGroup := map[uuid.UUID]bool{}
	for _, g := range groupIDs {
		inGroup[g] = true
	}
	var out []perm.Grant
	for _, g := range s.M.Grants {
		if g.EntityID != entityID || g.RevokedAt != nil {
			continue
		}
		if (g.SubjectType == perm.SubjectUser && g.SubjectID == principalID) ||
			(g.SubjectType == perm.SubjectGroup && inGroup[g.SubjectID]) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s EntitlementStore) ListActiveObservationLinks(ctx context.Context, entityID, principalID uuid.UUID, obs perm.ObservationContext) ([]perm.ObservationLink, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	var out []perm.ObservationLink
	for _, l := range s.M.Links {
		if l.TrackerID == entityID && l.ObserverID == principalID &&
			l.ContextType == obs.Type && l.ContextID == obs.ID && l.RevokedAt == nil {
			out = append(out, *l)
		}
	}
	return out, nil
}

// GroupDirectory implements perm.GroupDirectory over the MemStore group map.
type GroupDirectory struct{ M *MemStore }

func (s GroupDirectory) ResolveGroupsFor(ctx context.Context, principalID uuid.UUID) ([]uuid.UUID, error) {
	s.M.mu.Lock()
	defer s.M.mu.Unlock()
	return append([]uuid.UUID(nil), s.M.Groups[principalID]...), nil
}

// NewService wires a tracker.Service over a fresh MemStore for tests.
func NewService(opts ...func(*tracker.Deps)) (*tracker.Service, *MemStore) {
	m := NewMemStore()
	d := tracker.Deps{
		Resolver:     perm.NewResolver(EntitlementStore{m}, GroupDirectory{m}),
		Templates:    m,
		Trackers:     TrackerStore{m},
		Entries:      EntryStore{m},
		Grants:       GrantStore{m},
		Observations: ObservationStore{m},
		Overlays:     OverlayStore{m},
	}
	for _, o := range opts {
		o(&d)
	}
	return tracker.NewService(d), m
}
