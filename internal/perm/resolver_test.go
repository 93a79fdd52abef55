package perm

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeStore struct {
	owners   map[uuid.UUID]uuid.UUID
	archived map[uuid.UUID]time.Time
	grants   []Grant
	links    []ObservationLink
}

func (f *fakeStore) GetOwner(_ context.Context, entityID uuid.UUID) (uuid.UUID, bool, error) {
	o, ok := f.owners[entityID]
	return o, ok, nil
}

func (f *fakeStore) GetArchivalState(_ context.Context, entityID uuid.UUID) (*time.Time, error) {
	if t, ok := f.archived[entityID]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeStore) ListActiveGrants(_ context.Context, entityID, principalID uuid.UUID, groupIDs []uuid.UUID) ([]Grant, error) {
	inGroups := map[uuid.UUID]bool{}
	for _, g := range groupIDs {
		inGroups[g] = true
	}
	var out []Grant
	for _, g := range f.grants {
		if g.EntityID != entityID || g.RevokedAt != nil {
			continue
		}
		if (g.SubjectType == SubjectUser && g.SubjectID == principalID) ||
			(g.SubjectType == SubjectGroup && inGroups[g.SubjectID]) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeStore) ListActiveObservationLinks(_ context.Context, entityID, principalID uuid.UUID, obs ObservationContext) ([]ObservationLink, error) {
	var out []ObservationLink
	for _, l := range f.links {
		if l.TrackerID == entityID && l.ObserverID == principalID &&
			l.ContextType == obs.Type && l.ContextID == obs.ID && l.RevokedAt == nil {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeDir struct {
	groups map[uuid.UUID][]uuid.UUID
}

func (f *fakeDir) ResolveGroupsFor(_ context.Context, principalID uuid.UUID) ([]uuid.UUID, error) {
	return f.groups[principalID], nil
}

func newFixture() (*Resolver, *fakeStore, *fakeDir) {
	st := &fakeStore{owners: map[uuid.UUID]uuid.UUID{}, archived: map[uuid.UUID]time.Time{}}
	dir := &fakeDir{groups: map[uuid.UUID][]uuid.UUID{}}
	return NewResolver(st, dir), st, dir
}

func TestResolve_OwnerFullRights(t *testing.T) {
	r, st, _ := newFixture()
	entity, owner := uuid.New(), uuid.New()
	st.owners[entity] = owner

	p, err := r.Resolve(context.Background(), entity, owner, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !p.CanView || !p.CanEdit || !p.CanManage || !p.IsOwner {
		t.Fatalf("owner rights: %+v", p)
	}
	if p.Role != RoleOwner || p.Source != SourceOwnership {
		t.Fatalf("role/source: %+v", p)
	}
}

func TestResolve_OwnershipDominatesGrants(t *testing.T) {
	r, st, _ := newFixture()
	entity, owner := uuid.New(), uuid.New()
	st.owners[entity] = owner
	// a stray viewer grant to the owner must not cap anything
	st.grants = append(st.grants, Grant{EntityID: entity, SubjectType: SubjectUser, SubjectID: owner, Role: RoleViewer})

	p, err := r.Resolve(context.Background(), entity, owner, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !p.CanManage {
		t.Fatalf("ownership must dominate: %+v", p)
	}
}

func TestResolve_GrantMaxAcrossDirectAndGroup(t *testing.T) {
	r, st, dir := newFixture()
	entity, owner, subject, grp := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	st.owners[entity] = owner
	dir.groups[subject] = []uuid.UUID{grp}
	st.grants = append(st.grants,
		Grant{EntityID: entity, SubjectType: SubjectUser, SubjectID: subject, Role: RoleViewer},
		Grant{EntityID: entity, SubjectType: SubjectGroup, SubjectID: grp, Role: RoleEditor},
	)

	p, err := r.Resolve(context.Background(), entity, subject, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Role != RoleEditor || !p.CanEdit || p.CanManage {
		t.Fatalf("max grant: %+v", p)
	}
	if p.Source != SourceGrant {
		t.Fatalf("source: %+v", p)
	}
}

func TestResolve_CommenterAndViewerCannotEdit(t *testing.T) {
	for _, role := range []Role{RoleCommenter, RoleViewer} {
		r, st, _ := newFixture()
		entity, owner, subject := uuid.New(), uuid.New(), uuid.New()
		st.owners[entity] = owner
		st.grants = append(st.grants, Grant{EntityID: entity, SubjectType: SubjectUser, SubjectID: subject, Role: role})

		p, err := r.Resolve(context.Background(), entity, subject, nil)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !p.CanView || p.CanEdit {
			t.Fatalf("%s must be view-only: %+v", role, p)
		}
	}
}

func TestResolve_RevokedGrantIgnored(t *testing.T) {
	r, st, _ := newFixture()
	entity, owner, subject := uuid.New(), uuid.New(), uuid.New()
	st.owners[entity] = owner
	revoked := time.Now()
	st.grants = append(st.grants, Grant{EntityID: entity, SubjectType: SubjectUser, SubjectID: subject, Role: RoleEditor, RevokedAt: &revoked})

	p, err := r.Resolve(context.Background(), entity, subject, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.CanView {
		t.Fatalf("revoked grant must not grant access: %+v", p)
	}
}

func TestResolve_ObservationRequiresContext(t *testing.T) {
	r, st, _ := newFixture()
	entity, owner, observer, project := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	st.owners[entity] = owner
	st.links = append(st.links, ObservationLink{
		TrackerID: entity, ObserverID: observer,
		ContextType: ContextGuardrailsProject, ContextID: project,
	})

	// without context: no access
	p, err := r.Resolve(context.Background(), entity, observer, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.CanView {
		t.Fatalf("observation without context must deny: %+v", p)
	}

	// with matching context: read-only
	p, err = r.Resolve(context.Background(), entity, observer, &ObservationContext{Type: ContextGuardrailsProject, ID: project})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !p.CanView || p.CanEdit || p.CanManage {
		t.Fatalf("observation must be read-only: %+v", p)
	}
	if p.Role != RoleObserver || p.Source != SourceObservation {
		t.Fatalf("role/source: %+v", p)
	}

	// with a different context: no access
	p, err = r.Resolve(context.Background(), entity, observer, &ObservationContext{Type: ContextTeam, ID: project})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.CanView {
		t.Fatalf("mismatched context must deny: %+v", p)
	}
}

func TestResolve_GrantBeatsObservation(t *testing.T) {
	r, st, _ := newFixture()
	entity, owner, subject, project := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	st.owners[entity] = owner
	st.grants = append(st.grants, Grant{EntityID: entity, SubjectType: SubjectUser, SubjectID: subject, Role: RoleViewer})
	st.links = append(st.links, ObservationLink{TrackerID: entity, ObserverID: subject, ContextType: ContextTeam, ContextID: project})

	p, err := r.Resolve(context.Background(), entity, subject, &ObservationContext{Type: ContextTeam, ID: project})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Source != SourceGrant || p.Role != RoleViewer {
		t.Fatalf("grant must short-circuit observation: %+v", p)
	}
}

func TestResolve_ArchivalGate(t *testing.T) {
	r, st, _ := newFixture()
	entity, owner, subject := uuid.New(), uuid.New(), uuid.New()
	st.owners[entity] = owner
	st.archived[entity] = time.Now()
	st.grants = append(st.grants, Grant{EntityID: entity, SubjectType: SubjectUser, SubjectID: subject, Role: RoleEditor})

	// non-owner loses all access, grants notwithstanding
	p, err := r.Resolve(context.Background(), entity, subject, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.CanView {
		t.Fatalf("archived entity must hide from non-owner: %+v", p)
	}

	// owner keeps read-only + manage
	p, err = r.Resolve(context.Background(), entity, owner, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !p.CanView || p.CanEdit || !p.CanManage {
		t.Fatalf("archived owner rights: %+v", p)
	}
}

func TestResolve_UnknownEntityDenies(t *testing.T) {
	r, _, _ := newFixture()
	p, err := r.Resolve(context.Background(), uuid.New(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("unknown entity must not error: %v", err)
	}
	if p != NoAccess {
		t.Fatalf("want NoAccess, got %+v", p)
	}
}
