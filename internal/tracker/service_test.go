package tracker_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/perm"
	"tracker-studio-api/internal/tracker"
	"tracker-studio-api/internal/tracker/trackertest"
)

func mustCreateTracker(t *testing.T, svc *tracker.Service, p tracker.Principal, name string) *tracker.Tracker {
	t.Helper()
	tr, err := svc.CreateTracker(context.Background(), p, tracker.CreateTrackerInput{
		Name:        name,
		FieldSchema: moodSchema(),
	})
	if err != nil {
		t.Fatalf("CreateTracker: %v", err)
	}
	return tr
}

func grantRole(t *testing.T, m *trackertest.MemStore, entityID, subjectID uuid.UUID, role perm.Role) {
	t.Helper()
	g := &perm.Grant{
		ID:          uuid.New(),
		EntityType:  "tracker",
		EntityID:    entityID,
		SubjectType: perm.SubjectUser,
		SubjectID:   subjectID,
		Role:        role,
	}
	if err := (trackertest.GrantStore{M: m}).Create(context.Background(), g); err != nil {
		t.Fatalf("seed grant: %v", err)
	}
}

func TestSnapshotDecoupledFromTemplate(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}

	tpl, err := svc.CreateTemplate(ctx, owner, tracker.CreateTemplateInput{
		Name:        "Sleep",
		FieldSchema: moodSchema(),
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	tr, err := svc.CreateTracker(ctx, owner, tracker.CreateTrackerInput{
		Name:       "My sleep",
		TemplateID: &tpl.ID,
	})
	if err != nil {
		t.Fatalf("CreateTracker: %v", err)
	}

	// remove the required mood field from the template
	if _, err := svc.UpdateTemplate(ctx, owner, tpl.ID, tracker.UpdateTemplateInput{
		FieldSchema: []tracker.FieldDef{{ID: "hours", Label: "Hours", Type: tracker.FieldNumber}},
	}); err != nil {
		t.Fatalf("UpdateTemplate: %v", err)
	}

	got, err := svc.GetTracker(ctx, owner, tr.ID, nil)
	if err != nil {
		t.Fatalf("GetTracker: %v", err)
	}
	if len(got.SchemaSnapshot) != len(moodSchema()) {
		t.Fatalf("snapshot changed with template: %d fields", len(got.SchemaSnapshot))
	}
	// entries still validate against the original snapshot
	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date:   "2026-02-01",
		Values: map[string]any{"mood": 4},
	}); err != nil {
		t.Fatalf("CreateEntry against snapshot: %v", err)
	}
}

func TestDuplicateDailyEntryConflicts(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")

	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 4},
	}); err != nil {
		t.Fatalf("first entry: %v", err)
	}
	_, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 2},
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	// a different date is fine
	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-02", Values: map[string]any{"mood": 3},
	}); err != nil {
		t.Fatalf("second date: %v", err)
	}
}

func TestSessionGranularityAllowsMultipleEntriesPerDate(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	tr, err := svc.CreateTracker(ctx, owner, tracker.CreateTrackerInput{
		Name:        "Workouts",
		FieldSchema: moodSchema(),
		Granularity: tracker.GranularitySession,
	})
	if err != nil {
		t.Fatalf("CreateTracker: %v", err)
	}

	// same date, no slot supplied: slots are auto-assigned
	var entries []*tracker.Entry
	for i := 0; i < 3; i++ {
		e, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
			Date: "2026-02-01", Values: map[string]any{"mood": i + 1},
		})
		if err != nil {
			t.Fatalf("session entry %d: %v", i, err)
		}
		entries = append(entries, e)
	}
	for i, e := range entries {
		if e.Slot != i {
			t.Fatalf("entry %d got slot %d", i, e.Slot)
		}
	}

	items, err := svc.ListEntries(ctx, owner, tr.ID, "2026-02-01", "2026-02-01", 0, 0, nil)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("want 3 same-date entries, got %d", len(items))
	}

	// pinning an occupied slot still conflicts
	_, err = svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 5}, Slot: 1,
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError for pinned occupied slot, got %v", err)
	}
	// a free pinned slot is fine
	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 5}, Slot: 7,
	}); err != nil {
		t.Fatalf("pinned free slot: %v", err)
	}
}

func TestEventGranularityIgnoresDailyConflictRule(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	tr, err := svc.CreateTracker(ctx, owner, tracker.CreateTrackerInput{
		Name:        "Headaches",
		FieldSchema: moodSchema(),
		Granularity: tracker.GranularityEvent,
	})
	if err != nil {
		t.Fatalf("CreateTracker: %v", err)
	}

	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 2},
	}); err != nil {
		t.Fatalf("first event: %v", err)
	}
	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 4},
	}); err != nil {
		t.Fatalf("second same-date event: %v", err)
	}
}

func TestUpdateEntryMergesThenRevalidates(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")

	e, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 4, "note": "ok"},
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	// partial update leaves the required mood intact
	got, err := svc.UpdateEntry(ctx, owner, e.ID, tracker.UpdateEntryInput{
		Values: map[string]any{"hours": 7.0},
	})
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if got.Values["mood"] != float64(4) && got.Values["mood"] != 4 {
		t.Fatalf("merge lost retained field: %v", got.Values["mood"])
	}
	if got.Values["hours"] != 7.0 {
		t.Fatalf("merge missed new field: %v", got.Values["hours"])
	}

	// nulling out the required field must fail after the merge
	_, err = svc.UpdateEntry(ctx, owner, e.ID, tracker.UpdateEntryInput{
		Values: map[string]any{"mood": nil},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// a rejected update leaves the stored entry untouched
	cur, err := svc.GetEntry(ctx, owner, e.ID, nil)
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if cur.Values["mood"] == nil {
		t.Fatal("failed update mutated stored values")
	}
}

func TestViewerCannotWriteButCanRead(t *testing.T) {
	svc, m := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	viewer := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")
	grantRole(t, m, tr.ID, viewer.ID, perm.RoleViewer)

	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 4},
	}); err != nil {
		t.Fatalf("owner entry: %v", err)
	}

	_, err := svc.CreateEntry(ctx, viewer, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-02", Values: map[string]any{"mood": 3},
	})
	if !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for viewer create, got %v", err)
	}

	items, err := svc.ListEntries(ctx, viewer, tr.ID, "", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("viewer ListEntries: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("viewer should read 1 entry, got %d", len(items))
	}
}

func TestEditorGrantAllowsEntriesNotSharing(t *testing.T) {
	svc, m := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	editor := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")
	grantRole(t, m, tr.ID, editor.ID, perm.RoleEditor)

	if _, err := svc.CreateEntry(ctx, editor, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 5},
	}); err != nil {
		t.Fatalf("editor entry: %v", err)
	}

	// grants never confer manage, so an editor cannot re-share
	_, err := svc.CreateGrant(ctx, editor, tracker.CreateGrantInput{
		EntityType:  "tracker",
		EntityID:    tr.ID,
		SubjectType: perm.SubjectUser,
		SubjectID:   uuid.New(),
		Role:        perm.RoleViewer,
	})
	if !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for editor re-share, got %v", err)
	}
	if err := svc.ArchiveTracker(ctx, editor, tr.ID); !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for editor archive, got %v", err)
	}
}

func TestGroupGrantMaxWins(t *testing.T) {
	svc, m := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	member := tracker.Principal{ID: uuid.New()}
	groupID := uuid.New()
	m.Groups[member.ID] = []uuid.UUID{groupID}

	tr := mustCreateTracker(t, svc, owner, "Mood")
	grantRole(t, m, tr.ID, member.ID, perm.RoleViewer)
	g := &perm.Grant{
		ID: uuid.New(), EntityType: "tracker", EntityID: tr.ID,
		SubjectType: perm.SubjectGroup, SubjectID: groupID, Role: perm.RoleEditor,
	}
	if err := (trackertest.GrantStore{M: m}).Create(ctx, g); err != nil {
		t.Fatalf("seed group grant: %v", err)
	}

	// editor via group outranks direct viewer
	if _, err := svc.CreateEntry(ctx, member, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 3},
	}); err != nil {
		t.Fatalf("group editor entry: %v", err)
	}
}

func TestObservationRequiresContext(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	observer := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")

	obsCtx := perm.ObservationContext{Type: perm.ContextGuardrailsProject, ID: uuid.New()}
	if _, err := svc.CreateObservationLink(ctx, owner, tracker.CreateObservationLinkInput{
		TrackerID: tr.ID, ObserverID: observer.ID, Context: obsCtx,
	}); err != nil {
		t.Fatalf("CreateObservationLink: %v", err)
	}

	// no context supplied: hidden
	got, err := svc.GetTracker(ctx, observer, tr.ID, nil)
	if err != nil {
		t.Fatalf("GetTracker: %v", err)
	}
	if got != nil {
		t.Fatal("observer without context should not see the tracker")
	}

	// wrong context: still hidden
	wrong := perm.ObservationContext{Type: perm.ContextTeam, ID: obsCtx.ID}
	if got, _ := svc.GetTracker(ctx, observer, tr.ID, &wrong); got != nil {
		t.Fatal("observer with mismatched context should not see the tracker")
	}

	// matching context: read-only view
	got, err = svc.GetTracker(ctx, observer, tr.ID, &obsCtx)
	if err != nil {
		t.Fatalf("GetTracker with context: %v", err)
	}
	if got == nil {
		t.Fatal("observer with matching context should see the tracker")
	}
	_, err = svc.CreateEntry(ctx, observer, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 3},
	})
	if err == nil {
		t.Fatal("observer must not write entries")
	}
}

func TestSelfObservationRejected(t *testing.T) {
	svc, _ := trackertest.NewService()
	owner := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")

	_, err := svc.CreateObservationLink(context.Background(), owner, tracker.CreateObservationLinkInput{
		TrackerID:  tr.ID,
		ObserverID: owner.ID,
		Context:    perm.ObservationContext{Type: perm.ContextHousehold, ID: uuid.New()},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for self-observation, got %v", err)
	}
}

func TestRevokedObservationLinkRestoredOnRegrant(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	observer := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")
	obsCtx := perm.ObservationContext{Type: perm.ContextTeam, ID: uuid.New()}

	l1, err := svc.CreateObservationLink(ctx, owner, tracker.CreateObservationLinkInput{
		TrackerID: tr.ID, ObserverID: observer.ID, Context: obsCtx,
	})
	if err != nil {
		t.Fatalf("create link: %v", err)
	}
	if err := svc.RevokeObservationLink(ctx, owner, l1.ID); err != nil {
		t.Fatalf("revoke link: %v", err)
	}
	if got, _ := svc.GetTracker(ctx, observer, tr.ID, &obsCtx); got != nil {
		t.Fatal("revoked observer should not see the tracker")
	}

	l2, err := svc.CreateObservationLink(ctx, owner, tracker.CreateObservationLinkInput{
		TrackerID: tr.ID, ObserverID: observer.ID, Context: obsCtx,
	})
	if err != nil {
		t.Fatalf("re-grant link: %v", err)
	}
	if l2.ID != l1.ID {
		t.Fatalf("re-grant created a new row: %s vs %s", l2.ID, l1.ID)
	}
	if got, _ := svc.GetTracker(ctx, observer, tr.ID, &obsCtx); got == nil {
		t.Fatal("restored observer should see the tracker again")
	}
}

func TestArchiveLocksOutEveryoneButOwnerView(t *testing.T) {
	svc, m := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	editor := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")
	grantRole(t, m, tr.ID, editor.ID, perm.RoleEditor)

	if err := svc.ArchiveTracker(ctx, owner, tr.ID); err != nil {
		t.Fatalf("ArchiveTracker: %v", err)
	}
	// idempotent
	if err := svc.ArchiveTracker(ctx, owner, tr.ID); err != nil {
		t.Fatalf("second archive: %v", err)
	}

	// grantee loses access entirely
	if got, _ := svc.GetTracker(ctx, editor, tr.ID, nil); got != nil {
		t.Fatal("grantee should not see an archived tracker")
	}
	// owner retains view
	if got, _ := svc.GetTracker(ctx, owner, tr.ID, nil); got == nil {
		t.Fatal("owner should still see an archived tracker")
	}
	// but no writes, even for the owner
	_, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 3},
	})
	if !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for owner write on archived tracker, got %v", err)
	}
	if _, err := svc.UpdateTracker(ctx, owner, tr.ID, tracker.UpdateTrackerInput{}); !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for owner update on archived tracker, got %v", err)
	}
}

func TestDuplicateTemplateNameResolution(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	p := tracker.Principal{ID: uuid.New()}

	tpl, err := svc.CreateTemplate(ctx, p, tracker.CreateTemplateInput{
		Name: "Sleep Tracker", FieldSchema: moodSchema(),
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	d1, err := svc.DuplicateTemplate(ctx, p, tpl.ID)
	if err != nil {
		t.Fatalf("first duplicate: %v", err)
	}
	if d1.Name != "Sleep Tracker (1)" {
		t.Fatalf("first duplicate name = %q", d1.Name)
	}
	d2, err := svc.DuplicateTemplate(ctx, p, tpl.ID)
	if err != nil {
		t.Fatalf("second duplicate: %v", err)
	}
	if d2.Name != "Sleep Tracker (2)" {
		t.Fatalf("second duplicate name = %q", d2.Name)
	}
	if d1.Locked || d1.Scope != tracker.ScopeUser {
		t.Fatalf("duplicate should be an unlocked user template: %+v", d1)
	}
}

func TestPromoteTemplateAdminOnly(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	user := tracker.Principal{ID: uuid.New()}
	admin := tracker.Principal{ID: uuid.New(), Admin: true}

	tpl, err := svc.CreateTemplate(ctx, user, tracker.CreateTemplateInput{
		Name: "Focus", FieldSchema: moodSchema(),
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	if _, err := svc.PromoteTemplate(ctx, user, tpl.ID); !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for non-admin promote, got %v", err)
	}
	got, err := svc.PromoteTemplate(ctx, admin, tpl.ID)
	if err != nil {
		t.Fatalf("admin promote: %v", err)
	}
	if got.Scope != tracker.ScopeGlobal || !got.Locked || got.OwnerID != nil {
		t.Fatalf("promotion result wrong: %+v", got)
	}

	// the former owner can no longer edit it
	name := "Renamed"
	if _, err := svc.UpdateTemplate(ctx, user, tpl.ID, tracker.UpdateTemplateInput{Name: &name}); !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError editing promoted template, got %v", err)
	}
	// but everyone can instantiate from it
	other := tracker.Principal{ID: uuid.New()}
	if _, err := svc.CreateTracker(ctx, other, tracker.CreateTrackerInput{
		Name: "From catalog", TemplateID: &tpl.ID,
	}); err != nil {
		t.Fatalf("instantiate from global template: %v", err)
	}
}

func TestTemplateGrantConfersReadNotManage(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	grantee := tracker.Principal{ID: uuid.New()}
	stranger := tracker.Principal{ID: uuid.New()}

	tpl, err := svc.CreateTemplate(ctx, owner, tracker.CreateTemplateInput{
		Name: "Shared routine", FieldSchema: moodSchema(),
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	// before any grant: hidden
	if got, _ := svc.GetTemplate(ctx, grantee, tpl.ID); got != nil {
		t.Fatal("ungranted user should not see the template")
	}

	if _, err := svc.CreateGrant(ctx, owner, tracker.CreateGrantInput{
		EntityType:  "template",
		EntityID:    tpl.ID,
		SubjectType: perm.SubjectUser,
		SubjectID:   grantee.ID,
		Role:        perm.RoleViewer,
	}); err != nil {
		t.Fatalf("CreateGrant on template: %v", err)
	}

	got, err := svc.GetTemplate(ctx, grantee, tpl.ID)
	if err != nil {
		t.Fatalf("grantee GetTemplate: %v", err)
	}
	if got == nil {
		t.Fatal("template grant should confer view access")
	}
	if _, err := svc.DuplicateTemplate(ctx, grantee, tpl.ID); err != nil {
		t.Fatalf("grantee DuplicateTemplate: %v", err)
	}
	if _, err := svc.CreateTracker(ctx, grantee, tracker.CreateTrackerInput{
		Name: "Mine", TemplateID: &tpl.ID,
	}); err != nil {
		t.Fatalf("grantee CreateTracker from template: %v", err)
	}

	// grants never confer manage
	name := "Hijacked"
	if _, err := svc.UpdateTemplate(ctx, grantee, tpl.ID, tracker.UpdateTemplateInput{Name: &name}); !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for grantee edit, got %v", err)
	}

	// the grant is scoped to its subject
	if got, _ := svc.GetTemplate(ctx, stranger, tpl.ID); got != nil {
		t.Fatal("stranger should still not see the template")
	}
}

func TestLockedTemplateRejectsEdits(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	p := tracker.Principal{ID: uuid.New()}

	tpl, err := svc.CreateTemplate(ctx, p, tracker.CreateTemplateInput{
		Name: "Habits", FieldSchema: moodSchema(),
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	if _, err := svc.SetTemplateLock(ctx, p, tpl.ID, true); err != nil {
		t.Fatalf("lock: %v", err)
	}
	name := "Habits v2"
	if _, err := svc.UpdateTemplate(ctx, p, tpl.ID, tracker.UpdateTemplateInput{Name: &name}); !apperr.IsPermission(err) {
		t.Fatalf("expected PermissionError for locked template, got %v", err)
	}
	if _, err := svc.SetTemplateLock(ctx, p, tpl.ID, false); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := svc.UpdateTemplate(ctx, p, tpl.ID, tracker.UpdateTemplateInput{Name: &name}); err != nil {
		t.Fatalf("edit after unlock: %v", err)
	}
}

func TestListEntriesDoesNotLeakExistence(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	stranger := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")
	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-01", Values: map[string]any{"mood": 4},
	}); err != nil {
		t.Fatalf("owner entry: %v", err)
	}

	items, err := svc.ListEntries(ctx, stranger, tr.ID, "", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("stranger ListEntries: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("stranger should see an empty list, got %d", len(items))
	}
	if got, _ := svc.GetTracker(ctx, stranger, tr.ID, nil); got != nil {
		t.Fatal("stranger should not see the tracker")
	}
}

func TestReorderTrackersOwnerOnly(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	a := mustCreateTracker(t, svc, owner, "A")
	b := mustCreateTracker(t, svc, owner, "B")

	if err := svc.ReorderTrackers(ctx, owner, []uuid.UUID{b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderTrackers: %v", err)
	}
	items, err := svc.ListTrackers(ctx, owner, false)
	if err != nil {
		t.Fatalf("ListTrackers: %v", err)
	}
	if len(items) != 2 || items[0].ID != b.ID {
		t.Fatalf("reorder not applied: %+v", items)
	}

	stranger := tracker.Principal{ID: uuid.New()}
	if err := svc.ReorderTrackers(ctx, stranger, []uuid.UUID{a.ID}); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for stranger reorder, got %v", err)
	}
}

func TestOverlaysAreOwnerScoped(t *testing.T) {
	svc, _ := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	other := tracker.Principal{ID: uuid.New()}
	tr := mustCreateTracker(t, svc, owner, "Mood")

	ev, err := svc.CreateContextEvent(ctx, owner, tracker.CreateContextEventInput{
		TrackerID: &tr.ID, Label: "Vacation", StartDate: "2026-02-01", EndDate: "2026-02-10",
	})
	if err != nil {
		t.Fatalf("CreateContextEvent: %v", err)
	}
	if err := svc.DeleteContextEvent(ctx, other, ev.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError deleting someone else's event, got %v", err)
	}

	in, err := svc.CreateInterpretation(ctx, owner, tracker.CreateInterpretationInput{
		TrackerID: tr.ID, StartDate: "2026-02-01", Body: "slept badly all week",
	})
	if err != nil {
		t.Fatalf("CreateInterpretation: %v", err)
	}
	if _, err := svc.UpdateInterpretation(ctx, other, in.ID, "hijack"); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError updating someone else's note, got %v", err)
	}
	if _, err := svc.CreateInterpretation(ctx, other, tracker.CreateInterpretationInput{
		TrackerID: tr.ID, StartDate: "2026-02-01", Body: "not my tracker",
	}); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError interpreting someone else's tracker, got %v", err)
	}
}
