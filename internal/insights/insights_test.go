package insights_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/insights"
	"tracker-studio-api/internal/perm"
	"tracker-studio-api/internal/tracker"
	"tracker-studio-api/internal/tracker/trackertest"
)

func seedTracker(t *testing.T, svc *tracker.Service, p tracker.Principal) *tracker.Tracker {
	t.Helper()
	tr, err := svc.CreateTracker(context.Background(), p, tracker.CreateTrackerInput{
		Name: "Sleep",
		FieldSchema: []tracker.FieldDef{
			{ID: "mood", Label: "Mood", Type: tracker.FieldRating, Required: true},
			{ID: "hours", Label: "Hours", Type: tracker.FieldNumber},
			{ID: "caffeinated", Label: "Caffeinated", Type: tracker.FieldBoolean},
			{ID: "note", Label: "Note", Type: tracker.FieldText},
		},
	})
	if err != nil {
		t.Fatalf("CreateTracker: %v", err)
	}
	return tr
}

func addEntry(t *testing.T, svc *tracker.Service, p tracker.Principal, trID uuid.UUID, date string, values map[string]any) {
	t.Helper()
	if _, err := svc.CreateEntry(context.Background(), p, trID, tracker.CreateEntryInput{Date: date, Values: values}); err != nil {
		t.Fatalf("CreateEntry %s: %v", date, err)
	}
}

func findStat(t *testing.T, sum *insights.Summary, id string) insights.FieldStat {
	t.Helper()
	for _, f := range sum.Fields {
		if f.FieldID == id {
			return f
		}
	}
	t.Fatalf("field %q missing from summary", id)
	return insights.FieldStat{}
}

func TestSummaryAggregates(t *testing.T) {
	trackerSvc, m := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	tr := seedTracker(t, trackerSvc, owner)

	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-01", map[string]any{"mood": 2, "hours": 6.0, "caffeinated": true})
	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-02", map[string]any{"mood": 4, "hours": 8.0, "caffeinated": false, "note": "better"})
	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-03", map[string]any{"mood": 3})

	resolver := perm.NewResolver(trackertest.EntitlementStore{M: m}, trackertest.GroupDirectory{M: m})
	svc := insights.NewService(resolver, trackertest.TrackerStore{M: m}, trackertest.EntryStore{M: m}, nil, 0)

	sum, err := svc.Summary(ctx, owner, tr.ID, "", "", nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.EntryCount != 3 {
		t.Fatalf("entry count = %d", sum.EntryCount)
	}
	if sum.FirstDate != "2026-02-01" || sum.LastDate != "2026-02-03" {
		t.Fatalf("date bounds %s..%s", sum.FirstDate, sum.LastDate)
	}

	mood := findStat(t, sum, "mood")
	if mood.Count != 3 || *mood.Min != 2 || *mood.Max != 4 || *mood.Mean != 3 {
		t.Fatalf("mood stat wrong: %+v", mood)
	}
	hours := findStat(t, sum, "hours")
	if hours.Count != 2 || *hours.Mean != 7 {
		t.Fatalf("hours stat wrong: %+v", hours)
	}
	caf := findStat(t, sum, "caffeinated")
	if caf.Count != 2 || *caf.TrueRate != 0.5 {
		t.Fatalf("caffeinated stat wrong: %+v", caf)
	}
	note := findStat(t, sum, "note")
	if note.Count != 1 || note.Mean != nil || note.TrueRate != nil {
		t.Fatalf("note stat wrong: %+v", note)
	}
}

func TestSummaryRangeFilter(t *testing.T) {
	trackerSvc, m := trackertest.NewService()
	owner := tracker.Principal{ID: uuid.New()}
	tr := seedTracker(t, trackerSvc, owner)
	addEntry(t, trackerSvc, owner, tr.ID, "2026-01-31", map[string]any{"mood": 1})
	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-01", map[string]any{"mood": 5})
	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-05", map[string]any{"mood": 3})

	resolver := perm.NewResolver(trackertest.EntitlementStore{M: m}, trackertest.GroupDirectory{M: m})
	svc := insights.NewService(resolver, trackertest.TrackerStore{M: m}, trackertest.EntryStore{M: m}, nil, 0)

	sum, err := svc.Summary(context.Background(), owner, tr.ID, "2026-02-01", "2026-02-28", nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.EntryCount != 2 {
		t.Fatalf("range should cover 2 entries, got %d", sum.EntryCount)
	}
	mood := findStat(t, sum, "mood")
	if *mood.Min != 3 || *mood.Max != 5 {
		t.Fatalf("range stats wrong: %+v", mood)
	}
}

func TestSummaryRequiresView(t *testing.T) {
	trackerSvc, m := trackertest.NewService()
	owner := tracker.Principal{ID: uuid.New()}
	stranger := tracker.Principal{ID: uuid.New()}
	tr := seedTracker(t, trackerSvc, owner)
	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-01", map[string]any{"mood": 3})

	resolver := perm.NewResolver(trackertest.EntitlementStore{M: m}, trackertest.GroupDirectory{M: m})
	svc := insights.NewService(resolver, trackertest.TrackerStore{M: m}, trackertest.EntryStore{M: m}, nil, 0)

	if _, err := svc.Summary(context.Background(), stranger, tr.ID, "", "", nil); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for stranger, got %v", err)
	}
}

func TestMemoryCacheRoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	c := insights.NewMemoryCache()
	id := uuid.New()
	sum := &insights.Summary{TrackerID: id, From: "2026-02-01", To: "2026-02-28", EntryCount: 7}

	if _, ok := c.GetSummary(ctx, id, sum.From, sum.To); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	c.SetSummary(ctx, sum, time.Minute)
	got, ok := c.GetSummary(ctx, id, sum.From, sum.To)
	if !ok || got.EntryCount != 7 {
		t.Fatalf("cache miss after set: %v %v", got, ok)
	}
	c.Invalidate(ctx, id)
	if _, ok := c.GetSummary(ctx, id, sum.From, sum.To); ok {
		t.Fatal("hit after invalidate")
	}
}

func TestSummaryServedFromCacheUntilInvalidated(t *testing.T) {
	trackerSvc, m := trackertest.NewService()
	ctx := context.Background()
	owner := tracker.Principal{ID: uuid.New()}
	tr := seedTracker(t, trackerSvc, owner)
	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-01", map[string]any{"mood": 3})

	resolver := perm.NewResolver(trackertest.EntitlementStore{M: m}, trackertest.GroupDirectory{M: m})
	cache := insights.NewMemoryCache()
	svc := insights.NewService(resolver, trackertest.TrackerStore{M: m}, trackertest.EntryStore{M: m}, cache, time.Minute)

	s1, err := svc.Summary(ctx, owner, tr.ID, "", "", nil)
	if err != nil {
		t.Fatalf("first summary: %v", err)
	}
	addEntry(t, trackerSvc, owner, tr.ID, "2026-02-02", map[string]any{"mood": 5})

	s2, err := svc.Summary(ctx, owner, tr.ID, "", "", nil)
	if err != nil {
		t.Fatalf("cached summary: %v", err)
	}
	if s2.EntryCount != s1.EntryCount {
		t.Fatalf("expected stale cached count %d, got %d", s1.EntryCount, s2.EntryCount)
	}

	svc.Invalidate(ctx, tr.ID)
	s3, err := svc.Summary(ctx, owner, tr.ID, "", "", nil)
	if err != nil {
		t.Fatalf("recomputed summary: %v", err)
	}
	if s3.EntryCount != 2 {
		t.Fatalf("expected recompute to see 2 entries, got %d", s3.EntryCount)
	}
}
