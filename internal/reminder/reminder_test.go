package reminder_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/reminder"
	"tracker-studio-api/internal/tracker"
	"tracker-studio-api/internal/tracker/trackertest"
)

type memReminderStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*reminder.Reminder
}

func newMemReminderStore() *memReminderStore {
	return &memReminderStore{rows: map[uuid.UUID]*reminder.Reminder{}}
}

func (s *memReminderStore) Create(ctx context.Context, r *reminder.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.rows[r.ID] = &cp
	return nil
}

func (s *memReminderStore) Get(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rows[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (s *memReminderStore) Update(ctx context.Context, r *reminder.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[r.ID]; !ok {
		return apperr.NotFound("reminder")
	}
	cp := *r
	s.rows[r.ID] = &cp
	return nil
}

func (s *memReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

func (s *memReminderStore) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*reminder.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reminder.Reminder
	for _, r := range s.rows {
		if r.OwnerID == owner {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memReminderStore) ListEnabled(ctx context.Context) ([]*reminder.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reminder.Reminder
	for _, r := range s.rows {
		if r.Enabled {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memReminderStore) MarkFired(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return apperr.NotFound("reminder")
	}
	r.LastFiredAt = &at
	return nil
}

type capturePublisher struct {
	mu   sync.Mutex
	keys []string
	body [][]byte
}

func (p *capturePublisher) Publish(ctx context.Context, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.body = append(p.body, body)
	return nil
}

func at(hour, min int) time.Time {
	// 2026-02-02 is a Monday
	return time.Date(2026, 2, 2, hour, min, 0, 0, time.UTC)
}

func TestQuietHoursWrapMidnight(t *testing.T) {
	w := reminder.Window{QuietStartMin: 22 * 60, QuietEndMin: 7 * 60, ToleranceMin: 5}
	cases := []struct {
		minute int
		quiet  bool
	}{
		{21*60 + 59, false},
		{22 * 60, true},
		{23*60 + 30, true},
		{0, true},
		{6*60 + 59, true},
		{7 * 60, false},
		{12 * 60, false},
	}
	for _, tc := range cases {
		if got := w.InQuietHours(tc.minute); got != tc.quiet {
			t.Errorf("InQuietHours(%d) = %v, want %v", tc.minute, got, tc.quiet)
		}
	}
}

func seedReminderEnv(t *testing.T) (*tracker.Service, *trackertest.MemStore, tracker.Principal, *tracker.Tracker) {
	t.Helper()
	svc, m := trackertest.NewService()
	owner := tracker.Principal{ID: uuid.New()}
	tr, err := svc.CreateTracker(context.Background(), owner, tracker.CreateTrackerInput{
		Name: "Mood",
		FieldSchema: []tracker.FieldDef{
			{ID: "mood", Label: "Mood", Type: tracker.FieldRating, Required: true},
		},
	})
	if err != nil {
		t.Fatalf("CreateTracker: %v", err)
	}
	return svc, m, owner, tr
}

func TestEntryPromptFiresOnlyWhenEntryMissing(t *testing.T) {
	svc, m, owner, tr := seedReminderEnv(t)
	ctx := context.Background()
	ev := reminder.Evaluator{Entries: trackertest.EntryStore{M: m}, Window: reminder.DefaultWindow}
	r := &reminder.Reminder{
		ID: uuid.New(), OwnerID: owner.ID, TrackerID: tr.ID,
		Kind: reminder.KindEntryPrompt, TimeOfDay: 9 * 60, Enabled: true,
	}

	due, err := ev.ShouldFire(ctx, r, at(9, 0))
	if err != nil || !due {
		t.Fatalf("prompt should fire with no entry: due=%v err=%v", due, err)
	}

	if _, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-02", Values: map[string]any{"mood": 3},
	}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	due, err = ev.ShouldFire(ctx, r, at(9, 0))
	if err != nil || due {
		t.Fatalf("prompt should not fire once entry exists: due=%v err=%v", due, err)
	}
}

func TestReflectionFiresOnlyOnNotelessEntry(t *testing.T) {
	svc, m, owner, tr := seedReminderEnv(t)
	ctx := context.Background()
	ev := reminder.Evaluator{Entries: trackertest.EntryStore{M: m}, Window: reminder.DefaultWindow}
	r := &reminder.Reminder{
		ID: uuid.New(), OwnerID: owner.ID, TrackerID: tr.ID,
		Kind: reminder.KindReflection, TimeOfDay: 20 * 60, Enabled: true,
	}

	// no entry at all: nothing to reflect on
	due, err := ev.ShouldFire(ctx, r, at(20, 0))
	if err != nil || due {
		t.Fatalf("reflection should not fire without an entry: due=%v err=%v", due, err)
	}

	e, err := svc.CreateEntry(ctx, owner, tr.ID, tracker.CreateEntryInput{
		Date: "2026-02-02", Values: map[string]any{"mood": 3},
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	due, err = ev.ShouldFire(ctx, r, at(20, 0))
	if err != nil || !due {
		t.Fatalf("reflection should fire on a noteless entry: due=%v err=%v", due, err)
	}

	notes := "slept well after the walk"
	if _, err := svc.UpdateEntry(ctx, owner, e.ID, tracker.UpdateEntryInput{Notes: &notes}); err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	due, err = ev.ShouldFire(ctx, r, at(20, 0))
	if err != nil || due {
		t.Fatalf("reflection should not fire once notes exist: due=%v err=%v", due, err)
	}
}

func TestEvaluatorWindowRules(t *testing.T) {
	_, m, owner, tr := seedReminderEnv(t)
	ctx := context.Background()
	ev := reminder.Evaluator{Entries: trackertest.EntryStore{M: m}, Window: reminder.DefaultWindow}
	r := &reminder.Reminder{
		ID: uuid.New(), OwnerID: owner.ID, TrackerID: tr.ID,
		Kind: reminder.KindEntryPrompt, TimeOfDay: 9 * 60, Enabled: true,
	}

	// within ±5 minutes fires, outside does not
	for _, tc := range []struct {
		now  time.Time
		want bool
	}{
		{at(8, 55), true},
		{at(9, 5), true},
		{at(8, 54), false},
		{at(9, 6), false},
	} {
		due, err := ev.ShouldFire(ctx, r, tc.now)
		if err != nil {
			t.Fatalf("ShouldFire: %v", err)
		}
		if due != tc.want {
			t.Errorf("at %s due=%v, want %v", tc.now.Format("15:04"), due, tc.want)
		}
	}

	// a schedule inside quiet hours never fires
	night := &reminder.Reminder{
		ID: uuid.New(), OwnerID: owner.ID, TrackerID: tr.ID,
		Kind: reminder.KindEntryPrompt, TimeOfDay: 23 * 60, Enabled: true,
	}
	if due, _ := ev.ShouldFire(ctx, night, at(23, 0)); due {
		t.Fatal("reminder fired inside quiet hours")
	}

	// disabled never fires
	r.Enabled = false
	if due, _ := ev.ShouldFire(ctx, r, at(9, 0)); due {
		t.Fatal("disabled reminder fired")
	}
	r.Enabled = true

	// wrong weekday never fires (2026-02-02 is a Monday)
	r.DaysOfWeek = []int{6, 7}
	if due, _ := ev.ShouldFire(ctx, r, at(9, 0)); due {
		t.Fatal("reminder fired on an unscheduled weekday")
	}
	r.DaysOfWeek = []int{1}
	if due, _ := ev.ShouldFire(ctx, r, at(9, 0)); !due {
		t.Fatal("reminder did not fire on its scheduled weekday")
	}

	// already fired today never fires again
	fired := at(8, 56)
	r.LastFiredAt = &fired
	if due, _ := ev.ShouldFire(ctx, r, at(9, 0)); due {
		t.Fatal("reminder fired twice in one day")
	}
}

func TestSweepFiresAndCaps(t *testing.T) {
	_, m, owner, tr := seedReminderEnv(t)
	ctx := context.Background()
	store := newMemReminderStore()
	pub := &capturePublisher{}

	// four due reminders for one owner across distinct trackers; cap is 3
	trackers := []*tracker.Tracker{tr}
	for i := 0; i < 3; i++ {
		tt := &tracker.Tracker{
			ID: uuid.New(), OwnerID: owner.ID, Name: "extra",
			Granularity:    tracker.GranularityDaily,
			SchemaSnapshot: []tracker.FieldDef{{ID: "mood", Label: "Mood", Type: tracker.FieldRating}},
		}
		if err := (trackertest.TrackerStore{M: m}).Create(ctx, tt); err != nil {
			t.Fatalf("seed tracker: %v", err)
		}
		trackers = append(trackers, tt)
	}
	for _, tt := range trackers {
		if err := store.Create(ctx, &reminder.Reminder{
			ID: uuid.New(), OwnerID: owner.ID, TrackerID: tt.ID,
			Kind: reminder.KindEntryPrompt, TimeOfDay: 9 * 60, Enabled: true,
		}); err != nil {
			t.Fatalf("seed reminder: %v", err)
		}
	}

	job := &reminder.Job{
		Store:     store,
		Trackers:  trackertest.TrackerStore{M: m},
		Eval:      reminder.Evaluator{Entries: trackertest.EntryStore{M: m}, Window: reminder.DefaultWindow},
		Events:    pub,
		MaxPerDay: 3,
		Now:       func() time.Time { return at(9, 0) },
	}
	fired, err := job.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if fired != 3 {
		t.Fatalf("fired %d, want cap of 3", fired)
	}
	if len(pub.keys) != 3 {
		t.Fatalf("published %d events, want 3", len(pub.keys))
	}
	for _, k := range pub.keys {
		if k != "reminder.fired" {
			t.Fatalf("unexpected routing key %q", k)
		}
	}
	var payload map[string]any
	if err := json.Unmarshal(pub.body[0], &payload); err != nil {
		t.Fatalf("event payload: %v", err)
	}
	if payload["kind"] != string(reminder.KindEntryPrompt) {
		t.Fatalf("payload kind = %v", payload["kind"])
	}

	// second sweep in the same window fires nothing
	fired, err = job.Sweep(ctx)
	if err != nil {
		t.Fatalf("second Sweep: %v", err)
	}
	if fired != 0 {
		t.Fatalf("second sweep fired %d, want 0", fired)
	}
}

func TestSweepSkipsArchivedTrackers(t *testing.T) {
	svc, m, owner, tr := seedReminderEnv(t)
	ctx := context.Background()
	store := newMemReminderStore()
	if err := store.Create(ctx, &reminder.Reminder{
		ID: uuid.New(), OwnerID: owner.ID, TrackerID: tr.ID,
		Kind: reminder.KindEntryPrompt, TimeOfDay: 9 * 60, Enabled: true,
	}); err != nil {
		t.Fatalf("seed reminder: %v", err)
	}
	if err := svc.ArchiveTracker(ctx, owner, tr.ID); err != nil {
		t.Fatalf("ArchiveTracker: %v", err)
	}

	job := &reminder.Job{
		Store:    store,
		Trackers: trackertest.TrackerStore{M: m},
		Eval:     reminder.Evaluator{Entries: trackertest.EntryStore{M: m}, Window: reminder.DefaultWindow},
		Now:      func() time.Time { return at(9, 0) },
	}
	fired, err := job.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if fired != 0 {
		t.Fatalf("archived tracker fired %d reminders", fired)
	}
}

func TestReminderCRUDOwnerScoped(t *testing.T) {
	_, m, owner, tr := seedReminderEnv(t)
	ctx := context.Background()
	store := newMemReminderStore()
	svc := reminder.NewService(store, trackertest.TrackerStore{M: m})

	r, err := svc.Create(ctx, owner, reminder.CreateInput{
		TrackerID: tr.ID, Kind: reminder.KindEntryPrompt, TimeOfDay: 9 * 60, DaysOfWeek: []int{1, 3, 5},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stranger := tracker.Principal{ID: uuid.New()}
	if _, err := svc.Create(ctx, stranger, reminder.CreateInput{
		TrackerID: tr.ID, Kind: reminder.KindEntryPrompt, TimeOfDay: 9 * 60,
	}); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for stranger create, got %v", err)
	}
	if err := svc.Delete(ctx, stranger, r.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for stranger delete, got %v", err)
	}

	if _, err := svc.Create(ctx, owner, reminder.CreateInput{
		TrackerID: tr.ID, Kind: "nudge", TimeOfDay: 9 * 60,
	}); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for bad kind, got %v", err)
	}
	if _, err := svc.Create(ctx, owner, reminder.CreateInput{
		TrackerID: tr.ID, Kind: reminder.KindEntryPrompt, TimeOfDay: 24 * 60,
	}); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for bad time, got %v", err)
	}

	off := false
	got, err := svc.Update(ctx, owner, r.ID, reminder.UpdateInput{Enabled: &off})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Enabled {
		t.Fatal("update did not disable the reminder")
	}

	items, err := svc.List(ctx, owner)
	if err != nil || len(items) != 1 {
		t.Fatalf("List: %v %d", err, len(items))
	}
	if err := svc.Delete(ctx, owner, r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
