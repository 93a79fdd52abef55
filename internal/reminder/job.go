package reminder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tracker-studio-api/internal/logx"
	"tracker-studio-api/internal/tracker"
)

var jobLogger = logx.GetScope("reminder.job")

// Job is the periodic sweep that fires due reminders. Firing is best-effort:
// a failed publish still marks the reminder fired so one broken broker cannot
// spam an owner on the next sweep.
type Job struct {
	Store    Store
	Trackers tracker.TrackerStore
	Eval     Evaluator
	Events   tracker.EventPublisher
	// MaxPerDay caps fired reminders per owner per calendar day; 0 means the
	// default of 3.
	MaxPerDay int
	Now       func() time.Time
}

// Run sweeps until ctx is done, once per interval.
func (j *Job) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := j.Sweep(ctx); err != nil {
				jobLogger.Warn("reminder sweep failed", zap.Error(err))
			} else if n > 0 {
				jobLogger.Info("reminders fired", zap.Int("count", n))
			}
		}
	}
}

// Sweep evaluates every enabled reminder once and fires the due ones. Returns
// the number fired.
func (j *Job) Sweep(ctx context.Context) (int, error) {
	now := time.Now()
	if j.Now != nil {
		now = j.Now()
	}
	maxPerDay := j.MaxPerDay
	if maxPerDay <= 0 {
		maxPerDay = 3
	}

	reminders, err := j.Store.ListEnabled(ctx)
	if err != nil {
		return 0, err
	}

	// today's fire counts per owner, seeded from rows that already fired
	firedCount := map[uuid.UUID]int{}
	// one entry_prompt per (owner, tracker) per day
	promptFired := map[[2]uuid.UUID]bool{}
	for _, r := range reminders {
		if firedToday(r, now) {
			firedCount[r.OwnerID]++
			if r.Kind == KindEntryPrompt {
				promptFired[[2]uuid.UUID{r.OwnerID, r.TrackerID}] = true
			}
		}
	}

	fired := 0
	for _, r := range reminders {
		if firedCount[r.OwnerID] >= maxPerDay {
			continue
		}
		if r.Kind == KindEntryPrompt && promptFired[[2]uuid.UUID{r.OwnerID, r.TrackerID}] {
			continue
		}
		t, err := j.Trackers.Get(ctx, r.TrackerID)
		if err != nil {
			jobLogger.Warn("load tracker failed", zap.String("reminder_id", r.ID.String()), zap.Error(err))
			continue
		}
		if t == nil || t.Archived() {
			continue
		}
		due, err := j.Eval.ShouldFire(ctx, r, now)
		if err != nil {
			jobLogger.Warn("evaluate reminder failed", zap.String("reminder_id", r.ID.String()), zap.Error(err))
			continue
		}
		if !due {
			continue
		}
		if err := j.Store.MarkFired(ctx, r.ID, now); err != nil {
			jobLogger.Warn("mark fired failed", zap.String("reminder_id", r.ID.String()), zap.Error(err))
			continue
		}
		firedCount[r.OwnerID]++
		if r.Kind == KindEntryPrompt {
			promptFired[[2]uuid.UUID{r.OwnerID, r.TrackerID}] = true
		}
		fired++
		j.publishFired(ctx, r, now)
	}
	return fired, nil
}

func (j *Job) publishFired(ctx context.Context, r *Reminder, now time.Time) {
	if j.Events == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"reminder_id": r.ID,
		"owner_id":    r.OwnerID,
		"tracker_id":  r.TrackerID,
		"kind":        r.Kind,
		"fired_at":    now,
	})
	if err != nil {
		return
	}
	if err := j.Events.Publish(ctx, "reminder.fired", body); err != nil {
		jobLogger.Warn("publish reminder.fired failed", zap.Error(err))
	}
}
