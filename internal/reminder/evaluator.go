package reminder

import (
	"context"
	"time"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/tracker"
)

// Window holds the firing rules a sweep evaluates against.
type Window struct {
	// QuietStartMin..QuietEndMin (minutes since midnight) suppress firing;
	// the range may wrap past midnight, e.g. 22:00..07:00.
	QuietStartMin int
	QuietEndMin   int
	// ToleranceMin widens the scheduled minute into a window so a sweep that
	// runs every minute or so cannot skip over it.
	ToleranceMin int
}

// DefaultWindow is quiet 22:00..07:00 with a five minute firing tolerance.
var DefaultWindow = Window{QuietStartMin: 22 * 60, QuietEndMin: 7 * 60, ToleranceMin: 5}

// InQuietHours reports whether the minute-of-day falls in the suppressed
// range. A wrapped range (start > end) covers the overnight span.
func (w Window) InQuietHours(minute int) bool {
	if w.QuietStartMin == w.QuietEndMin {
		return false
	}
	if w.QuietStartMin < w.QuietEndMin {
		return minute >= w.QuietStartMin && minute < w.QuietEndMin
	}
	return minute >= w.QuietStartMin || minute < w.QuietEndMin
}

// withinTolerance reports whether minute is within ±ToleranceMin of scheduled,
// treating the day as circular so a 23:58 schedule matches 00:02.
func (w Window) withinTolerance(minute, scheduled int) bool {
	d := minute - scheduled
	if d < 0 {
		d = -d
	}
	if wrap := 24*60 - d; wrap < d {
		d = wrap
	}
	return d <= w.ToleranceMin
}

// scheduledToday reports whether the reminder runs on now's weekday.
func scheduledToday(r *Reminder, now time.Time) bool {
	if len(r.DaysOfWeek) == 0 {
		return true
	}
	iso := int(now.Weekday())
	if iso == 0 {
		iso = 7 // time.Sunday is 0, ISO Sunday is 7
	}
	for _, d := range r.DaysOfWeek {
		if d == iso {
			return true
		}
	}
	return false
}

// firedToday reports whether the reminder already fired on now's date.
func firedToday(r *Reminder, now time.Time) bool {
	return r.LastFiredAt != nil && DateOf(*r.LastFiredAt) == DateOf(now)
}

// Evaluator decides whether a single reminder should fire at a given moment.
// Pure except for the entry lookup.
type Evaluator struct {
	Entries tracker.EntryStore
	Window  Window
}

// ShouldFire applies the full rule chain: enabled, scheduled today, inside the
// tolerance window, outside quiet hours, at most once per day, and the
// kind-specific entry condition.
func (ev Evaluator) ShouldFire(ctx context.Context, r *Reminder, now time.Time) (bool, error) {
	if !r.Enabled {
		return false, nil
	}
	if !scheduledToday(r, now) {
		return false, nil
	}
	minute := now.Hour()*60 + now.Minute()
	if !ev.Window.withinTolerance(minute, r.TimeOfDay) {
		return false, nil
	}
	if ev.Window.InQuietHours(minute) {
		return false, nil
	}
	if firedToday(r, now) {
		return false, nil
	}

	e, err := ev.Entries.GetByDate(ctx, r.TrackerID, r.OwnerID, DateOf(now))
	if err != nil {
		return false, apperr.Wrap("load today's entry", err)
	}
	switch r.Kind {
	case KindEntryPrompt:
		// prompt only while today's entry is missing
		return e == nil, nil
	case KindReflection:
		// nudge only when today's entry exists but has no notes
		return e != nil && e.Notes == "", nil
	default:
		return false, nil
	}
}
