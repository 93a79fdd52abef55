// Package insights computes derived statistics over tracker entries. Derived
// data only: everything here is recomputable from entries, cache loss is never
// data loss, and nothing in this package gates permissions beyond requiring
// view access on the tracker.
package insights

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/perm"
	"tracker-studio-api/internal/tracker"
)

// FieldStat is the aggregate for one schema field over the requested range.
type FieldStat struct {
	FieldID string            `json:"field_id"`
	Label   string            `json:"label"`
	Type    tracker.FieldType `json:"type"`
	// Count is how many entries carried a non-null value for this field.
	Count int `json:"count"`
	// Min/Max/Mean are set for number and rating fields.
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Mean *float64 `json:"mean,omitempty"`
	// TrueRate is set for boolean fields: fraction of non-null values that
	// were true.
	TrueRate *float64 `json:"true_rate,omitempty"`
}

// Summary is the full derived view for one tracker and date range.
type Summary struct {
	TrackerID  uuid.UUID   `json:"tracker_id"`
	From       string      `json:"from,omitempty"`
	To         string      `json:"to,omitempty"`
	EntryCount int         `json:"entry_count"`
	FirstDate  string      `json:"first_date,omitempty"`
	LastDate   string      `json:"last_date,omitempty"`
	Fields     []FieldStat `json:"fields"`
	ComputedAt time.Time   `json:"computed_at"`
}

// Service computes summaries behind the permission resolver, with a
// read-through cache in front of the entry store.
type Service struct {
	resolver *perm.Resolver
	trackers tracker.TrackerStore
	entries  tracker.EntryStore
	cache    Cache
	ttl      time.Duration
	now      func() time.Time
}

// NewService builds the insights service. A nil cache disables caching; a zero
// ttl defaults to five minutes.
func NewService(resolver *perm.Resolver, trackers tracker.TrackerStore, entries tracker.EntryStore, cache Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		resolver: resolver,
		trackers: trackers,
		entries:  entries,
		cache:    cache,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Summary returns the aggregate view of a tracker's entries within [from, to]
// (either bound may be empty). Requires view access; observers with a matching
// context qualify.
func (s *Service) Summary(ctx context.Context, p tracker.Principal, trackerID uuid.UUID, from, to string, obs *perm.ObservationContext) (*Summary, error) {
	pm, err := s.resolver.Resolve(ctx, trackerID, p.ID, obs)
	if err != nil {
		return nil, apperr.Wrap("resolve permissions", err)
	}
	if !pm.CanView {
		return nil, apperr.NotFound("tracker")
	}

	if s.cache != nil {
		if sum, ok := s.cache.GetSummary(ctx, trackerID, from, to); ok {
			return sum, nil
		}
	}

	t, err := s.trackers.Get(ctx, trackerID)
	if err != nil {
		return nil, apperr.Wrap("load tracker", err)
	}
	if t == nil {
		return nil, apperr.NotFound("tracker")
	}
	entries, err := s.entries.List(ctx, trackerID, from, to, 0, 0)
	if err != nil {
		return nil, apperr.Wrap("list entries", err)
	}

	sum := Compute(t, entries, from, to)
	sum.ComputedAt = s.now()
	if s.cache != nil {
		s.cache.SetSummary(ctx, sum, s.ttl)
	}
	return sum, nil
}

// Invalidate drops cached summaries for the given trackers. Satisfies
// tracker.InsightsInvalidator.
func (s *Service) Invalidate(ctx context.Context, trackerIDs ...uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, trackerIDs...)
	}
}

// Compute aggregates entries against the tracker's schema snapshot. Pure;
// entries are assumed sorted by date ascending as the store returns them.
func Compute(t *tracker.Tracker, entries []*tracker.Entry, from, to string) *Summary {
	sum := &Summary{
		TrackerID:  t.ID,
		From:       from,
		To:         to,
		EntryCount: len(entries),
		Fields:     make([]FieldStat, 0, len(t.SchemaSnapshot)),
	}
	if len(entries) > 0 {
		sum.FirstDate = entries[0].Date
		sum.LastDate = entries[len(entries)-1].Date
	}

	for _, f := range t.SchemaSnapshot {
		st := FieldStat{FieldID: f.ID, Label: f.Label, Type: f.Type}
		var (
			total     float64
			min, max  float64
			trueCount int
		)
		for _, e := range entries {
			v, ok := e.Values[f.ID]
			if !ok || v == nil {
				continue
			}
			switch f.Type {
			case tracker.FieldNumber, tracker.FieldRating:
				n, ok := asFloat(v)
				if !ok {
					continue
				}
				if st.Count == 0 {
					min, max = n, n
				} else {
					min = math.Min(min, n)
					max = math.Max(max, n)
				}
				total += n
				st.Count++
			case tracker.FieldBoolean:
				b, ok := v.(bool)
				if !ok {
					continue
				}
				if b {
					trueCount++
				}
				st.Count++
			default:
				st.Count++
			}
		}
		if st.Count > 0 {
			switch f.Type {
			case tracker.FieldNumber, tracker.FieldRating:
				mean := total / float64(st.Count)
				st.Min, st.Max, st.Mean = &min, &max, &mean
			case tracker.FieldBoolean:
				rate := float64(trueCount) / float64(st.Count)
				st.TrueRate = &rate
			}
		}
		sum.Fields = append(sum.Fields, st)
	}
	return sum
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
