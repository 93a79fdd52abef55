package tracker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tracker-studio-api/internal/logx"
	"tracker-studio-api/internal/perm"
)

var svcLogger = logx.GetScope("tracker")

// EventPublisher receives best-effort mutation events. Satisfied by
// mqx.Publisher; a nil publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// InsightsInvalidator drops cached derived insights for trackers whose entries
// changed. Satisfied by insights.Cache; nil disables invalidation.
type InsightsInvalidator interface {
	Invalidate(ctx context.Context, trackerIDs ...uuid.UUID)
}

// Service is the enforcement layer: every mutation resolves permissions
// first, validates second, and persists third. Reads return nil instead of a
// permission error so callers cannot distinguish "absent" from "hidden".
type Service struct {
	resolver     *perm.Resolver
	templates    TemplateStore
	trackers     TrackerStore
	entries      EntryStore
	grants       GrantStore
	observations ObservationStore
	overlays     OverlayStore
	insights     InsightsInvalidator
	events       EventPublisher
	now          func() time.Time
}

// Deps bundles the service's collaborators.
type Deps struct {
	Resolver     *perm.Resolver
	Templates    TemplateStore
	Trackers     TrackerStore
	Entries      EntryStore
	Grants       GrantStore
	Observations ObservationStore
	Overlays     OverlayStore
	Insights     InsightsInvalidator
	Events       EventPublisher
	Now          func() time.Time
}

// NewService builds the tracker service.
func NewService(d Deps) *Service {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Service{
		resolver:     d.Resolver,
		templates:    d.Templates,
		trackers:     d.Trackers,
		entries:      d.Entries,
		grants:       d.Grants,
		observations: d.Observations,
		overlays:     d.Overlays,
		insights:     d.Insights,
		events:       d.Events,
		now:          d.Now,
	}
}

// Resolve exposes the permission decision for an entity, for handlers that
// surface it (e.g. UI capability hints).
func (s *Service) Resolve(ctx context.Context, entityID, principalID uuid.UUID, obs *perm.ObservationContext) (perm.Permissions, error) {
	return s.resolver.Resolve(ctx, entityID, principalID, obs)
}

func (s *Service) publish(ctx context.Context, key string, payload any) {
	if s.events == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, key, b); err != nil {
		svcLogger.Warn("publish event failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) invalidateInsights(ctx context.Context, trackerIDs ...uuid.UUID) {
	if s.insights == nil {
		return
	}
	s.insights.Invalidate(ctx, trackerIDs...)
}
