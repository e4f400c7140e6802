package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/Aashiq1/TripGenie-sub000/errors"
	"github.com/Aashiq1/TripGenie-sub000/internal/planapi"
	"github.com/Aashiq1/TripGenie-sub000/logger"
	"github.com/Aashiq1/TripGenie-sub000/planner"
	"github.com/Aashiq1/TripGenie-sub000/store"
	"github.com/Aashiq1/TripGenie-sub000/types"
)

// PlannerClient is the slice of the planning backend API the plan
// service consumes.
type PlannerClient interface {
	GetTripDetails(ctx context.Context, groupCode string) (*planapi.TripDetails, error)
	GetTripPlan(ctx context.Context, groupCode string) (types.RawTripPlan, error)
	UpdateTrip(ctx context.Context, groupCode string, fields types.TripEditableFields) (*planapi.UpdateTripResponse, error)
	RequestPlan(ctx context.Context, groupCode string) (types.RawTripPlan, error)
}

// PlanService orchestrates the plan lifecycle for displayed trips: it
// fetches raw documents from the planning backend (through the cache),
// runs the pure reconciliation projections over them, and keeps one
// replan tracker per group code.
type PlanService struct {
	client   PlannerClient
	cache    store.PlanCache
	cacheTTL time.Duration
	log      *zap.SugaredLogger

	mu       sync.Mutex
	trackers map[string]*planner.ReplanTracker
}

// NewPlanService creates a PlanService.
func NewPlanService(client PlannerClient, cache store.PlanCache, cacheTTL time.Duration) *PlanService {
	return &PlanService{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      logger.GetLogger(),
		trackers: make(map[string]*planner.ReplanTracker),
	}
}

// tracker returns the replan tracker for a group, creating a fresh one
// on first sight.
func (s *PlanService) tracker(groupCode string) *planner.ReplanTracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[groupCode]
	if !ok {
		t = planner.NewReplanTracker()
		s.trackers[groupCode] = t
	}
	return t
}

// GetTripDetails passes the backend's trip snapshot through unchanged.
func (s *PlanService) GetTripDetails(ctx context.Context, groupCode string) (*planapi.TripDetails, error) {
	details, err := s.client.GetTripDetails(ctx, groupCode)
	if err != nil {
		return nil, apperrors.PlannerError(err)
	}
	return details, nil
}

// GetPlanView returns the reconciled view model for a trip's current
// plan. memberEmail selects the flight perspective and may be empty.
// Returns PlanNotReady when the backend has no plan for the group yet.
func (s *PlanService) GetPlanView(ctx context.Context, groupCode, memberEmail string) (*types.TripPlanView, error) {
	raw, err := s.fetchRawPlan(ctx, groupCode)
	if err != nil {
		return nil, err
	}
	return s.composeView(groupCode, raw, memberEmail), nil
}

// fetchRawPlan serves the cached document when present, going upstream
// on a miss. Only an upstream fetch counts as a plan arrival for the
// staleness tracker; a cache hit is the same plan the tracker already
// knows about.
func (s *PlanService) fetchRawPlan(ctx context.Context, groupCode string) (types.RawTripPlan, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, groupCode)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, store.ErrCacheMiss) {
			// Degrade to upstream; a flaky cache must not take the view down.
			s.log.Warnw("Plan cache read failed", "groupCode", groupCode, "error", err)
		}
	}

	raw, err := s.client.GetTripPlan(ctx, groupCode)
	if err != nil {
		return nil, apperrors.PlanNotReady(groupCode)
	}

	s.storePlan(ctx, groupCode, raw)
	s.tracker(groupCode).ObservePlanArrival()
	return raw, nil
}

// UpdateTrip submits an editable-field change and feeds the backend's
// replan acknowledgment into the group's tracker. A replan-requiring
// ack also eagerly drops the cached document so the stale plan cannot
// be served from cache.
func (s *PlanService) UpdateTrip(ctx context.Context, groupCode string, fields types.TripEditableFields) (*planapi.UpdateTripResponse, error) {
	if fields.IsEmpty() {
		return nil, apperrors.ValidationFailed("No editable fields provided", "at least one trip field must be set")
	}

	ack, err := s.client.UpdateTrip(ctx, groupCode, fields)
	if err != nil {
		return nil, apperrors.PlannerError(err)
	}

	s.tracker(groupCode).ObserveEditAck(ack.RequiresReplan)
	if ack.RequiresReplan {
		s.log.Infow("Trip edit requires replan", "groupCode", groupCode)
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx, groupCode); err != nil {
				s.log.Warnw("Plan cache invalidation failed", "groupCode", groupCode, "error", err)
			}
		}
	}
	return ack, nil
}

// GeneratePlan asks the backend for a new plan and returns the
// reconciled view of the result. Generation success clears staleness.
func (s *PlanService) GeneratePlan(ctx context.Context, groupCode, memberEmail string) (*types.TripPlanView, error) {
	raw, err := s.client.RequestPlan(ctx, groupCode)
	if err != nil {
		return nil, apperrors.PlannerError(err)
	}

	s.storePlan(ctx, groupCode, raw)
	s.tracker(groupCode).ObservePlanArrival()
	return s.composeView(groupCode, raw, memberEmail), nil
}

// IsStale reports whether the group's current plan needs regeneration.
func (s *PlanService) IsStale(groupCode string) bool {
	return s.tracker(groupCode).IsStale()
}

func (s *PlanService) storePlan(ctx context.Context, groupCode string, raw types.RawTripPlan) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, groupCode, raw, s.cacheTTL); err != nil {
		s.log.Warnw("Plan cache write failed", "groupCode", groupCode, "error", err)
	}
}

// composeView runs the three independent projections over the raw
// document. Each projection degrades on its own; a plan with no hotels
// still yields its itinerary.
func (s *PlanService) composeView(groupCode string, raw types.RawTripPlan, memberEmail string) *types.TripPlanView {
	view := &types.TripPlanView{
		GroupCode:   groupCode,
		Itinerary:   planner.NormalizeItinerary(raw),
		Hotels:      planner.ExtractHotelRecommendations(raw),
		NeedsReplan: s.tracker(groupCode).IsStale(),
	}
	if memberEmail != "" {
		view.Flight = planner.ResolveMemberFlight(raw, memberEmail)
		if view.Flight == nil {
			s.log.Debugw("No flight assignment for member",
				"groupCode", groupCode,
				"member", logger.MaskEmail(memberEmail))
		}
	}
	return view
}
