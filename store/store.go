// Package store defines the storage interfaces of the service. The only
// state kept anywhere is a short-lived cache of the planning backend's
// raw documents; the reconciliation layer itself owns no persistence.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/Aashiq1/TripGenie-sub000/types"
)

// Error Handling Guidelines:
// - Services/Stores: Use fmt.Errorf("context: %w", err) for wrapping errors
// - Handlers: Use apperrors.* functions for HTTP-appropriate errors

// ErrCacheMiss indicates that no cached plan exists for the group.
var ErrCacheMiss = errors.New("plan cache miss")

// PlanCache stores raw trip-plan documents keyed by group code. Entries
// expire on their own via TTL and are invalidated eagerly when the
// backend acknowledges a replan-requiring edit.
type PlanCache interface {
	// Get returns the cached raw plan, or ErrCacheMiss.
	Get(ctx context.Context, groupCode string) (types.RawTripPlan, error)

	// Set stores the raw plan with the given TTL.
	Set(ctx context.Context, groupCode string, plan types.RawTripPlan, ttl time.Duration) error

	// Invalidate drops the cached plan for the group. Missing entries
	// are not an error.
	Invalidate(ctx context.Context, groupCode string) error
}
