// Package memory holds the in-memory activity registry. Rosters live only for
// the lifetime of the process.
package memory

import (
	"context"
	"slices"
	"sync"

	"mergingtonactivities/internal/domain"
)

// Option configures the registry built by NewActivityRepository.
type Option func(*activityRepository)

// WithCapacityLimit makes AddParticipant return domain.ErrActivityFull once a
// roster has reached MaxParticipants. Without it signups are never refused for size.
func WithCapacityLimit() Option {
	return func(r *activityRepository) {
		r.enforceCapacity = true
	}
}

// WithRosterObserver registers fn to receive the new roster size after every
// change, and the size of every activity after a reset. fn runs with the
// registry lock held, so sizes for one activity are reported in write order.
func WithRosterObserver(fn func(activity string, size int)) Option {
	return func(r *activityRepository) {
		r.observe = fn
	}
}

type activityRepository struct {
	mu              sync.RWMutex
	activities      domain.ActivityCatalog
	enforceCapacity bool
	observe         func(activity string, size int)
}

// NewActivityRepository returns a domain.ActivityRepository seeded with a copy of catalog.
// A nil catalog yields an empty registry.
func NewActivityRepository(catalog domain.ActivityCatalog, opts ...Option) domain.ActivityRepository {
	r := &activityRepository{}
	for _, opt := range opts {
		opt(r)
	}
	r.activities = normalize(catalog)
	r.observeAll()
	return r
}

func (r *activityRepository) List(ctx context.Context) (domain.ActivityCatalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activities.Clone(), nil
}

func (r *activityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a.Clone(), nil
}

func (r *activityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}
	if r.enforceCapacity && a.IsFull() {
		return domain.ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	r.notify(a)
	return nil
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return domain.ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	r.notify(a)
	return nil
}

func (r *activityRepository) Reset(ctx context.Context, catalog domain.ActivityCatalog) error {
	next := normalize(catalog)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = next
	r.observeAll()
	return nil
}

// notify must be called with r.mu held for writing.
func (r *activityRepository) notify(a *domain.Activity) {
	if r.observe != nil {
		r.observe(a.Name, len(a.Participants))
	}
}

func (r *activityRepository) observeAll() {
	for _, a := range r.activities {
		r.notify(a)
	}
}

// normalize deep copies catalog, fills Name from the map key and drops duplicate emails.
func normalize(catalog domain.ActivityCatalog) domain.ActivityCatalog {
	out := make(domain.ActivityCatalog, len(catalog))
	for name, a := range catalog {
		if a == nil {
			continue
		}
		c := a.Clone()
		c.Name = name
		c.Participants = dedupe(c.Participants)
		out[name] = c
	}
	return out
}

func dedupe(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
