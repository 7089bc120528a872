package domain

import (
	"context"
	"errors"
	"slices"
)

// Sentinel errors for activity operations.
var (
	ErrNotFound        = errors.New("activity not found")
	ErrAlreadySignedUp = errors.New("student is already signed up")
	ErrNotSignedUp     = errors.New("student is not signed up for this activity")
	ErrActivityFull    = errors.New("activity is full")
)

// Activity is an extracurricular offering with a schedule, a capacity and a roster.
// The activity name is the key of ActivityCatalog and is not repeated in the JSON body.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with an empty, non-nil roster.
func NewActivity(name, description, schedule string, maxParticipants int) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}
}

// Clone returns a deep copy so callers can't mutate registry state through it.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	c := *a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return &c
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// IsFull reports whether the roster reached MaxParticipants.
// A non-positive MaxParticipants means the activity has no limit.
// Signup only consults it when the registry is built with a capacity limit.
func (a *Activity) IsFull() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}

// ActivityCatalog maps activity name to activity.
type ActivityCatalog map[string]*Activity

// Clone deep copies every activity in the catalog.
func (c ActivityCatalog) Clone() ActivityCatalog {
	out := make(ActivityCatalog, len(c))
	for name, a := range c {
		out[name] = a.Clone()
	}
	return out
}

// ActivityRepository stores activities and their rosters.
type ActivityRepository interface {
	List(ctx context.Context) (ActivityCatalog, error)
	Get(ctx context.Context, name string) (*Activity, error)
	// AddParticipant appends email to the roster. Returns ErrNotFound or ErrAlreadySignedUp,
	// and ErrActivityFull only when the registry enforces capacity.
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the roster. Returns ErrNotFound or ErrNotSignedUp.
	RemoveParticipant(ctx context.Context, name, email string) error
	// Reset replaces all activities with the given catalog.
	Reset(ctx context.Context, catalog ActivityCatalog) error
}

// ActivityCatalogSource provides the activity set loaded at process start.
type ActivityCatalogSource interface {
	LoadCatalog(ctx context.Context) (ActivityCatalog, error)
}

// ActivityService defines the signup operations exposed to clients.
type ActivityService interface {
	ListActivities(ctx context.Context) (ActivityCatalog, error)
	// Signup registers email for the activity and returns a confirmation message.
	Signup(ctx context.Context, activityName, email string) (string, error)
	// Unregister removes email from the activity and returns a confirmation message.
	Unregister(ctx context.Context, activityName, email string) (string, error)
}
