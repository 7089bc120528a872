package memory

import (
	"context"

	"mergingtonactivities/internal/domain"
)

// DefaultActivities returns the built-in Mergington High School activities.
// Each call returns a fresh catalog.
func DefaultActivities() domain.ActivityCatalog {
	seed := []struct {
		name, description, schedule string
		max                         int
		participants                []string
	}{
		{"Chess Club", "Learn strategies and compete in chess tournaments", "Fridays, 3:30 PM - 5:00 PM", 12,
			[]string{"michael@mergington.edu", "daniel@mergington.edu"}},
		{"Programming Class", "Learn programming fundamentals and build software projects", "Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
			[]string{"emma@mergington.edu", "sophia@mergington.edu"}},
		{"Gym Class", "Physical education and sports activities", "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
			[]string{"john@mergington.edu", "olivia@mergington.edu"}},
		{"Soccer Team", "Join the school soccer team and compete in matches", "Tuesdays and Thursdays, 4:00 PM - 5:30 PM", 22,
			[]string{"liam@mergington.edu", "noah@mergington.edu"}},
		{"Basketball Team", "Practice and play basketball with the school team", "Wednesdays and Fridays, 3:30 PM - 5:00 PM", 15,
			[]string{"ava@mergington.edu", "mia@mergington.edu"}},
		{"Art Club", "Explore your creativity through painting and drawing", "Thursdays, 3:30 PM - 5:00 PM", 15,
			[]string{"amelia@mergington.edu", "harper@mergington.edu"}},
		{"Drama Club", "Act, direct, and produce plays and performances", "Mondays and Wednesdays, 4:00 PM - 5:30 PM", 20,
			[]string{"ella@mergington.edu", "scarlett@mergington.edu"}},
		{"Math Club", "Solve challenging problems and participate in math competitions", "Tuesdays, 3:30 PM - 4:30 PM", 10,
			[]string{"james@mergington.edu", "benjamin@mergington.edu"}},
		{"Debate Team", "Develop public speaking and argumentation skills", "Fridays, 4:00 PM - 5:30 PM", 12,
			[]string{"charlotte@mergington.edu", "henry@mergington.edu"}},
	}

	catalog := make(domain.ActivityCatalog, len(seed))
	for _, s := range seed {
		a := domain.NewActivity(s.name, s.description, s.schedule, s.max)
		a.Participants = append(a.Participants, s.participants...)
		catalog[s.name] = a
	}
	return catalog
}

type defaultCatalogSource struct{}

// NewDefaultCatalogSource returns a domain.ActivityCatalogSource serving DefaultActivities.
func NewDefaultCatalogSource() domain.ActivityCatalogSource {
	return defaultCatalogSource{}
}

func (defaultCatalogSource) LoadCatalog(ctx context.Context) (domain.ActivityCatalog, error) {
	return DefaultActivities(), nil
}
