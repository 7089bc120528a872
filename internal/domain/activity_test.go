package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_Clone(t *testing.T) {
	a := &Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.edu"}}
	c := a.Clone()
	c.Participants[0] = "changed@x.edu"
	c.Participants = append(c.Participants, "b@x.edu")

	assert.Equal(t, []string{"a@x.edu"}, a.Participants)
	assert.Nil(t, (*Activity)(nil).Clone())
}

func TestActivity_CloneNilRosterBecomesEmpty(t *testing.T) {
	c := (&Activity{Name: "Art Club"}).Clone()
	require.NotNil(t, c.Participants)
	assert.Empty(t, c.Participants)
}

func TestActivity_IsFull(t *testing.T) {
	tests := []struct {
		name string
		act  *Activity
		want bool
	}{
		{"below capacity", &Activity{MaxParticipants: 2, Participants: []string{"a"}}, false},
		{"at capacity", &Activity{MaxParticipants: 2, Participants: []string{"a", "b"}}, true},
		{"unlimited", &Activity{MaxParticipants: 0, Participants: []string{"a", "b"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.act.IsFull())
		})
	}
}

func TestActivityCatalog_JSONShape(t *testing.T) {
	catalog := ActivityCatalog{
		"Chess Club": NewActivity("Chess Club", "Learn chess", "Fridays", 12),
	}
	raw, err := json.Marshal(catalog)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Chess Club":{"description":"Learn chess","schedule":"Fridays","max_participants":12,"participants":[]}}`, string(raw))
}
