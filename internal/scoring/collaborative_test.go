package scoring

import (
	"errors"
	"testing"

	"impact-finance/backend/internal/catalog"
)

func TestCollaborativeScores(t *testing.T) {
	engine := testEngine(stubNoise{})

	tests := []struct {
		name     string
		userID   string
		expected map[string]float64
	}{
		// user3 shares charity1 with user1; user3's other donation is charity3.
		{"one similar user", "user1", map[string]float64{"charity3": 50}},
		{"shared via charity3", "user2", map[string]float64{"charity1": 50}},
		// user3 overlaps with both other users.
		{"two similar users", "user3", map[string]float64{"charity2": 50, "charity4": 50}},
		{"no donations no signal", "user4", map[string]float64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := engine.CollaborativeScores(tc.userID)
			if err != nil {
				t.Fatalf("collaborative scores: %v", err)
			}
			if len(scores) != len(tc.expected) {
				t.Fatalf("expected %d entries got %d: %v", len(tc.expected), len(scores), scores)
			}
			for id, want := range tc.expected {
				if got := scores[id]; got != want {
					t.Fatalf("%s: expected %f got %f", id, want, got)
				}
			}
		})
	}
}

func TestCollaborativeScoresAccumulate(t *testing.T) {
	charities := []catalog.Charity{
		{ID: "a", Category: "One"},
		{ID: "b", Category: "Two"},
	}
	users := []catalog.UserProfile{{ID: "target"}, {ID: "peer1"}, {ID: "peer2"}}
	donations := []catalog.Donation{
		{UserID: "target", CharityID: "a"},
		{UserID: "peer1", CharityID: "a"},
		{UserID: "peer1", CharityID: "b"},
		{UserID: "peer2", CharityID: "a"},
		{UserID: "peer2", CharityID: "b"},
	}
	engine := NewEngine(catalog.New(charities, nil, users, donations), stubNoise{})

	scores, err := engine.CollaborativeScores("target")
	if err != nil {
		t.Fatalf("collaborative scores: %v", err)
	}
	if got := scores["b"]; got != 100 {
		t.Fatalf("expected increments to accumulate to 100, got %f", got)
	}
	if _, ok := scores["a"]; ok {
		t.Fatal("already-donated charity must not appear")
	}
}

func TestCollaborativeScoresUnknownUser(t *testing.T) {
	engine := testEngine(stubNoise{})
	if _, err := engine.CollaborativeScores("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound got %v", err)
	}
}
