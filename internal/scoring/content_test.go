package scoring

import (
	"errors"
	"testing"
)

func TestContentScores(t *testing.T) {
	engine := testEngine(stubNoise{})

	tests := []struct {
		name     string
		userID   string
		expected map[string]float64
	}{
		{
			name:   "matching preferences",
			userID: "user1",
			expected: map[string]float64{
				"charity1": 100, "charity2": 0, "charity3": 0, "charity4": 100, "charity5": 0,
			},
		},
		{
			name:   "environment preference",
			userID: "user2",
			expected: map[string]float64{
				"charity1": 0, "charity2": 100, "charity3": 100, "charity4": 0, "charity5": 0,
			},
		},
		{
			name:   "no preferences",
			userID: "user4",
			expected: map[string]float64{
				"charity1": 0, "charity2": 0, "charity3": 0, "charity4": 0, "charity5": 0,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := engine.ContentScores(tc.userID)
			if err != nil {
				t.Fatalf("content scores: %v", err)
			}
			if len(scores) != len(tc.expected) {
				t.Fatalf("expected %d entries got %d", len(tc.expected), len(scores))
			}
			for id, want := range tc.expected {
				if got := scores[id]; got != want {
					t.Fatalf("%s: expected %f got %f", id, want, got)
				}
			}
		})
	}
}

func TestContentScoresUnknownUser(t *testing.T) {
	engine := testEngine(stubNoise{})
	if _, err := engine.ContentScores("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound got %v", err)
	}
}
