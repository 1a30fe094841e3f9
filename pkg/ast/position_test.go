package ast

import "testing"

func TestPosition_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"origin", Position{Offset: 0, Line: 1, Column: 1}, true},
		{"mid source", Position{Offset: 42, Line: 3, Column: 7}, true},
		{"zero value", Position{}, false},
		{"negative offset", Position{Offset: -1, Line: 1, Column: 1}, false},
		{"zero line", Position{Offset: 0, Line: 0, Column: 1}, false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.pos.IsValid(); got != testCase.expected {
				t.Errorf("IsValid() = %v, want %v", got, testCase.expected)
			}
		})
	}
}

func TestPosition_Before(t *testing.T) {
	t.Parallel()

	a := Position{Offset: 3, Line: 1, Column: 4}
	b := Position{Offset: 7, Line: 2, Column: 1}

	if !a.Before(b) {
		t.Error("expected a before b")
	}
	if b.Before(a) {
		t.Error("expected b not before a")
	}
	if a.Before(a) {
		t.Error("expected a not before itself")
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	loc := span(2, 8)

	if got := loc.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
	if loc.IsEmpty() {
		t.Error("non-empty span reported empty")
	}
	if !span(5, 5).IsEmpty() {
		t.Error("zero-length span not reported empty")
	}

	if !loc.Contains(span(3, 7)) {
		t.Error("expected containment of inner span")
	}
	if !loc.Contains(loc) {
		t.Error("expected containment of itself")
	}
	if loc.Contains(span(1, 4)) || loc.Contains(span(7, 9)) {
		t.Error("expected no containment of overlapping spans")
	}
}
