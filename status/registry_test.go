package status

import (
	"testing"
)

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(KeyGoals)
	b := r.Ints.Get(KeyGoals)
	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}

	a.Add(2)
	if b.Load() != 2 {
		t.Errorf("Expected 2 through cached pointer, got %d", b.Load())
	}
}

func TestRegistryLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyServes).Store(3)
	r.Ints.Get(KeyGoals).Store(1)
	r.Floats.Get(KeyFPS).Store(59.94)

	lines := r.Lines()
	want := []string{"ball.goals=1", "ball.serves=3", "engine.fps=59.9"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
