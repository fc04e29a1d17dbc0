package engine

import (
	"testing"

	"github.com/lixenwraith/vi-pong/core"
)

func TestStoreOrderAndRemove(t *testing.T) {
	s := NewStore[int]()
	for e := core.Entity(1); e <= 4; e++ {
		s.Set(e, int(e)*10)
	}
	s.Set(2, 99) // update keeps position

	if !s.Remove(3) {
		t.Fatal("Remove of present entity should report true")
	}
	if s.Remove(3) {
		t.Fatal("Second remove should report false")
	}

	all := s.All()
	want := []core.Entity{1, 2, 4}
	if len(all) != len(want) {
		t.Fatalf("Expected %v, got %v", want, all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, all)
		}
	}

	if v, ok := s.Get(2); !ok || v != 99 {
		t.Errorf("Expected updated value 99, got %d (%v)", v, ok)
	}
	if s.Has(3) {
		t.Error("Removed entity should not be present")
	}

	// All returns a copy
	all[0] = 42
	if s.All()[0] != 1 {
		t.Error("Mutating All() result must not affect the store")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Expected empty store, got %d", s.Count())
	}
}
