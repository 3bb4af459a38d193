package sweep

import "testing"

func TestActiveSet_InsertRemoveContains(t *testing.T) {
	s := newActiveSet()
	if s.contains(1) {
		t.Fatal("empty set should not contain 1")
	}
	s.insert(1)
	s.insert(2)
	if !s.contains(1) || !s.contains(2) {
		t.Fatal("set should contain both inserted members")
	}
	if s.len() != 2 {
		t.Fatalf("len = %d, want 2", s.len())
	}
	s.remove(1)
	if s.contains(1) {
		t.Fatal("1 should have been removed")
	}
	if s.len() != 1 {
		t.Fatalf("len = %d, want 1", s.len())
	}
}

func TestActiveSet_InsertionOrderPreserved(t *testing.T) {
	s := newActiveSet()
	s.insert(5)
	s.insert(3)
	s.insert(9)

	var order []int
	s.ascend(func(wall int) bool {
		order = append(order, wall)
		return true
	})

	want := []int{5, 3, 9}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestActiveSet_InsertedBefore(t *testing.T) {
	s := newActiveSet()
	s.insert(1)
	s.insert(2)
	if !s.insertedBefore(1, 2) {
		t.Fatal("1 was inserted before 2")
	}
	if s.insertedBefore(2, 1) {
		t.Fatal("2 was not inserted before 1")
	}
}

func TestActiveSet_DuplicateInsertKeepsOriginalSequence(t *testing.T) {
	s := newActiveSet()
	s.insert(7)
	s.insert(8)
	s.insert(7) // no-op, already present

	var order []int
	s.ascend(func(wall int) bool {
		order = append(order, wall)
		return true
	})
	if len(order) != 2 || order[0] != 7 || order[1] != 8 {
		t.Fatalf("order = %v, want [7 8]", order)
	}
}
