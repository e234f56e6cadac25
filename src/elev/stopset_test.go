package elev

import (
	"reflect"
	"testing"
)

func TestStopSetKeepsSortedDistinctFloors(t *testing.T) {
	var s StopSet
	for _, f := range []int{7, 3, 7, 12, 3, 5} {
		s.Add(f)
	}

	want := []int{3, 5, 7, 12}
	if !reflect.DeepEqual(s.Floors(), want) {
		t.Errorf("Floors() = %v, expected %v", s.Floors(), want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", s.Len())
	}

	s.Remove(7)
	s.Remove(99) // not present, no-op
	want = []int{3, 5, 12}
	if !reflect.DeepEqual(s.Floors(), want) {
		t.Errorf("Floors() after Remove = %v, expected %v", s.Floors(), want)
	}
	if s.Contains(7) {
		t.Errorf("Contains(7) = true after Remove")
	}
	if !s.Contains(5) {
		t.Errorf("Contains(5) = false, expected true")
	}
}

func TestStopSetOrderedQueries(t *testing.T) {
	var s StopSet
	for _, f := range []int{2, 6, 9} {
		s.Add(f)
	}

	testCases := []struct {
		name   string
		query  func() (int, bool)
		floor  int
		wantOK bool
	}{
		{"Min", s.Min, 2, true},
		{"Max", s.Max, 9, true},
		{"CeilingOf exact", func() (int, bool) { return s.CeilingOf(6) }, 6, true},
		{"CeilingOf between", func() (int, bool) { return s.CeilingOf(3) }, 6, true},
		{"CeilingOf above all", func() (int, bool) { return s.CeilingOf(10) }, 0, false},
		{"FloorOf exact", func() (int, bool) { return s.FloorOf(6) }, 6, true},
		{"FloorOf between", func() (int, bool) { return s.FloorOf(8) }, 6, true},
		{"FloorOf below all", func() (int, bool) { return s.FloorOf(1) }, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			floor, ok := tc.query()
			if ok != tc.wantOK || (ok && floor != tc.floor) {
				t.Errorf("got (%d, %v), expected (%d, %v)", floor, ok, tc.floor, tc.wantOK)
			}
		})
	}
}

func TestStopSetEmptyQueries(t *testing.T) {
	var s StopSet
	if !s.Empty() {
		t.Errorf("Empty() = false for new set")
	}
	if _, ok := s.Min(); ok {
		t.Errorf("Min() ok = true for empty set")
	}
	if _, ok := s.Max(); ok {
		t.Errorf("Max() ok = true for empty set")
	}
}
