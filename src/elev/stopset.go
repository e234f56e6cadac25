package elev

import "sort"

// StopSet keeps a set of distinct floors sorted ascending, with the ordered
// queries the direction logic needs (nearest stop at-or-above, at-or-below).
type StopSet struct {
	floors []int
}

func (s *StopSet) Add(floor int) {
	i := sort.SearchInts(s.floors, floor)
	if i < len(s.floors) && s.floors[i] == floor {
		return
	}
	s.floors = append(s.floors, 0)
	copy(s.floors[i+1:], s.floors[i:])
	s.floors[i] = floor
}

func (s *StopSet) Remove(floor int) {
	i := sort.SearchInts(s.floors, floor)
	if i < len(s.floors) && s.floors[i] == floor {
		s.floors = append(s.floors[:i], s.floors[i+1:]...)
	}
}

func (s *StopSet) Contains(floor int) bool {
	i := sort.SearchInts(s.floors, floor)
	return i < len(s.floors) && s.floors[i] == floor
}

func (s *StopSet) Len() int {
	return len(s.floors)
}

func (s *StopSet) Empty() bool {
	return len(s.floors) == 0
}

// Min returns the lowest floor in the set. ok is false when the set is empty.
func (s *StopSet) Min() (floor int, ok bool) {
	if len(s.floors) == 0 {
		return 0, false
	}
	return s.floors[0], true
}

// Max returns the highest floor in the set.
func (s *StopSet) Max() (floor int, ok bool) {
	if len(s.floors) == 0 {
		return 0, false
	}
	return s.floors[len(s.floors)-1], true
}

// CeilingOf returns the lowest floor >= x.
func (s *StopSet) CeilingOf(x int) (floor int, ok bool) {
	i := sort.SearchInts(s.floors, x)
	if i == len(s.floors) {
		return 0, false
	}
	return s.floors[i], true
}

// FloorOf returns the highest floor <= x.
func (s *StopSet) FloorOf(x int) (floor int, ok bool) {
	i := sort.SearchInts(s.floors, x+1)
	if i == 0 {
		return 0, false
	}
	return s.floors[i-1], true
}

// Floors exposes the backing slice, ascending. Callers that hold on to the
// result must copy it first.
func (s *StopSet) Floors() []int {
	return s.floors
}
