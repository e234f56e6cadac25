package types

import (
	"fmt"
	"strings"
)

// CarSnapshot is a point-in-time copy of one elevator's state. The stop
// slices are detached from the live sets and safe to keep.
type CarSnapshot struct {
	ID        int
	Floor     int
	Direction Direction
	UpStops   []int
	DownStops []int
	DoorTicks int
	Onboard   int
}

func (c CarSnapshot) String() string {
	door := "CLOSED"
	if c.DoorTicks > 0 {
		door = fmt.Sprintf("OPEN(%d)", c.DoorTicks)
	}
	return fmt.Sprintf("Elevator{id=%d, floor=%d, dir=%s, up=%v, down=%v, door=%s}",
		c.ID, c.Floor, c.Direction, c.UpStops, c.DownStops, door)
}

// FleetSnapshot is the whole fleet plus the total number of passengers that
// have been submitted but not yet boarded (unassigned + waiting at floors).
type FleetSnapshot struct {
	Tick    int
	Waiting int
	Cars    []CarSnapshot
}

func (s FleetSnapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "T=%d | waiting=%d\n", s.Tick, s.Waiting)
	for _, c := range s.Cars {
		fmt.Fprintf(&b, "  %s\n", c)
	}
	return b.String()
}
