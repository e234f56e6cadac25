// Package elev holds the per-car state machine: direction, the two ordered
// stop sets, the door-hold countdown and the onboard destination counts.
package elev

import (
	"liftbank/src/config"
	"liftbank/src/logger"
	"liftbank/src/types"
)

var Log = logger.GetLogger()

// Boarder is the narrow dispatcher capability a car calls back into when it
// serves a floor, so waiting passengers can board mid-step.
type Boarder interface {
	BoardWaitingPassengersAt(car *Elevator, floor, tick int) int
}

type Elevator struct {
	id       int
	minFloor int
	maxFloor int

	floor    int
	dir      types.Direction
	up       StopSet
	down     StopSet
	doorHold int

	// Destination floor -> riders getting off there. Entries are removed
	// when the floor is served. Never checked against config.Capacity.
	onboard map[int]int
}

func New(id, startFloor, minFloor, maxFloor int) *Elevator {
	e := &Elevator{
		id:       id,
		minFloor: minFloor,
		maxFloor: maxFloor,
		floor:    startFloor,
		dir:      types.Idle,
		onboard:  make(map[int]int),
	}
	Log.Debug().Int("id", id).Int("floor", startFloor).Msg("Elevator initialized")
	return e
}

func (e *Elevator) ID() int                    { return e.id }
func (e *Elevator) Floor() int                 { return e.floor }
func (e *Elevator) Direction() types.Direction { return e.dir }
func (e *Elevator) DoorTicksRemaining() int    { return e.doorHold }

func (e *Elevator) Idle() bool {
	return e.dir == types.Idle && e.up.Empty() && e.down.Empty() && e.doorHold == 0
}

// AddStop files a future stop. Out-of-range floors are ignored. A stop at the
// current floor with closed doors is still recorded so it gets served the
// same tick step processes it, instead of arriving instantaneously.
func (e *Elevator) AddStop(floor int) {
	if floor < e.minFloor || floor > e.maxFloor {
		return
	}
	if floor == e.floor && e.doorHold == 0 {
		e.up.Add(floor)
		return
	}
	switch e.dir {
	case types.Up:
		if floor >= e.floor {
			e.up.Add(floor)
		} else {
			e.down.Add(floor)
		}
	case types.Down:
		if floor <= e.floor {
			e.down.Add(floor)
		} else {
			e.up.Add(floor)
		}
	default:
		if floor >= e.floor {
			e.up.Add(floor)
		} else {
			e.down.Add(floor)
		}
	}
}

// AddDestination records a rider who just boarded and wants off at dest.
func (e *Elevator) AddDestination(dest int) {
	e.AddStop(dest)
	e.onboard[dest]++
}

// Step advances the car by one tick. Serving a floor and moving are mutually
// exclusive within a tick.
func (e *Elevator) Step(b Boarder, tick int) {
	if e.doorHold > 0 {
		e.doorHold--
		if e.doorHold == 0 {
			// Doors closing is the only point direction is re-evaluated
			// after a stop.
			e.updateDirection()
		}
		return
	}

	if e.up.Contains(e.floor) || e.down.Contains(e.floor) {
		e.serveCurrentFloor(b, tick)
		return
	}

	if e.dir == types.Idle {
		e.updateDirection()
	}

	switch e.dir {
	case types.Up:
		if !e.up.Empty() {
			e.floor++
		} else if !e.down.Empty() {
			e.floor--
		}
	case types.Down:
		if !e.down.Empty() {
			e.floor--
		} else if !e.up.Empty() {
			e.floor++
		}
	}

	if e.floor < e.minFloor {
		e.floor = e.minFloor
	}
	if e.floor > e.maxFloor {
		e.floor = e.maxFloor
	}
}

// serveCurrentFloor clears the floor from both stop sets (it can be a pickup
// and a drop-off at once), lets riders off, then boards everyone waiting via
// the dispatcher callback. Doors open only if anyone got on or off.
func (e *Elevator) serveCurrentFloor(b Boarder, tick int) {
	e.up.Remove(e.floor)
	e.down.Remove(e.floor)

	dropped := e.onboard[e.floor]
	if dropped > 0 {
		delete(e.onboard, e.floor)
	}

	boarded := b.BoardWaitingPassengersAt(e, e.floor, tick)

	if dropped > 0 || boarded > 0 {
		e.doorHold = config.DoorOpenTicks
		Log.Debug().Int("id", e.id).Int("floor", e.floor).Int("tick", tick).
			Int("dropped", dropped).Int("boarded", boarded).Msg("Serving floor, doors open")
	}

	e.updateDirection()
}

// updateDirection picks the direction of the nearest pending stop. With work
// on both sides the closer side wins, ties favor Up. No work at all is Idle.
func (e *Elevator) updateDirection() {
	switch {
	case !e.up.Empty() && !e.down.Empty():
		nearestUp, ok := e.up.CeilingOf(e.floor)
		if !ok {
			nearestUp, _ = e.up.Min()
		}
		nearestDown, ok := e.down.FloorOf(e.floor)
		if !ok {
			nearestDown, _ = e.down.Max()
		}
		if abs(nearestUp-e.floor) <= abs(nearestDown-e.floor) {
			e.dir = types.Up
		} else {
			e.dir = types.Down
		}
	case !e.up.Empty():
		e.dir = types.Up
	case !e.down.Empty():
		e.dir = types.Down
	default:
		e.dir = types.Idle
	}
}

// OnboardCount is the number of riders currently inside the car.
func (e *Elevator) OnboardCount() int {
	total := 0
	for _, n := range e.onboard {
		total += n
	}
	return total
}

// Snapshot renders the car's state. The stop slices are copied out of the
// live sets, so the result stays valid across later steps.
func (e *Elevator) Snapshot() types.CarSnapshot {
	up := make([]int, e.up.Len())
	copy(up, e.up.Floors())
	down := e.down.Floors()
	descending := make([]int, len(down))
	for i, f := range down {
		descending[len(down)-1-i] = f
	}
	return types.CarSnapshot{
		ID:        e.id,
		Floor:     e.floor,
		Direction: e.dir,
		UpStops:   up,
		DownStops: descending,
		DoorTicks: e.doorHold,
		Onboard:   e.OnboardCount(),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
