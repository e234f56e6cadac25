// Package dispatcher owns the fleet and maps passenger requests onto cars:
// an unassigned FIFO scored in bounded batches, a waiting-queue per floor,
// and the boarding callback cars invoke when they serve a floor.
package dispatcher

import (
	"fmt"
	"math"

	"github.com/tiendc/go-deepcopy"

	"liftbank/src/config"
	"liftbank/src/elev"
	"liftbank/src/logger"
	"liftbank/src/types"
)

var Log = logger.GetLogger()

type Dispatcher struct {
	fleet    []*elev.Elevator
	minFloor int
	maxFloor int

	unassigned     []types.Request
	waitingByFloor map[int][]types.Request
}

func New(elevatorCount, minFloor, maxFloor, startingFloor int) *Dispatcher {
	fleet := make([]*elev.Elevator, 0, elevatorCount)
	for i := 0; i < elevatorCount; i++ {
		fleet = append(fleet, elev.New(i, startingFloor, minFloor, maxFloor))
	}
	return &Dispatcher{
		fleet:          fleet,
		minFloor:       minFloor,
		maxFloor:       maxFloor,
		waitingByFloor: make(map[int][]types.Request),
	}
}

// Submit enqueues a request for assignment on a later Tick. The only way a
// request is refused is an origin or destination outside the building.
func (d *Dispatcher) Submit(r types.Request) error {
	if r.Origin < d.minFloor || r.Origin > d.maxFloor ||
		r.Destination < d.minFloor || r.Destination > d.maxFloor {
		return fmt.Errorf("%v: %w", r, types.ErrFloorOutOfRange)
	}
	d.unassigned = append(d.unassigned, r)
	return nil
}

// Tick advances the whole fleet by one unit of simulated time: dispatch, then
// step every car in id order, then snapshot. Fully deterministic for a given
// submission schedule.
func (d *Dispatcher) Tick(tick int) types.FleetSnapshot {
	d.dispatchWaitingRequests(tick)
	for _, car := range d.fleet {
		car.Step(d, tick)
	}
	return d.Snapshot(tick)
}

// dispatchWaitingRequests scores at most DispatchBatchSize unassigned
// requests in FIFO order. Assigned requests move to the origin's waiting
// queue and the chosen car gets the pickup stop immediately; anything that
// could not be placed rejoins the back of the queue, in order.
func (d *Dispatcher) dispatchWaitingRequests(tick int) {
	polls := len(d.unassigned)
	if polls > config.DispatchBatchSize {
		polls = config.DispatchBatchSize
	}
	var deferred []types.Request
	for i := 0; i < polls; i++ {
		r := d.unassigned[0]
		d.unassigned = d.unassigned[1:]

		best := d.chooseBestElevator(r)
		if best == nil {
			deferred = append(deferred, r)
			continue
		}
		d.waitingByFloor[r.Origin] = append(d.waitingByFloor[r.Origin], r)
		best.AddStop(r.Origin)
		Log.Debug().Int("tick", tick).Stringer("request", r).Int("elevator", best.ID()).
			Msg("Request assigned")
	}
	d.unassigned = append(d.unassigned, deferred...)
}

// chooseBestElevator is a linear scan, lowest score wins, ties keep the
// lowest id. Scores are always finite so this only returns nil for an empty
// fleet.
func (d *Dispatcher) chooseBestElevator(r types.Request) *elev.Elevator {
	var best *elev.Elevator
	bestScore := math.MaxInt
	for _, car := range d.fleet {
		if s := score(car, r); s < bestScore {
			bestScore = s
			best = car
		}
	}
	return best
}

func score(car *elev.Elevator, r types.Request) int {
	dist := abs(car.Floor() - r.Origin)

	if car.Direction() == types.Idle {
		return dist
	}

	// Moving toward the origin in the wanted direction is almost as good as
	// being idle.
	if car.Direction() == r.DesiredDirection() {
		if (car.Direction() == types.Up && car.Floor() <= r.Origin) ||
			(car.Direction() == types.Down && car.Floor() >= r.Origin) {
			return dist + config.SameDirBias
		}
	}

	return dist + config.WrongDirPenalty
}

// BoardWaitingPassengersAt drains the whole waiting queue for the floor into
// the car. Capacity is tracked but deliberately never enforced here.
func (d *Dispatcher) BoardWaitingPassengersAt(car *elev.Elevator, floor, tick int) int {
	q := d.waitingByFloor[floor]
	if len(q) == 0 {
		return 0
	}
	for _, r := range q {
		car.AddDestination(r.Destination)
	}
	delete(d.waitingByFloor, floor)
	Log.Debug().Int("tick", tick).Int("elevator", car.ID()).Int("floor", floor).
		Int("boarded", len(q)).Int("onboard", car.OnboardCount()).Msg("Passengers boarded")
	return len(q)
}

// WaitingCount is every submitted passenger not yet physically on a car.
func (d *Dispatcher) WaitingCount() int {
	n := len(d.unassigned)
	for _, q := range d.waitingByFloor {
		n += len(q)
	}
	return n
}

// Snapshot deep-copies the fleet state so callers cannot alias the live
// stop sets.
func (d *Dispatcher) Snapshot(tick int) types.FleetSnapshot {
	live := types.FleetSnapshot{
		Tick:    tick,
		Waiting: d.WaitingCount(),
		Cars:    make([]types.CarSnapshot, 0, len(d.fleet)),
	}
	for _, car := range d.fleet {
		live.Cars = append(live.Cars, car.Snapshot())
	}
	snap := new(types.FleetSnapshot)
	if err := deepcopy.Copy(snap, &live); err != nil {
		panic(err)
	}
	return *snap
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
