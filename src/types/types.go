package types

import (
	"errors"
	"fmt"
)

type Direction int

const (
	Down Direction = -1
	Idle Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Idle:
		return "Idle"
	default:
		return "Undefined"
	}
}

var (
	ErrSameFloor       = errors.New("origin and destination must differ")
	ErrFloorOutOfRange = errors.New("floor out of range")
)

// Request is a passenger trip from Origin to Destination, created by the
// request generator at CreatedAtTick. Never mutated after construction.
type Request struct {
	Origin        int
	Destination   int
	CreatedAtTick int
}

func NewRequest(origin, destination, createdAtTick int) (Request, error) {
	if origin == destination {
		return Request{}, fmt.Errorf("request %d->%d: %w", origin, destination, ErrSameFloor)
	}
	return Request{Origin: origin, Destination: destination, CreatedAtTick: createdAtTick}, nil
}

func (r Request) DesiredDirection() Direction {
	if r.Destination > r.Origin {
		return Up
	}
	return Down
}

func (r Request) String() string {
	return fmt.Sprintf("Request{%d->%d}", r.Origin, r.Destination)
}
