// Package sim is the driver glue around the core: request sources and the
// tick loop. The dispatcher never depends on anything in here.
package sim

import (
	"math/rand"
	"sort"

	"liftbank/src/config"
	"liftbank/src/types"
)

// Source produces the requests that become due at a given tick. Due is
// called once per tick with a strictly increasing tick counter.
type Source interface {
	Due(tick int) []types.Request
}

// ScriptedSource replays a fixed schedule in CreatedAtTick order.
type ScriptedSource struct {
	requests []types.Request
	next     int
}

func NewScriptedSource(entries []config.ScriptEntry) (*ScriptedSource, error) {
	requests := make([]types.Request, 0, len(entries))
	for _, e := range entries {
		r, err := types.NewRequest(e.Origin, e.Destination, e.Tick)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAtTick < requests[j].CreatedAtTick
	})
	return &ScriptedSource{requests: requests}, nil
}

func (s *ScriptedSource) Due(tick int) []types.Request {
	var due []types.Request
	for s.next < len(s.requests) && s.requests[s.next].CreatedAtTick <= tick {
		due = append(due, s.requests[s.next])
		s.next++
	}
	return due
}

// RandomSource emits at most one request per tick with probability Prob,
// deterministic for a given seed.
type RandomSource struct {
	rng      *rand.Rand
	prob     float64
	minFloor int
	maxFloor int
}

func NewRandomSource(seed int64, prob float64, minFloor, maxFloor int) *RandomSource {
	return &RandomSource{
		rng:      rand.New(rand.NewSource(seed)),
		prob:     prob,
		minFloor: minFloor,
		maxFloor: maxFloor,
	}
}

func (s *RandomSource) Due(tick int) []types.Request {
	if s.rng.Float64() >= s.prob {
		return nil
	}
	r := s.Generate(tick)
	return []types.Request{r}
}

// Generate builds one random request immediately, regardless of Prob.
func (s *RandomSource) Generate(tick int) types.Request {
	span := s.maxFloor - s.minFloor + 1
	origin := s.minFloor + s.rng.Intn(span)
	dest := s.minFloor + s.rng.Intn(span-1)
	if dest >= origin {
		dest++
	}
	r, err := types.NewRequest(origin, dest, tick)
	if err != nil {
		// span >= 2 guarantees origin != dest
		panic(err)
	}
	return r
}
