package sim

import (
	"bytes"
	"strings"
	"testing"

	"liftbank/src/config"
	"liftbank/src/dispatcher"
)

func TestScriptedSourceReleasesInOrder(t *testing.T) {
	src, err := NewScriptedSource([]config.ScriptEntry{
		{Origin: 3, Destination: 9, Tick: 4},
		{Origin: 1, Destination: 5, Tick: 0},
		{Origin: 2, Destination: 8, Tick: 4},
	})
	if err != nil {
		t.Fatal(err)
	}

	due := src.Due(0)
	if len(due) != 1 || due[0].Origin != 1 {
		t.Fatalf("Due(0) = %v, expected the tick-0 request only", due)
	}
	if got := src.Due(1); got != nil {
		t.Errorf("Due(1) = %v, expected nothing", got)
	}
	due = src.Due(4)
	if len(due) != 2 {
		t.Fatalf("Due(4) released %d requests, expected 2", len(due))
	}
	// Entries sharing a tick keep their script order.
	if due[0].Origin != 3 || due[1].Origin != 2 {
		t.Errorf("Due(4) = %v, expected origins 3 then 2", due)
	}
	if got := src.Due(5); got != nil {
		t.Errorf("Due(5) = %v after script exhausted, expected nothing", got)
	}
}

func TestScriptedSourceRejectsSameFloorEntry(t *testing.T) {
	_, err := NewScriptedSource([]config.ScriptEntry{{Origin: 2, Destination: 2, Tick: 0}})
	if err == nil {
		t.Errorf("expected error for origin == destination script entry")
	}
}

func TestRandomSourceDeterministicPerSeed(t *testing.T) {
	a := NewRandomSource(42, 0.5, 1, 30)
	b := NewRandomSource(42, 0.5, 1, 30)

	for tick := 0; tick < 100; tick++ {
		ra, rb := a.Due(tick), b.Due(tick)
		if len(ra) != len(rb) {
			t.Fatalf("tick %d: sources disagree on emission", tick)
		}
		for i := range ra {
			if ra[i] != rb[i] {
				t.Fatalf("tick %d: %v != %v", tick, ra[i], rb[i])
			}
		}
	}
}

func TestRandomSourceStaysInEnvelope(t *testing.T) {
	src := NewRandomSource(7, 1.0, 3, 6)
	for tick := 0; tick < 200; tick++ {
		r := src.Generate(tick)
		if r.Origin < 3 || r.Origin > 6 || r.Destination < 3 || r.Destination > 6 {
			t.Fatalf("request %v outside [3, 6]", r)
		}
		if r.Origin == r.Destination {
			t.Fatalf("request %v has equal origin and destination", r)
		}
	}
}

func TestRunnerPrintCadence(t *testing.T) {
	src, err := NewScriptedSource([]config.ScriptEntry{{Origin: 1, Destination: 4, Tick: 0}})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	runner := &Runner{
		Dispatcher: dispatcher.New(1, 1, 10, 1),
		Source:     src,
		TotalTicks: 10,
		PrintEvery: 2,
		Out:        &out,
	}
	runner.Run()

	// Ticks 0 through 10 inclusive, every second one.
	got := strings.Count(out.String(), "T=")
	if got != 6 {
		t.Errorf("printed %d snapshots, expected 6", got)
	}
	if !strings.Contains(out.String(), "T=10 |") {
		t.Errorf("final snapshot missing:\n%s", out.String())
	}
}

func TestRunnerZeroValuePrintCadence(t *testing.T) {
	// A Runner built without PrintEvery prints every tick instead of
	// dividing by zero.
	var out bytes.Buffer
	runner := &Runner{
		Dispatcher: dispatcher.New(1, 1, 10, 1),
		TotalTicks: 3,
		Out:        &out,
	}
	runner.Run()

	if got := strings.Count(out.String(), "T="); got != 4 {
		t.Errorf("printed %d snapshots, expected 4", got)
	}
}

func TestRunnerDeliversScript(t *testing.T) {
	src, err := NewScriptedSource([]config.ScriptEntry{
		{Origin: 1, Destination: 8, Tick: 0},
		{Origin: 6, Destination: 2, Tick: 3},
	})
	if err != nil {
		t.Fatal(err)
	}

	runner := &Runner{
		Dispatcher: dispatcher.New(2, 1, 10, 1),
		Source:     src,
		TotalTicks: 60,
		PrintEvery: 1,
		Out:        &bytes.Buffer{},
	}
	final := runner.Run()

	if final.Waiting != 0 {
		t.Errorf("final waiting = %d, expected 0", final.Waiting)
	}
	for _, c := range final.Cars {
		if c.Onboard != 0 {
			t.Errorf("elevator %d finished with %d riders onboard", c.ID, c.Onboard)
		}
	}
}
