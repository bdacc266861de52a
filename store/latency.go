package store

import "time"

// Op names a data-access operation for latency purposes.
type Op string

const (
	OpGetAll  Op = "getAll"
	OpGetByID Op = "getById"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
)

// Latency delays an operation before it touches a store, standing in for the
// round trip of a remote API.
type Latency interface {
	Wait(op Op)
}

// NoLatency never waits.
type NoLatency struct{}

func (NoLatency) Wait(Op) {}

// SimulatedLatency sleeps a fixed duration per operation.
type SimulatedLatency struct {
	Delays map[Op]time.Duration
	Sleep  func(time.Duration)
}

// DefaultDelays mirrors the dashboard's mock API timings.
func DefaultDelays() map[Op]time.Duration {
	return map[Op]time.Duration{
		OpGetAll:  300 * time.Millisecond,
		OpGetByID: 200 * time.Millisecond,
		OpCreate:  400 * time.Millisecond,
		OpUpdate:  350 * time.Millisecond,
		OpDelete:  250 * time.Millisecond,
	}
}

// NewSimulatedLatency returns a latency using the default delays, with
// overrides applied on top.
func NewSimulatedLatency(overrides map[Op]time.Duration) *SimulatedLatency {
	delays := DefaultDelays()
	for op, d := range overrides {
		delays[op] = d
	}
	return &SimulatedLatency{Delays: delays, Sleep: time.Sleep}
}

func (l *SimulatedLatency) Wait(op Op) {
	d, ok := l.Delays[op]
	if !ok || d <= 0 {
		return
	}
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(d)
}
