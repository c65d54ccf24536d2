package pong

import (
	"fmt"

	"github.com/wowjack/bevy-pong-clone/internal/core"
)

// ResetQueue collects reset signals raised during a frame.
// Signals carry no payload, so any number of them collapse into one reset
// when the queue is drained.
type ResetQueue struct {
	pending int
}

// Send queues a reset signal.
func (q *ResetQueue) Send() {
	q.pending++
}

// Pending returns the number of signals queued since the last drain.
func (q ResetQueue) Pending() int {
	return q.pending
}

// Drain consumes every queued signal and reports whether there was any.
func (q *ResetQueue) Drain() bool {
	had := q.pending > 0
	q.pending = 0
	return had
}

// ResetPhase is the state of the reset coordinator.
type ResetPhase int

const (
	ResetIdle      ResetPhase = iota // No reset in progress
	ResetResetting                   // Entities are being re-derived
)

// String returns a human-readable name for the phase.
func (p ResetPhase) String() string {
	switch p {
	case ResetIdle:
		return "Idle"
	case ResetResetting:
		return "Resetting"
	default:
		return "Unknown"
	}
}

// ResetCoordinator turns queued reset signals into one re-initialization per
// frame.
type ResetCoordinator struct {
	queue  ResetQueue
	phase  ResetPhase
	resets uint64
}

// Signal queues a reset for the start of the next frame.
func (c *ResetCoordinator) Signal() {
	c.queue.Send()
}

// Pending returns the number of signals waiting for the next frame.
func (c *ResetCoordinator) Pending() int {
	return c.queue.Pending()
}

// Phase returns the current phase.
func (c *ResetCoordinator) Phase() ResetPhase {
	return c.phase
}

// Resets returns how many resets have been applied.
func (c *ResetCoordinator) Resets() uint64 {
	return c.resets
}

// Apply drains the queue and, if a signal was pending, reads the current
// geometry and hands it to reset. The phase is Resetting only while reset
// runs. Missing geometry is returned as ErrNoGeometry and leaves the signals
// queued.
func (c *ResetCoordinator) Apply(geometry core.GeometryProvider, reset func(core.Playfield)) (bool, error) {
	if c.queue.Pending() == 0 {
		return false, nil
	}

	field, ok := geometry.Geometry()
	if !ok {
		return false, fmt.Errorf("pong: reset: %w", ErrNoGeometry)
	}

	c.queue.Drain()
	c.phase = ResetResetting
	reset(field)
	c.phase = ResetIdle
	c.resets++
	return true, nil
}
