// Package ai holds the enemy alert state machine: Patrol runs a movement
// pattern, Alerted chases the last place the player was seen and decays back
// to Patrol after a cooldown without re-detection.
package ai

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
)

type Phase int

const (
	PhasePatrol Phase = iota
	PhaseAlerted
)

func (p Phase) String() string {
	switch p {
	case PhasePatrol:
		return "patrol"
	case PhaseAlerted:
		return "alerted"
	default:
		return "unknown"
	}
}

// Config is the per-enemy tuning of the state machine.
type Config struct {
	AlertCooldown float64
	ChaseSpeed    float64
}

// State is the mutable per-enemy machine state.
type State struct {
	Phase        Phase
	Timer        float64
	LastKnown    cp.Vector
	HasLastKnown bool
}

// Mover drives an enemy while it patrols.
type Mover interface {
	Update(pos, facing *cp.Vector, dt float64)
	// Reanchor makes the mover re-centre on the enemy's position the next
	// time it runs.
	Reanchor()
}

// Step advances the machine by dt. mover may be nil. It reports whether the
// phase changed.
func Step(s *State, cfg Config, detected bool, player cp.Vector, pos, facing *cp.Vector, mover Mover, dt float64) bool {
	switch s.Phase {
	case PhasePatrol:
		if detected {
			s.Phase = PhaseAlerted
			s.Timer = cfg.AlertCooldown
			s.LastKnown = player
			s.HasLastKnown = true
			return true
		}
		if mover != nil {
			mover.Update(pos, facing, dt)
		}
		return false

	case PhaseAlerted:
		if detected {
			s.LastKnown = player
			s.HasLastKnown = true
			s.Timer = cfg.AlertCooldown
		} else {
			s.Timer -= dt
		}

		if s.HasLastKnown {
			chase(s.LastKnown, cfg.ChaseSpeed, pos, facing, dt)
		}

		if s.Timer <= 0 {
			s.Phase = PhasePatrol
			s.Timer = 0
			s.LastKnown = cp.Vector{}
			s.HasLastKnown = false
			if mover != nil {
				mover.Reanchor()
			}
			return true
		}
	}
	return false
}

func chase(target cp.Vector, speed float64, pos, facing *cp.Vector, dt float64) {
	dir, ok := common.Normalize(target.Sub(*pos))
	if !ok {
		return
	}
	*facing = dir
	*pos = pos.Add(dir.Mult(speed * dt))
}
