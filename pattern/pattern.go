// Package pattern implements the movement an enemy performs while patrolling.
package pattern

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var (
	ErrUnknownPattern = errors.New("pattern: unknown pattern")
	ErrUnknownParam   = errors.New("pattern: unknown parameter")
)

// KindUpDown is the built-in vertical patrol.
const KindUpDown = "up_down"

// Pattern moves an enemy while it patrols. Implementations keep their own
// anchor, which Reanchor clears so the next Update re-centres on the enemy.
type Pattern interface {
	Update(pos, facing *cp.Vector, dt float64)
	Reanchor()
	Kind() string
}

type upDownState int

const (
	movingUp upDownState = iota
	pauseTop
	movingDown
	pauseBottom
)

// UpDown walks Distance pixels up from its anchor, pauses, walks back down
// and pauses again.
type UpDown struct {
	Distance  float64
	PauseTime float64
	Speed     float64

	state    upDownState
	anchor   cp.Vector
	anchored bool
	pause    float64
}

func NewUpDown(distance, pauseTime, speed float64) *UpDown {
	return &UpDown{Distance: distance, PauseTime: pauseTime, Speed: speed}
}

func (p *UpDown) Kind() string { return KindUpDown }

func (p *UpDown) Reanchor() { p.anchored = false }

// Anchor returns the position the pattern oscillates from.
func (p *UpDown) Anchor() (cp.Vector, bool) { return p.anchor, p.anchored }

func (p *UpDown) Update(pos, facing *cp.Vector, dt float64) {
	if !p.anchored {
		p.anchor = *pos
		p.anchored = true
	}

	switch p.state {
	case movingUp:
		*facing = cp.Vector{X: 0, Y: -1}
		pos.Y -= p.Speed * dt
		if top := p.anchor.Y - p.Distance; pos.Y <= top {
			pos.Y = top
			p.state = pauseTop
			p.pause = p.PauseTime
		}
	case pauseTop:
		p.pause -= dt
		if p.pause <= 0 {
			p.state = movingDown
		}
	case movingDown:
		*facing = cp.Vector{X: 0, Y: 1}
		pos.Y += p.Speed * dt
		if pos.Y >= p.anchor.Y {
			pos.Y = p.anchor.Y
			p.state = pauseBottom
			p.pause = p.PauseTime
		}
	case pauseBottom:
		p.pause -= dt
		if p.pause <= 0 {
			p.state = movingUp
		}
	}
}
