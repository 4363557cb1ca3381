package component

// Invulnerable makes the player immune to contact damage while Timer > 0.
// Duration is how long each hit grants.
type Invulnerable struct {
	Timer    float64
	Duration float64
}

func (i Invulnerable) Active() bool { return i.Timer > 0 }

var InvulnerableComponent = NewComponent[Invulnerable]()
