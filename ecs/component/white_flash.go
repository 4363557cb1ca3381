package component

// WhiteFlash makes an entity render white for a moment after taking a hit.
// Timer counts down in seconds.
type WhiteFlash struct {
	Timer    float64
	Duration float64
}

func (f WhiteFlash) On() bool { return f.Timer > 0 }

var WhiteFlashComponent = NewComponent[WhiteFlash]()
