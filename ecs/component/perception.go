package component

type Perception struct {
	AlertRadius float64
}

var PerceptionComponent = NewComponent[Perception]()
