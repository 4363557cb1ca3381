package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// EnemyTag marks an enemy and names its stat entry.
type EnemyTag struct {
	Type string
}

var EnemyTagComponent = NewComponent[EnemyTag]()
