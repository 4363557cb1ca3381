package component

import "github.com/milk9111/topdown/ai"

// Alert carries the patrol/alert machine of an enemy.
type Alert struct {
	State  ai.State
	Config ai.Config
}

var AlertComponent = NewComponent[Alert]()
