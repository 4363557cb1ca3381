package component

type Health struct {
	Current float64
	Max     float64
}

func (h Health) Alive() bool { return h.Current > 0 }

var HealthComponent = NewComponent[Health]()
