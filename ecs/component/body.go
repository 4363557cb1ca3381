package component

// Body is the collision circle of an entity and the elevation it occupies.
type Body struct {
	Radius float64
	Layer  int
}

var BodyComponent = NewComponent[Body]()
