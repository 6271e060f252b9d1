package component

// Transform places an entity in world units. The world origin is the centre
// of the screen and Y grows upwards.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
