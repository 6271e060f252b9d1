package component

// Camera is an orthographic view centred on its entity's transform.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
