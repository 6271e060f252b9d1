package component

// Name identifies an entity inside a scene.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type CharacterTag struct{}

var CharacterTagComponent = NewComponent[CharacterTag]()
