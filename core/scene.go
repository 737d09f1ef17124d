package core

// Scene names a destination for the external scene transition
type Scene string

const (
	SceneOffice  Scene = "office"
	SceneFailure Scene = "failure"
)
