package models

// SceneObject describes one GameObject with its Transform and components.
//
// Rotation is the stored value. EulerHint is only written as Unity's
// m_LocalEulerAnglesHint; ingestion keeps the two consistent but direct
// construction may leave them independent.
type SceneObject struct {
	Name       string
	Tag        string
	Layer      int
	Active     bool
	Position   Vector3
	Rotation   Quaternion
	Scale      Vector3
	EulerHint  Vector3
	Components []*ComponentDescription
}

const (
	DefaultObjectName = "GameObject"
	DefaultTag        = "Untagged"
)

// NewSceneObject returns an active, untagged object at the origin.
func NewSceneObject(name string) *SceneObject {
	if name == "" {
		name = DefaultObjectName
	}
	return &SceneObject{
		Name:     name,
		Tag:      DefaultTag,
		Active:   true,
		Rotation: QuaternionIdentity,
		Scale:    Vector3One,
	}
}

// AddComponent appends a component and returns it.
func (o *SceneObject) AddComponent(classID int) *ComponentDescription {
	c := NewComponent(classID)
	o.Components = append(o.Components, c)
	return c
}
