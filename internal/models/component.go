package models

// Unity class IDs used when authoring scenes, prefabs and materials.
const (
	ClassGameObject               = 1
	ClassTransform                = 4
	ClassCamera                   = 20
	ClassMaterial                 = 21
	ClassMeshRenderer             = 23
	ClassOcclusionCullingSettings = 29
	ClassMeshFilter               = 33
	ClassRigidbody                = 54
	ClassBoxCollider              = 65
	ClassAudioSource              = 82
	ClassRenderSettings           = 104
	ClassLight                    = 108
	ClassMonoBehaviour            = 114
	ClassSphereCollider           = 135
	ClassCapsuleCollider          = 136
	ClassLightmapSettings         = 157
	ClassNavMeshSettings          = 196
)

// ComponentDescription describes one component attached to a scene object.
// ClassID selects the block renderer; Properties carries optional overrides.
type ComponentDescription struct {
	ClassID    int
	Properties Properties
}

// NewComponent creates a component with an empty property bag.
func NewComponent(classID int) *ComponentDescription {
	return &ComponentDescription{ClassID: classID}
}

// With sets a property and returns the component for chaining.
func (c *ComponentDescription) With(key string, v PropertyValue) *ComponentDescription {
	c.Properties.Set(key, v)
	return c
}
