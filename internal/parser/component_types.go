package parser

import (
	"strings"

	"github.com/unity-forge/backend/internal/models"
)

// componentTypes maps lower-cased component type names to class IDs.
var componentTypes = map[string]int{
	"camera":          models.ClassCamera,
	"light":           models.ClassLight,
	"meshfilter":      models.ClassMeshFilter,
	"meshrenderer":    models.ClassMeshRenderer,
	"boxcollider":     models.ClassBoxCollider,
	"spherecollider":  models.ClassSphereCollider,
	"capsulecollider": models.ClassCapsuleCollider,
	"rigidbody":       models.ClassRigidbody,
	"audiosource":     models.ClassAudioSource,
}

var typeNames = map[int]string{
	models.ClassGameObject:               "GameObject",
	models.ClassTransform:                "Transform",
	models.ClassCamera:                   "Camera",
	models.ClassMaterial:                 "Material",
	models.ClassMeshRenderer:             "MeshRenderer",
	models.ClassOcclusionCullingSettings: "OcclusionCullingSettings",
	models.ClassMeshFilter:               "MeshFilter",
	models.ClassRigidbody:                "Rigidbody",
	models.ClassBoxCollider:              "BoxCollider",
	models.ClassAudioSource:              "AudioSource",
	models.ClassRenderSettings:           "RenderSettings",
	models.ClassLight:                    "Light",
	models.ClassMonoBehaviour:            "MonoBehaviour",
	models.ClassSphereCollider:           "SphereCollider",
	models.ClassCapsuleCollider:          "CapsuleCollider",
	models.ClassLightmapSettings:         "LightmapSettings",
	models.ClassNavMeshSettings:          "NavMeshSettings",
}

// ClassIDForType resolves a component type name, ignoring case. Unknown
// names resolve to MonoBehaviour.
func ClassIDForType(name string) int {
	if id, ok := componentTypes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id
	}
	return models.ClassMonoBehaviour
}

// TypeNameForClassID returns Unity's type name for a class ID, or "" when
// the class is not one this package knows.
func TypeNameForClassID(classID int) string {
	return typeNames[classID]
}
