package emitter

import (
	"github.com/unity-forge/backend/internal/models"
)

// RenderScene renders a complete .unity document: header, the four scene
// settings blocks and one object block per object, in order.
// A nil allocator starts at DefaultStartHandle.
func RenderScene(ids *Allocator, objects []*models.SceneObject) string {
	ids = orDefault(ids)
	w := NewWriter()
	w.Header()
	writeSceneSettings(w)
	for _, obj := range objects {
		writeObject(w, ids, obj)
	}
	return w.String()
}

// RenderPrefab renders a .prefab document holding a single root object.
func RenderPrefab(ids *Allocator, root *models.SceneObject) string {
	ids = orDefault(ids)
	w := NewWriter()
	w.Header()
	writeObject(w, ids, root)
	return w.String()
}

// RenderFragment renders one object block without a header, for appending to
// an existing document. The allocator must not collide with handles already
// present there; see NewAllocatorAfter.
func RenderFragment(ids *Allocator, obj *models.SceneObject) string {
	ids = orDefault(ids)
	w := NewWriter()
	writeObject(w, ids, obj)
	return w.String()
}

func orDefault(ids *Allocator) *Allocator {
	if ids == nil {
		return NewAllocator(DefaultStartHandle)
	}
	return ids
}

// writeObject emits the GameObject, its Transform and its components.
// Handles are taken in that order before anything is written.
func writeObject(w *Writer, ids *Allocator, obj *models.SceneObject) {
	goHandle := ids.Next()
	trHandle := ids.Next()
	compHandles := make([]int64, len(obj.Components))
	for i := range obj.Components {
		compHandles[i] = ids.Next()
	}

	name := obj.Name
	if name == "" {
		name = models.DefaultObjectName
	}
	tag := obj.Tag
	if tag == "" {
		tag = models.DefaultTag
	}

	b := w.Document(models.ClassGameObject, goHandle, "GameObject")
	writeObjectPrelude(b)
	b.Int("serializedVersion", 6)
	b.Seq("m_Component", func(s *Seq) {
		s.Item("component", formatRef(trHandle))
		for _, h := range compHandles {
			s.Item("component", formatRef(h))
		}
	})
	b.Int("m_Layer", obj.Layer)
	b.Text("m_Name", name)
	b.Text("m_TagString", tag)
	b.Ref("m_Icon", 0)
	b.Int("m_NavMeshLayer", 0)
	b.Int("m_StaticEditorFlags", 0)
	b.Flag("m_IsActive", obj.Active)

	b = w.Document(models.ClassTransform, trHandle, "Transform")
	writeObjectPrelude(b)
	b.Ref("m_GameObject", goHandle)
	b.Int("serializedVersion", 2)
	b.Quaternion("m_LocalRotation", obj.Rotation)
	b.Vector3("m_LocalPosition", obj.Position)
	b.Vector3("m_LocalScale", obj.Scale)
	b.Int("m_ConstrainProportionsScale", 0)
	b.EmptySeq("m_Children")
	b.Ref("m_Father", 0)
	b.Vector3("m_LocalEulerAnglesHint", obj.EulerHint)

	for i, c := range obj.Components {
		writeComponent(w, compHandles[i], goHandle, c)
	}
}
