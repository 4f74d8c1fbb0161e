package emitter

import (
	"strings"

	"github.com/unity-forge/backend/internal/models"
)

const (
	// Built-in resources shipped inside the editor.
	builtinExtraGUID   = "0000000000000000e000000000000000"
	builtinDefaultGUID = "0000000000000000f000000000000000"

	defaultMaterialFileID int64 = 10303

	// Main object fileIDs of imported assets.
	scriptFileID    int64 = 11500000
	audioClipFileID int64 = 8300000
)

var builtinMeshes = map[string]int64{
	"cube":     10202,
	"cylinder": 10206,
	"sphere":   10207,
	"capsule":  10208,
	"plane":    10209,
	"quad":     10210,
}

var lightTypes = map[string]int{
	"spot":        0,
	"directional": 1,
	"point":       2,
	"area":        3,
	"rectangle":   3,
}

var shadowTypes = map[string]int{
	"none": 0,
	"hard": 1,
	"soft": 2,
}

var cameraBackground = models.RGBA(0.192, 0.302, 0.475, 0.02)
var lightColor = models.RGBA(1, 0.957, 0.839, 1)

type componentRenderer struct {
	classID  int
	typeName string
	render   func(b *Block, p *models.Properties)
}

var componentRenderers = map[int]componentRenderer{
	models.ClassCamera:          {models.ClassCamera, "Camera", renderCamera},
	models.ClassLight:           {models.ClassLight, "Light", renderLight},
	models.ClassMeshFilter:      {models.ClassMeshFilter, "MeshFilter", renderMeshFilter},
	models.ClassMeshRenderer:    {models.ClassMeshRenderer, "MeshRenderer", renderMeshRenderer},
	models.ClassBoxCollider:     {models.ClassBoxCollider, "BoxCollider", renderBoxCollider},
	models.ClassSphereCollider:  {models.ClassSphereCollider, "SphereCollider", renderSphereCollider},
	models.ClassCapsuleCollider: {models.ClassCapsuleCollider, "CapsuleCollider", renderCapsuleCollider},
	models.ClassRigidbody:       {models.ClassRigidbody, "Rigidbody", renderRigidbody},
	models.ClassAudioSource:     {models.ClassAudioSource, "AudioSource", renderAudioSource},
}

// monoBehaviourRenderer serializes any class without a dedicated renderer.
var monoBehaviourRenderer = componentRenderer{models.ClassMonoBehaviour, "MonoBehaviour", renderMonoBehaviour}

func rendererFor(classID int) componentRenderer {
	if r, ok := componentRenderers[classID]; ok {
		return r
	}
	return monoBehaviourRenderer
}

// writeComponent emits one component block owned by the GameObject owner.
func writeComponent(w *Writer, handle, owner int64, c *models.ComponentDescription) {
	r := rendererFor(c.ClassID)
	b := w.Document(r.classID, handle, r.typeName)
	writeObjectPrelude(b)
	b.Ref("m_GameObject", owner)
	r.render(b, &c.Properties)
}

func writeObjectPrelude(b *Block) {
	b.Int("m_ObjectHideFlags", 0)
	b.Ref("m_CorrespondingSourceObject", 0)
	b.Ref("m_PrefabInstance", 0)
	b.Ref("m_PrefabAsset", 0)
}

// enumProp reads an integer property that may also be given by name.
func enumProp(p *models.Properties, names map[string]int, def int, keys ...string) int {
	for _, key := range keys {
		if _, ok := p.Get(key); !ok {
			continue
		}
		if n, ok := names[strings.ToLower(p.Text(key, ""))]; ok {
			return n
		}
		return p.Int(key, def)
	}
	return def
}

func cullingMask(b *Block) {
	b.Map("m_CullingMask", func(m *Block) {
		m.Int("serializedVersion", 2)
		m.Int64("m_Bits", 4294967295)
	})
}

func renderCamera(b *Block, p *models.Properties) {
	b.Int("m_Enabled", 1)
	b.Int("serializedVersion", 2)
	b.Int("m_ClearFlags", p.Int("clearFlags", 1))
	b.Color("m_BackGroundColor", p.Color("backgroundColor", cameraBackground))
	b.Int("m_projectionMatrixMode", 1)
	b.Int("m_GateFitMode", 2)
	b.Int("m_FOVAxisMode", 0)
	b.Raw("m_NormalizedViewPortRect", "{serializedVersion: 2, x: 0, y: 0, width: 1, height: 1}")
	b.Float("near clip plane", p.Float("nearClip", 0.3))
	b.Float("far clip plane", p.Float("farClip", 1000))
	b.Float("field of view", p.Float("fov", 60))
	b.Flag("orthographic", p.Bool("orthographic", false))
	b.Float("orthographic size", p.Float("orthographicSize", 5))
	b.Float("m_Depth", p.Float("depth", -1))
	cullingMask(b)
	b.Int("m_RenderingPath", -1)
	b.Ref("m_TargetTexture", 0)
	b.Int("m_TargetDisplay", p.Int("targetDisplay", 0))
	b.Int("m_TargetEye", 3)
	b.Flag("m_HDR", p.Bool("hdr", true))
	b.Flag("m_AllowMSAA", p.Bool("allowMSAA", true))
	b.Int("m_AllowDynamicResolution", 0)
	b.Int("m_ForceIntoRT", 0)
	b.Flag("m_OcclusionCulling", p.Bool("occlusionCulling", true))
	b.Float("m_StereoConvergence", 10)
	b.Float("m_StereoSeparation", 0.022)
}

func renderLight(b *Block, p *models.Properties) {
	b.Int("m_Enabled", 1)
	b.Int("serializedVersion", 10)
	b.Int("m_Type", enumProp(p, lightTypes, 1, "lightType", "type"))
	b.Int("m_Shape", 0)
	b.Color("m_Color", p.Color("color", lightColor))
	b.Float("m_Intensity", p.Float("intensity", 1))
	b.Float("m_Range", p.Float("range", 10))
	b.Float("m_SpotAngle", p.Float("spotAngle", 30))
	b.Float("m_InnerSpotAngle", p.Float("innerSpotAngle", 21.80208))
	b.Float("m_CookieSize", 10)
	b.Map("m_Shadows", func(s *Block) {
		s.Int("m_Type", enumProp(p, shadowTypes, 2, "shadowType", "shadows"))
		s.Int("m_Resolution", -1)
		s.Int("m_CustomResolution", -1)
		s.Float("m_Strength", p.Float("shadowStrength", 1))
		s.Float("m_Bias", 0.05)
		s.Float("m_NormalBias", 0.4)
		s.Float("m_NearPlane", 0.2)
	})
	b.Ref("m_Cookie", 0)
	b.Int("m_DrawHalo", 0)
	b.Ref("m_Flare", 0)
	b.Int("m_RenderMode", 0)
	cullingMask(b)
	b.Int("m_Lightmapping", 4)
	b.Float("m_BounceIntensity", p.Float("bounceIntensity", 1))
}

// MeshFileID returns the built-in mesh fileID for a primitive name.
// Unknown names fall back to the cube.
func MeshFileID(name string) int64 {
	if id, ok := builtinMeshes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id
	}
	return builtinMeshes["cube"]
}

func renderMeshFilter(b *Block, p *models.Properties) {
	b.AssetRef("m_Mesh", MeshFileID(p.Text("mesh", "cube")), builtinExtraGUID, 0)
}

func renderMeshRenderer(b *Block, p *models.Properties) {
	b.Flag("m_Enabled", p.Bool("enabled", true))
	b.Int("m_CastShadows", p.Int("castShadows", 1))
	b.Flag("m_ReceiveShadows", p.Bool("receiveShadows", true))
	b.Int("m_DynamicOccludee", 1)
	b.Int("m_MotionVectors", 1)
	b.Int("m_LightProbeUsage", 1)
	b.Int("m_ReflectionProbeUsage", 1)
	b.Int("m_RenderingLayerMask", 1)
	b.Int("m_RendererPriority", 0)
	b.Seq("m_Materials", func(s *Seq) {
		if guid := p.Text("materialGuid", ""); guid != "" {
			s.Value(formatAssetRef(MaterialHandle, guid, 2))
			return
		}
		s.Value(formatAssetRef(defaultMaterialFileID, builtinDefaultGUID, 0))
	})
	b.Ref("m_ProbeAnchor", 0)
	b.Ref("m_LightProbeVolumeOverride", 0)
	b.Int("m_SortingLayerID", 0)
	b.Int("m_SortingLayer", 0)
	b.Int("m_SortingOrder", p.Int("sortingOrder", 0))
}

func colliderPrelude(b *Block, p *models.Properties) {
	b.Ref("m_Material", 0)
	b.Flag("m_IsTrigger", p.Bool("isTrigger", false))
	b.Flag("m_Enabled", p.Bool("enabled", true))
}

func renderBoxCollider(b *Block, p *models.Properties) {
	colliderPrelude(b, p)
	b.Int("serializedVersion", 3)
	b.Vector3("m_Size", p.Vector3("size", models.Vector3One))
	b.Vector3("m_Center", p.Vector3("center", models.Vector3Zero))
}

func renderSphereCollider(b *Block, p *models.Properties) {
	colliderPrelude(b, p)
	b.Int("serializedVersion", 3)
	b.Float("m_Radius", p.Float("radius", 0.5))
	b.Vector3("m_Center", p.Vector3("center", models.Vector3Zero))
}

func renderCapsuleCollider(b *Block, p *models.Properties) {
	colliderPrelude(b, p)
	b.Int("serializedVersion", 2)
	b.Float("m_Radius", p.Float("radius", 0.5))
	b.Float("m_Height", p.Float("height", 2))
	b.Int("m_Direction", p.Int("direction", 1))
	b.Vector3("m_Center", p.Vector3("center", models.Vector3Zero))
}

func renderRigidbody(b *Block, p *models.Properties) {
	b.Int("serializedVersion", 4)
	b.Float("m_Mass", p.Float("mass", 1))
	b.Float("m_Drag", p.Float("drag", 0))
	b.Float("m_AngularDrag", p.Float("angularDrag", 0.05))
	b.Vector3("m_CenterOfMass", models.Vector3Zero)
	b.Flag("m_UseGravity", p.Bool("useGravity", true))
	b.Flag("m_IsKinematic", p.Bool("isKinematic", false))
	b.Int("m_Interpolate", p.Int("interpolate", 0))
	b.Int("m_Constraints", p.Int("constraints", 0))
	b.Int("m_CollisionDetection", p.Int("collisionDetection", 0))
}

func renderAudioSource(b *Block, p *models.Properties) {
	b.Flag("m_Enabled", p.Bool("enabled", true))
	b.Int("serializedVersion", 4)
	b.Ref("OutputAudioMixerGroup", 0)
	if guid := p.Text("clipGuid", ""); guid != "" {
		b.AssetRef("m_audioClip", audioClipFileID, guid, 3)
	} else {
		b.Ref("m_audioClip", 0)
	}
	b.Flag("m_PlayOnAwake", p.Bool("playOnAwake", true))
	b.Float("m_Volume", p.Float("volume", 1))
	b.Float("m_Pitch", p.Float("pitch", 1))
	b.Flag("Loop", p.Bool("loop", false))
	b.Flag("Mute", p.Bool("mute", false))
	b.Int("Spatialize", 0)
	b.Int("Priority", p.Int("priority", 128))
	b.Float("DopplerLevel", 1)
	b.Float("MinDistance", p.Float("minDistance", 1))
	b.Float("MaxDistance", p.Float("maxDistance", 500))
	b.Float("Pan2D", 0)
	b.Int("rolloffMode", 0)
	b.Int("BypassEffects", 0)
	b.Int("BypassListenerEffects", 0)
	b.Int("BypassReverbZones", 0)
}

func renderMonoBehaviour(b *Block, p *models.Properties) {
	b.Flag("m_Enabled", p.Bool("enabled", true))
	b.Int("m_EditorHideFlags", 0)
	if guid := p.Text("scriptGuid", ""); guid != "" {
		b.AssetRef("m_Script", scriptFileID, guid, 3)
	} else {
		b.Ref("m_Script", 0)
	}
	b.Text("m_Name", "")
	b.Text("m_EditorClassIdentifier", "")
}
