package emitter

import "github.com/unity-forge/backend/internal/models"

// Fixed handles of the per-scene settings blocks.
const (
	occlusionCullingHandle int64 = 1
	renderSettingsHandle   int64 = 2
	lightmapSettingsHandle int64 = 3
	navMeshSettingsHandle  int64 = 4
)

func writeSceneSettings(w *Writer) {
	b := w.Document(models.ClassOcclusionCullingSettings, occlusionCullingHandle, "OcclusionCullingSettings")
	b.Int("m_ObjectHideFlags", 0)
	b.Int("serializedVersion", 2)
	b.Map("m_OcclusionBakeSettings", func(s *Block) {
		s.Float("smallestOccluder", 5)
		s.Float("smallestHole", 0.25)
		s.Float("backfaceThreshold", 100)
	})
	b.Ref("m_SceneGUID", 0)
	b.Ref("m_OcclusionCullingData", 0)

	b = w.Document(models.ClassRenderSettings, renderSettingsHandle, "RenderSettings")
	b.Int("m_ObjectHideFlags", 0)
	b.Int("serializedVersion", 9)
	b.Int("m_Fog", 0)
	b.Color("m_FogColor", models.RGBA(0.5, 0.5, 0.5, 1))
	b.Int("m_FogMode", 3)
	b.Float("m_FogDensity", 0.01)
	b.Float("m_LinearFogStart", 0)
	b.Float("m_LinearFogEnd", 300)
	b.Color("m_AmbientSkyColor", models.RGBA(0.212, 0.227, 0.259, 1))
	b.Color("m_AmbientEquatorColor", models.RGBA(0.114, 0.125, 0.133, 1))
	b.Color("m_AmbientGroundColor", models.RGBA(0.047, 0.043, 0.035, 1))
	b.Float("m_AmbientIntensity", 1)
	b.Int("m_AmbientMode", 0)
	b.Color("m_SubtractiveShadowColor", models.RGBA(0.42, 0.478, 0.627, 1))
	b.AssetRef("m_SkyboxMaterial", 10304, builtinDefaultGUID, 0)
	b.Float("m_HaloStrength", 0.5)
	b.Float("m_FlareStrength", 1)
	b.Float("m_FlareFadeSpeed", 3)
	b.Ref("m_HaloTexture", 0)
	b.AssetRef("m_SpotCookie", 10001, builtinExtraGUID, 0)
	b.Int("m_DefaultReflectionMode", 0)
	b.Int("m_DefaultReflectionResolution", 128)
	b.Int("m_ReflectionBounces", 1)
	b.Float("m_ReflectionIntensity", 1)
	b.Ref("m_CustomReflection", 0)
	b.Ref("m_Sun", 0)

	b = w.Document(models.ClassLightmapSettings, lightmapSettingsHandle, "LightmapSettings")
	b.Int("m_ObjectHideFlags", 0)
	b.Int("serializedVersion", 12)
	b.Map("m_GISettings", func(s *Block) {
		s.Int("serializedVersion", 2)
		s.Float("m_BounceScale", 1)
		s.Float("m_IndirectOutputScale", 1)
		s.Float("m_AlbedoBoost", 1)
		s.Int("m_EnvironmentLightingMode", 0)
		s.Int("m_EnableBakedLightmaps", 1)
		s.Int("m_EnableRealtimeLightmaps", 0)
	})
	b.Ref("m_LightingDataAsset", 0)
	b.Ref("m_LightingSettings", 0)

	b = w.Document(models.ClassNavMeshSettings, navMeshSettingsHandle, "NavMeshSettings")
	b.Int("serializedVersion", 2)
	b.Int("m_ObjectHideFlags", 0)
	b.Map("m_BuildSettings", func(s *Block) {
		s.Int("serializedVersion", 3)
		s.Int("agentTypeID", 0)
		s.Float("agentRadius", 0.5)
		s.Float("agentHeight", 2)
		s.Float("agentSlope", 45)
		s.Float("agentClimb", 0.4)
		s.Float("ledgeDropHeight", 0)
		s.Float("maxJumpAcrossDistance", 0)
		s.Float("minRegionArea", 2)
		s.Int("manualCellSize", 0)
		s.Float("cellSize", 0.16666667)
		s.Int("manualTileSize", 0)
		s.Int("tileSize", 256)
		s.Int("buildHeightMesh", 0)
		s.Int("maxJobWorkers", 0)
		s.Int("preserveTilesOutsideBounds", 0)
		s.Map("debug", func(d *Block) {
			d.Int("m_Flags", 0)
		})
	})
	b.Ref("m_NavMeshData", 0)
}
