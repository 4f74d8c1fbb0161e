package emitter

import (
	"github.com/unity-forge/backend/internal/models"
)

const standardShaderFileID int64 = 46

// blendSettings are the Standard shader state values the editor derives
// from _Mode when the inspector changes it.
type blendSettings struct {
	src, dst, zWrite int
	queue            int
	renderType       string
	keyword          string
}

var blendModes = map[models.BlendMode]blendSettings{
	models.BlendOpaque:      {src: 1, dst: 0, zWrite: 1, queue: -1},
	models.BlendCutout:      {src: 1, dst: 0, zWrite: 1, queue: 2450, renderType: "TransparentCutout", keyword: "_ALPHATEST_ON"},
	models.BlendFade:        {src: 5, dst: 10, zWrite: 0, queue: 3000, renderType: "Transparent", keyword: "_ALPHABLEND_ON"},
	models.BlendTransparent: {src: 1, dst: 10, zWrite: 0, queue: 3000, renderType: "Transparent", keyword: "_ALPHAPREMULTIPLY_ON"},
}

// RenderMaterial renders a .mat document with one Material block. The block
// takes one handle from ids; hosts that want renderers to reference the
// material by GUID seed ids at MaterialHandle.
func RenderMaterial(ids *Allocator, m *models.Material) string {
	ids = orDefault(ids)
	modeID := m.BlendMode
	mode, ok := blendModes[modeID]
	if !ok {
		modeID = models.BlendOpaque
		mode = blendModes[modeID]
	}
	name := m.Name
	if name == "" {
		name = models.DefaultMaterialName
	}

	var keywords []string
	if mode.keyword != "" {
		keywords = append(keywords, mode.keyword)
	}
	if m.Emission != nil {
		keywords = append(keywords, "_EMISSION")
	}

	w := NewWriter()
	w.Header()
	b := w.Document(models.ClassMaterial, ids.Next(), "Material")
	b.Int("serializedVersion", 8)
	writeObjectPrelude(b)
	b.Text("m_Name", name)
	b.AssetRef("m_Shader", standardShaderFileID, builtinDefaultGUID, 0)
	b.Ref("m_Parent", 0)
	b.Int("m_ModifiedSerializedProperties", 0)
	if len(keywords) == 0 {
		b.EmptySeq("m_ValidKeywords")
	} else {
		b.Seq("m_ValidKeywords", func(s *Seq) {
			for _, k := range keywords {
				s.Value(k)
			}
		})
	}
	b.EmptySeq("m_InvalidKeywords")
	b.Int("m_LightmapFlags", 4)
	b.Int("m_EnableInstancingVariants", 0)
	b.Int("m_DoubleSidedGI", 0)
	b.Int("m_CustomRenderQueue", mode.queue)
	if mode.renderType == "" {
		b.EmptyMap("stringTagMap")
	} else {
		b.Map("stringTagMap", func(t *Block) {
			t.Text("RenderType", mode.renderType)
		})
	}
	b.EmptySeq("disabledShaderPasses")
	b.Blank("m_LockedProperties")
	b.Map("m_SavedProperties", func(sp *Block) {
		sp.Int("serializedVersion", 3)
		sp.EmptySeq("m_TexEnvs")
		sp.EmptySeq("m_Ints")
		sp.Seq("m_Floats", func(s *Seq) {
			s.Item("_DstBlend", itoa(mode.dst))
			s.Item("_Glossiness", formatFloat(m.Smoothness))
			s.Item("_Metallic", formatFloat(m.Metallic))
			s.Item("_Mode", itoa(int(modeID)))
			s.Item("_Smoothness", formatFloat(m.Smoothness))
			s.Item("_SrcBlend", itoa(mode.src))
			s.Item("_ZWrite", itoa(mode.zWrite))
		})
		sp.Seq("m_Colors", func(s *Seq) {
			s.Item("_Color", formatColor(m.Color))
			if m.Emission != nil {
				s.Item("_EmissionColor", formatColor(*m.Emission))
			}
		})
	})
	b.EmptySeq("m_BuildTextureStacks")
	return w.String()
}
