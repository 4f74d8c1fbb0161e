// Package meta writes the .meta sidecars Unity keeps next to every asset.
package meta

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/unity-forge/backend/internal/emitter"
	"github.com/unity-forge/backend/internal/models"
)

// Extension is appended to an asset path to name its sidecar.
const Extension = ".meta"

var (
	guidRe     = regexp.MustCompile(`^[0-9a-f]{32}$`)
	guidLineRe = regexp.MustCompile(`(?m)^guid:\s*([0-9a-fA-F]{32})\s*$`)
)

var extensionKinds = map[string]models.AssetKind{
	".cs": models.AssetScript,

	".png":  models.AssetTexture,
	".jpg":  models.AssetTexture,
	".jpeg": models.AssetTexture,
	".tga":  models.AssetTexture,
	".psd":  models.AssetTexture,
	".bmp":  models.AssetTexture,
	".gif":  models.AssetTexture,
	".tif":  models.AssetTexture,
	".tiff": models.AssetTexture,
	".exr":  models.AssetTexture,
	".hdr":  models.AssetTexture,

	".wav":  models.AssetAudio,
	".mp3":  models.AssetAudio,
	".ogg":  models.AssetAudio,
	".aif":  models.AssetAudio,
	".aiff": models.AssetAudio,
	".flac": models.AssetAudio,
}

// NewGUID returns a random asset GUID: 32 lowercase hex characters.
func NewGUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// IsGUID reports whether s has the form NewGUID produces.
func IsGUID(s string) bool {
	return guidRe.MatchString(s)
}

// KindForPath picks the importer kind from the file extension.
func KindForPath(assetPath string) models.AssetKind {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(assetPath, "\\", "/")))
	if kind, ok := extensionKinds[ext]; ok {
		return kind
	}
	return models.AssetDefault
}

// ReadGUID extracts the guid line of a sidecar.
func ReadGUID(text string) (string, bool) {
	m := guidLineRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// Render returns the sidecar text for an asset of the given kind.
// Unknown kinds render as AssetDefault.
func Render(kind models.AssetKind, guid string) string {
	w := emitter.NewWriter()
	b := w.Root()
	b.Int("fileFormatVersion", 2)
	b.Raw("guid", guid)

	switch kind {
	case models.AssetScript:
		b.Map("MonoImporter", func(i *emitter.Block) {
			i.EmptyMap("externalObjects")
			i.Int("serializedVersion", 2)
			i.EmptySeq("defaultReferences")
			i.Int("executionOrder", 0)
			i.Raw("icon", "{instanceID: 0}")
			importerTrailer(i)
		})
	case models.AssetTexture:
		b.Map("TextureImporter", writeTextureImporter)
	case models.AssetAudio:
		b.Map("AudioImporter", func(i *emitter.Block) {
			i.EmptyMap("externalObjects")
			i.Int("serializedVersion", 2)
			i.Map("defaultSettings", func(s *emitter.Block) {
				s.Int("loadType", 0)
				s.Int("sampleRateSetting", 0)
				s.Int("sampleRateOverride", 44100)
				s.Int("compressionFormat", 1)
				s.Int("quality", 1)
				s.Int("conversionMode", 0)
			})
			i.EmptySeq("platformSettings")
			i.Int("forceToMono", 0)
			i.Int("normalize", 1)
			i.Int("preloadAudioData", 1)
			i.Int("loadInBackground", 0)
			i.Int("ambisonic", 0)
			i.Int("3D", 1)
			importerTrailer(i)
		})
	case models.AssetFolder:
		b.Raw("folderAsset", "yes")
		b.Map("DefaultImporter", defaultImporter)
	default:
		b.Map("DefaultImporter", defaultImporter)
	}
	return w.String()
}

func defaultImporter(i *emitter.Block) {
	i.EmptyMap("externalObjects")
	importerTrailer(i)
}

func importerTrailer(i *emitter.Block) {
	i.Blank("userData")
	i.Blank("assetBundleName")
	i.Blank("assetBundleVariant")
}

func writeTextureImporter(i *emitter.Block) {
	i.EmptyMap("fileIDToRecycleName")
	i.EmptyMap("externalObjects")
	i.Int("serializedVersion", 12)
	i.Map("mipmaps", func(m *emitter.Block) {
		m.Int("mipMapMode", 0)
		m.Int("enableMipMap", 1)
		m.Int("sRGBTexture", 1)
		m.Int("linearTexture", 0)
		m.Int("fadeOut", 0)
		m.Int("borderMipMap", 0)
		m.Int("mipMapsPreserveCoverage", 0)
		m.Float("alphaTestReferenceValue", 0.5)
		m.Int("mipMapFadeDistanceStart", 1)
		m.Int("mipMapFadeDistanceEnd", 3)
	})
	i.Map("bumpmap", func(m *emitter.Block) {
		m.Int("convertToNormalMap", 0)
		m.Int("externalNormalMap", 0)
		m.Float("heightScale", 0.25)
		m.Int("normalMapFilter", 0)
	})
	i.Int("isReadable", 0)
	i.Int("streamingMipmaps", 0)
	i.Int("grayScaleToAlpha", 0)
	i.Int("generateCubemap", 6)
	i.Int("cubemapConvolution", 0)
	i.Int("seamlessCubemap", 0)
	i.Int("textureFormat", 1)
	i.Int("maxTextureSize", 2048)
	i.Map("textureSettings", func(s *emitter.Block) {
		s.Int("serializedVersion", 2)
		s.Int("filterMode", 1)
		s.Int("aniso", 1)
		s.Int("mipBias", 0)
		s.Int("wrapU", 0)
		s.Int("wrapV", 0)
		s.Int("wrapW", 0)
	})
	i.Int("nPOTScale", 1)
	i.Int("lightmap", 0)
	i.Int("compressionQuality", 50)
	i.Int("spriteMode", 0)
	i.Int("spriteExtrude", 1)
	i.Int("spriteMeshType", 1)
	i.Int("alignment", 0)
	i.Raw("spritePivot", "{x: 0.5, y: 0.5}")
	i.Int("spritePixelsToUnits", 100)
	i.Raw("spriteBorder", "{x: 0, y: 0, z: 0, w: 0}")
	i.Int("spriteGenerateFallbackPhysicsShape", 1)
	i.Int("alphaUsage", 1)
	i.Int("alphaIsTransparency", 1)
	i.Int("textureType", 0)
	i.Int("textureShape", 1)
	i.Int("textureCompression", 1)
	i.EmptySeq("platformSettings")
	importerTrailer(i)
}
