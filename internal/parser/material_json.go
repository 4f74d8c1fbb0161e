package parser

import (
	"fmt"

	"github.com/unity-forge/backend/internal/models"
)

// ParseMaterialJSON decodes a JSON material description.
func ParseMaterialJSON(data []byte) (*models.Material, error) {
	tree, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return ParseMaterial(tree)
}

// ParseMaterial reads a material description. Recognized fields are name,
// color, emissionColor, metallic, smoothness and renderMode (alias
// blendMode), which may be a mode name or its integer value.
func ParseMaterial(tree any) (*models.Material, error) {
	fields, ok := tree.(map[string]any)
	if !ok {
		return nil, invalid("material", "object", tree)
	}

	m := models.NewMaterial("")
	if v, ok := fields["name"]; ok && v != nil {
		s, err := stringField("name", v)
		if err != nil {
			return nil, err
		}
		if s != "" {
			m.Name = s
		}
	}
	if v, ok := fields["color"]; ok {
		c, err := colorField("color", v)
		if err != nil {
			return nil, err
		}
		m.Color = c
	}
	if v, ok := fields["emissionColor"]; ok && v != nil {
		c, err := colorField("emissionColor", v)
		if err != nil {
			return nil, err
		}
		m.Emission = &c
	}
	if v, ok := fields["metallic"]; ok {
		f, err := numberField("metallic", v)
		if err != nil {
			return nil, err
		}
		m.Metallic = clamp01(f)
	}
	if v, ok := fields["smoothness"]; ok {
		f, err := numberField("smoothness", v)
		if err != nil {
			return nil, err
		}
		m.Smoothness = clamp01(f)
	}

	modeValue, ok := fields["renderMode"]
	if !ok {
		modeValue, ok = fields["blendMode"]
	}
	if ok {
		mode, err := parseBlendModeValue(modeValue)
		if err != nil {
			return nil, err
		}
		m.BlendMode = mode
	}
	return m, nil
}

func parseBlendModeValue(v any) (models.BlendMode, error) {
	if s, ok := v.(string); ok {
		return models.ParseBlendMode(s)
	}
	n, err := intField("renderMode", v)
	if err != nil {
		return models.BlendOpaque, err
	}
	if n < int(models.BlendOpaque) || n > int(models.BlendTransparent) {
		return models.BlendOpaque, fmt.Errorf("renderMode: %d out of range: %w", n, models.ErrInvalidInput)
	}
	return models.BlendMode(n), nil
}

func clamp01(f float64) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return float32(f)
}
