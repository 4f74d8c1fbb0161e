package models

import (
	"fmt"
	"strings"
)

// BlendMode is the Standard shader rendering mode stored as _Mode.
type BlendMode int

const (
	BlendOpaque BlendMode = iota
	BlendCutout
	BlendFade
	BlendTransparent
)

func (m BlendMode) String() string {
	switch m {
	case BlendOpaque:
		return "Opaque"
	case BlendCutout:
		return "Cutout"
	case BlendFade:
		return "Fade"
	case BlendTransparent:
		return "Transparent"
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode accepts a mode name (case-insensitive).
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "opaque":
		return BlendOpaque, nil
	case "cutout":
		return BlendCutout, nil
	case "fade":
		return BlendFade, nil
	case "transparent":
		return BlendTransparent, nil
	}
	return BlendOpaque, fmt.Errorf("unknown blend mode %q: %w", s, ErrInvalidInput)
}

// Material describes a Standard shader material.
type Material struct {
	Name       string
	Color      Color
	Emission   *Color
	Metallic   float32 // [0, 1]
	Smoothness float32 // [0, 1]
	BlendMode  BlendMode
}

const DefaultMaterialName = "New Material"

// NewMaterial returns a white, non-metallic opaque material.
func NewMaterial(name string) *Material {
	if name == "" {
		name = DefaultMaterialName
	}
	return &Material{
		Name:       name,
		Color:      ColorWhite,
		Smoothness: 0.5,
	}
}
