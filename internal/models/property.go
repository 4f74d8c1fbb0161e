package models

import (
	"math"
	"strconv"
	"strings"
)

// PropertyKind identifies which field of a PropertyValue is populated.
type PropertyKind int

const (
	PropertyNumber PropertyKind = iota
	PropertyBool
	PropertyString
	PropertyVector
	PropertyColor
)

func (k PropertyKind) String() string {
	switch k {
	case PropertyNumber:
		return "number"
	case PropertyBool:
		return "bool"
	case PropertyString:
		return "string"
	case PropertyVector:
		return "vector"
	case PropertyColor:
		return "color"
	}
	return "unknown"
}

// PropertyValue is one entry of a component property bag.
type PropertyValue struct {
	Kind   PropertyKind
	Number float64
	Bool   bool
	String string
	Vector Vector3
	Color  Color
}

func Number(v float64) PropertyValue { return PropertyValue{Kind: PropertyNumber, Number: v} }
func Bool(v bool) PropertyValue { return PropertyValue{Kind: PropertyBool, Bool: v} }
func String(v string) PropertyValue { return PropertyValue{Kind: PropertyString, String: v} }
func Vector(v Vector3) PropertyValue { return PropertyValue{Kind: PropertyVector, Vector: v} }
func ColorValue(v Color) PropertyValue { return PropertyValue{Kind: PropertyColor, Color: v} }

// Properties is an insertion-ordered property bag. The zero value is ready to use.
type Properties struct {
	keys   []string
	values map[string]PropertyValue
}

// Set stores a value, keeping the original position when the key already exists.
func (p *Properties) Set(key string, v PropertyValue) {
	if p.values == nil {
		p.values = make(map[string]PropertyValue)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Get returns the raw value stored under key.
func (p *Properties) Get(key string) (PropertyValue, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *Properties) Len() int {
	return len(p.keys)
}

// Float reads a numeric property. Bools read as 0/1 and numeric strings are parsed.
func (p *Properties) Float(key string, def float32) float32 {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	switch v.Kind {
	case PropertyNumber:
		return float32(v.Number)
	case PropertyBool:
		if v.Bool {
			return 1
		}
		return 0
	case PropertyString:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64); err == nil {
			return float32(f)
		}
	}
	return def
}

// Int reads a numeric property rounded to the nearest integer.
func (p *Properties) Int(key string, def int) int {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	switch v.Kind {
	case PropertyNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return def
		}
		return int(math.Round(v.Number))
	case PropertyBool:
		if v.Bool {
			return 1
		}
		return 0
	case PropertyString:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64); err == nil {
			return int(math.Round(f))
		}
	}
	return def
}

// Bool reads a boolean property. Non-zero numbers are true and
// "true"/"false" strings are parsed.
func (p *Properties) Bool(key string, def bool) bool {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	switch v.Kind {
	case PropertyBool:
		return v.Bool
	case PropertyNumber:
		return v.Number != 0
	case PropertyString:
		if b, err := strconv.ParseBool(strings.TrimSpace(v.String)); err == nil {
			return b
		}
	}
	return def
}

// Text reads a property as text. Numbers and bools are formatted.
func (p *Properties) Text(key string, def string) string {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	switch v.Kind {
	case PropertyString:
		return v.String
	case PropertyNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case PropertyBool:
		return strconv.FormatBool(v.Bool)
	}
	return def
}

func (p *Properties) Vector3(key string, def Vector3) Vector3 {
	if v, ok := p.values[key]; ok && v.Kind == PropertyVector {
		return v.Vector
	}
	return def
}

func (p *Properties) Color(key string, def Color) Color {
	if v, ok := p.values[key]; ok && v.Kind == PropertyColor {
		return v.Color
	}
	return def
}
