package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/unity-forge/backend/internal/models"
)

// ParseSceneObjectsJSON decodes a JSON document and reads it with
// ParseSceneObjects.
func ParseSceneObjectsJSON(data []byte) ([]*models.SceneObject, error) {
	tree, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return ParseSceneObjects(tree)
}

// ParseSceneObjectJSON decodes a JSON document holding a single object.
func ParseSceneObjectJSON(data []byte) (*models.SceneObject, error) {
	tree, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return ParseSceneObject(tree)
}

func decodeJSON(data []byte) (any, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding json: %v: %w", err, models.ErrInvalidInput)
	}
	return tree, nil
}

// ParseSceneObjects reads a list of scene objects from a decoded JSON tree.
// The tree may be an array of objects, an object carrying a "gameObjects"
// (or "objects") array, or a single object.
func ParseSceneObjects(tree any) ([]*models.SceneObject, error) {
	var items []any
	switch t := tree.(type) {
	case []any:
		items = t
	case map[string]any:
		list, ok := t["gameObjects"]
		if !ok {
			list, ok = t["objects"]
		}
		if !ok {
			obj, err := ParseSceneObject(t)
			if err != nil {
				return nil, err
			}
			return []*models.SceneObject{obj}, nil
		}
		arr, isArr := list.([]any)
		if !isArr {
			return nil, invalid("gameObjects", "array", list)
		}
		items = arr
	default:
		return nil, invalid("scene", "object or array", tree)
	}

	objects := make([]*models.SceneObject, 0, len(items))
	for i, item := range items {
		obj, err := ParseSceneObject(item)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// ParseSceneObject reads one scene object. Absent fields keep the defaults
// of models.NewSceneObject; fields of the wrong type are rejected.
func ParseSceneObject(tree any) (*models.SceneObject, error) {
	fields, ok := tree.(map[string]any)
	if !ok {
		return nil, invalid("object", "object", tree)
	}

	obj := models.NewSceneObject("")
	if v, ok := fields["name"]; ok && v != nil {
		s, err := stringField("name", v)
		if err != nil {
			return nil, err
		}
		if s != "" {
			obj.Name = s
		}
	}
	if v, ok := fields["tag"]; ok && v != nil {
		s, err := stringField("tag", v)
		if err != nil {
			return nil, err
		}
		if s != "" {
			obj.Tag = s
		}
	}
	if v, ok := fields["layer"]; ok {
		n, err := intField("layer", v)
		if err != nil {
			return nil, err
		}
		obj.Layer = n
	}
	if v, ok := fields["isActive"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return nil, invalid("isActive", "boolean", v)
		}
		obj.Active = b
	}
	if v, ok := fields["position"]; ok {
		vec, err := vectorField("position", v, 0)
		if err != nil {
			return nil, err
		}
		obj.Position = vec
	}
	if v, ok := fields["scale"]; ok {
		vec, err := vectorField("scale", v, 1)
		if err != nil {
			return nil, err
		}
		obj.Scale = vec
	}
	if v, ok := fields["eulerAngles"]; ok {
		vec, err := vectorField("eulerAngles", v, 0)
		if err != nil {
			return nil, err
		}
		obj.EulerHint = vec
		obj.Rotation = EulerToQuaternion(vec)
	}
	if v, ok := fields["components"]; ok && v != nil {
		list, isArr := v.([]any)
		if !isArr {
			return nil, invalid("components", "array", v)
		}
		for i, item := range list {
			c, err := parseComponent(item)
			if err != nil {
				return nil, fmt.Errorf("component %d: %w", i, err)
			}
			obj.Components = append(obj.Components, c)
		}
	}
	return obj, nil
}

// parseComponent maps "type" to a class ID and copies every other field into
// the property bag. Values that are neither scalars, colors nor vectors are
// dropped.
func parseComponent(tree any) (*models.ComponentDescription, error) {
	fields, ok := tree.(map[string]any)
	if !ok {
		return nil, invalid("component", "object", tree)
	}

	typeName, _ := fields["type"].(string)
	c := models.NewComponent(ClassIDForType(typeName))

	for _, key := range sortedKeys(fields) {
		if key == "type" {
			continue
		}
		if v, ok := inferProperty(fields[key]); ok {
			c.Properties.Set(key, v)
		}
	}
	return c, nil
}

func inferProperty(v any) (models.PropertyValue, bool) {
	switch t := v.(type) {
	case float64:
		return models.Number(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return models.PropertyValue{}, false
		}
		return models.Number(f), true
	case bool:
		return models.Bool(t), true
	case string:
		return models.String(t), true
	case map[string]any:
		if _, ok := t["r"]; ok {
			return models.ColorValue(readColor(t)), true
		}
		if _, ok := t["x"]; ok {
			return models.Vector(readVector(t, 0)), true
		}
	}
	return models.PropertyValue{}, false
}

func invalid(field, want string, got any) error {
	return fmt.Errorf("%s: expected %s, got %s: %w", field, want, jsonKind(got), models.ErrInvalidInput)
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func stringField(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalid(field, "string", v)
	}
	return s, nil
}

func numberField(field string, v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, invalid(field, "number", v)
		}
		return f, nil
	}
	return 0, invalid(field, "number", v)
}

func intField(field string, v any) (int, error) {
	f, err := numberField(field, v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: expected integer, got %v: %w", field, f, models.ErrInvalidInput)
	}
	// Unity serializes ints as 32-bit.
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%s: %v out of range: %w", field, f, models.ErrInvalidInput)
	}
	return int(f), nil
}

// vectorField reads {x, y, z} or [x, y, z]. Missing components take def.
func vectorField(field string, v any, def float32) (models.Vector3, error) {
	switch t := v.(type) {
	case map[string]any:
		for _, axis := range []string{"x", "y", "z"} {
			if c, ok := t[axis]; ok {
				if _, err := numberField(field+"."+axis, c); err != nil {
					return models.Vector3{}, err
				}
			}
		}
		return readVector(t, def), nil
	case []any:
		if len(t) != 3 {
			return models.Vector3{}, fmt.Errorf("%s: expected 3 components, got %d: %w", field, len(t), models.ErrInvalidInput)
		}
		var out [3]float32
		for i, c := range t {
			f, err := numberField(fmt.Sprintf("%s[%d]", field, i), c)
			if err != nil {
				return models.Vector3{}, err
			}
			out[i] = float32(f)
		}
		return models.Vec3(out[0], out[1], out[2]), nil
	}
	return models.Vector3{}, invalid(field, "vector", v)
}

// colorField reads {r, g, b, a}; missing channels are 1.
func colorField(field string, v any) (models.Color, error) {
	t, ok := v.(map[string]any)
	if !ok {
		return models.Color{}, invalid(field, "color", v)
	}
	for _, ch := range []string{"r", "g", "b", "a"} {
		if c, ok := t[ch]; ok {
			if _, err := numberField(field+"."+ch, c); err != nil {
				return models.Color{}, err
			}
		}
	}
	return readColor(t), nil
}

func readVector(m map[string]any, def float32) models.Vector3 {
	return models.Vec3(component(m, "x", def), component(m, "y", def), component(m, "z", def))
}

func readColor(m map[string]any) models.Color {
	return models.RGBA(component(m, "r", 1), component(m, "g", 1), component(m, "b", 1), component(m, "a", 1))
}

func component(m map[string]any, key string, def float32) float32 {
	switch t := m[key].(type) {
	case float64:
		return float32(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return float32(f)
		}
	}
	return def
}

// sortedKeys returns map keys in a stable order so that property bags built
// from the same JSON are identical.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
