package models

// Vector3 is a 3 component vector as stored by Unity (single precision).
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Quaternion is a rotation stored in Unity's x, y, z, w order.
type Quaternion struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

var (
	Vector3Zero        = Vector3{}
	Vector3One         = Vector3{X: 1, Y: 1, Z: 1}
	QuaternionIdentity = Quaternion{W: 1}
	ColorWhite         = Color{R: 1, G: 1, B: 1, A: 1}
)

// Vec3 is shorthand for building a Vector3.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// RGBA is shorthand for building a Color.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}
