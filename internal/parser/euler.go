package parser

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/unity-forge/backend/internal/models"
)

// EulerToQuaternion converts Euler angles in degrees to a rotation using
// Unity's convention: rotate about Z, then X, then Y (q = qY * qX * qZ).
func EulerToQuaternion(euler models.Vector3) models.Quaternion {
	qx := mgl32.QuatRotate(mgl32.DegToRad(euler.X), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(euler.Y), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(euler.Z), mgl32.Vec3{0, 0, 1})

	q := qy.Mul(qx).Mul(qz)
	return models.Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
