package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unity-forge/backend/internal/models"
)

type vec [3]float64

func rotX(deg float64, v vec) vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec{v[0], c*v[1] - s*v[2], s*v[1] + c*v[2]}
}

func rotY(deg float64, v vec) vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec{c*v[0] + s*v[2], v[1], -s*v[0] + c*v[2]}
}

func rotZ(deg float64, v vec) vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec{c*v[0] - s*v[1], s*v[0] + c*v[1], v[2]}
}

// rotateByQuaternion applies q to v (v' = q v q*).
func rotateByQuaternion(q models.Quaternion, v vec) vec {
	qx, qy, qz, qw := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)
	tx := 2 * (qy*v[2] - qz*v[1])
	ty := 2 * (qz*v[0] - qx*v[2])
	tz := 2 * (qx*v[1] - qy*v[0])
	return vec{
		v[0] + qw*tx + (qy*tz - qz*ty),
		v[1] + qw*ty + (qz*tx - qx*tz),
		v[2] + qw*tz + (qx*ty - qy*tx),
	}
}

func TestEulerToQuaternion_Zero(t *testing.T) {
	assert.Equal(t, models.QuaternionIdentity, EulerToQuaternion(models.Vector3Zero))
}

func TestEulerToQuaternion_HalfTurnAboutY(t *testing.T) {
	q := EulerToQuaternion(models.Vec3(0, 180, 0))
	// q and -q describe the same rotation.
	sign := float32(1)
	if q.Y < 0 {
		sign = -1
	}
	assert.InDelta(t, 0, sign*q.X, 1e-6)
	assert.InDelta(t, 1, sign*q.Y, 1e-6)
	assert.InDelta(t, 0, sign*q.Z, 1e-6)
	assert.InDelta(t, 0, sign*q.W, 1e-6)
}

func TestEulerToQuaternion_MatchesZXYMatrices(t *testing.T) {
	angles := []models.Vector3{
		models.Vec3(0, 180, 0),
		models.Vec3(50, -30, 0),
		models.Vec3(90, 0, 0),
		models.Vec3(0, 0, 90),
		models.Vec3(10, 20, 30),
		models.Vec3(-45, 135, 270),
	}
	points := []vec{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.3, -0.7, 0.5}}

	for _, e := range angles {
		q := EulerToQuaternion(e)
		norm := math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W))
		assert.InDelta(t, 1, norm, 1e-5, "euler %v", e)

		for _, p := range points {
			want := rotY(float64(e.Y), rotX(float64(e.X), rotZ(float64(e.Z), p)))
			got := rotateByQuaternion(q, p)
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-5, "euler %v point %v axis %d", e, p, i)
			}
		}
	}
}
