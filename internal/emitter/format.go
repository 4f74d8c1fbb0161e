package emitter

import (
	"math"
	"strconv"
	"strings"

	"github.com/unity-forge/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// formatFloat writes the shortest decimal that round-trips through float32.
// Exponent notation is never used.
func formatFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'f', -1, 32)
	if s == "-0" {
		return "0"
	}
	return s
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func formatVector3(v models.Vector3) string {
	return "{x: " + formatFloat(v.X) + ", y: " + formatFloat(v.Y) + ", z: " + formatFloat(v.Z) + "}"
}

func formatQuaternion(q models.Quaternion) string {
	return "{x: " + formatFloat(q.X) + ", y: " + formatFloat(q.Y) + ", z: " + formatFloat(q.Z) + ", w: " + formatFloat(q.W) + "}"
}

func formatColor(c models.Color) string {
	return "{r: " + formatFloat(c.R) + ", g: " + formatFloat(c.G) + ", b: " + formatFloat(c.B) + ", a: " + formatFloat(c.A) + "}"
}

func formatRef(fileID int64) string {
	return "{fileID: " + strconv.FormatInt(fileID, 10) + "}"
}

func formatAssetRef(fileID int64, guid string, typ int) string {
	return "{fileID: " + strconv.FormatInt(fileID, 10) + ", guid: " + guid + ", type: " + strconv.Itoa(typ) + "}"
}

// quoteText returns s as a YAML plain or quoted scalar that fits on one line.
// yaml.v3 decides when quoting is needed (leading indicators, ": ",
// values that would resolve to bools or numbers).
func quoteText(s string) string {
	if s == "" {
		return ""
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	text := strings.TrimSuffix(string(out), "\n")
	if strings.Contains(text, "\n") {
		// Block scalars cannot follow a key on the same line.
		return strconv.Quote(s)
	}
	return text
}
