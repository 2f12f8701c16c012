package protocol

// Inbound payloads from the client. Every field is a claim to be
// validated at the boundary, never trusted as-is.

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Move struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	RotationY float64 `json:"rotationY"`
}

type Shoot struct {
	Origin    Vec3 `json:"origin"`
	Direction Vec3 `json:"direction"`
}

type PlaceBuild struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	RotY float64 `json:"rotY,omitempty"`
}

// ValidBuildType reports whether t is one of the placeable piece types.
func ValidBuildType(t string) bool {
	switch t {
	case "wall", "floor", "ramp", "roof":
		return true
	}
	return false
}
