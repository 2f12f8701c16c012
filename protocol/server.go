package protocol

type PlayerSnapshot struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	RotationY float64 `json:"rotationY"`
	Health    int     `json:"health"`
}

type BuildSnapshot struct {
	ID      int64   `json:"id"`
	OwnerID string  `json:"ownerId"`
	Type    string  `json:"type"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	RotY    float64 `json:"rotY"`
}

// InitState goes to a session exactly once, right after connect.
type InitState struct {
	SelfID  string                    `json:"selfId"`
	Players map[string]PlayerSnapshot `json:"players"`
	Builds  []BuildSnapshot           `json:"builds"`
}

type PlayerJoined struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	RotationY float64 `json:"rotationY"`
	Health    int     `json:"health"`
}

type PlayerLeft struct {
	ID string `json:"id"`
}

// WorldState is the full periodic snapshot, pushed every tick whether or
// not anything changed.
type WorldState struct {
	Players map[string]PlayerSnapshot `json:"players"`
	Builds  []BuildSnapshot           `json:"builds"`
}

type PlayerHit struct {
	VictimID  string `json:"victimId"`
	NewHealth int    `json:"newHealth"`
}

// Respawn is targeted at the victim only, carrying its new position.
type Respawn struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type BuildPlaced struct {
	Build BuildSnapshot `json:"build"`
}
