package game

import (
	"math/rand"
	"time"
)

// Internal truth authoritative world state. The arena loop is the single
// writer; nothing here locks.

type Player struct {
	ID        string
	X, Y, Z   float64
	RotationY float64
	Health    int
}

type Build struct {
	ID      int64
	OwnerID string
	Type    string
	X, Y, Z float64
	RotY    float64
}

type World struct {
	Players map[string]*Player
	Builds  []Build // creation order, relevant for snapshot stability

	nextBuildID int64
	rng         *rand.Rand
}

// NewWorld creates an empty world. Pass a seeded rng for deterministic
// spawns in tests; nil gets a time-seeded one.
func NewWorld(rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &World{
		Players:     make(map[string]*Player),
		nextBuildID: 1,
		rng:         rng,
	}
}

func (w *World) spawnPoint() (x, z float64) {
	x = w.rng.Float64()*2*SpawnRange - SpawnRange
	z = w.rng.Float64()*2*SpawnRange - SpawnRange
	return x, z
}

func (w *World) CreatePlayer(id string) *Player {
	p := &Player{ID: id, Y: SpawnY, Health: MaxHealth}
	p.X, p.Z = w.spawnPoint()
	w.Players[id] = p
	return p
}

// RemovePlayer deletes the player and every build it owns.
func (w *World) RemovePlayer(id string) {
	delete(w.Players, id)
	kept := w.Builds[:0]
	for _, b := range w.Builds {
		if b.OwnerID != id {
			kept = append(kept, b)
		}
	}
	w.Builds = kept
}

func clamp(v float64) float64 {
	if v > ArenaBound {
		return ArenaBound
	}
	if v < -ArenaBound {
		return -ArenaBound
	}
	return v
}

// UpdatePlayer stores a clamped position. Yaw wraps client-side and is
// stored as given. Reports whether the player exists.
func (w *World) UpdatePlayer(id string, x, y, z, rotY float64) bool {
	p, ok := w.Players[id]
	if !ok {
		return false
	}
	p.X, p.Y, p.Z = clamp(x), clamp(y), clamp(z)
	p.RotationY = rotY
	return true
}

// ApplyDamage subtracts amount from the player's health. If that would
// reach zero the player respawns at full health in the same call, so a
// caller never observes health <= 0. Returns the new health and whether
// a respawn happened.
func (w *World) ApplyDamage(id string, amount int) (int, bool) {
	p, ok := w.Players[id]
	if !ok {
		return 0, false
	}
	p.Health -= amount
	if p.Health > 0 {
		return p.Health, false
	}
	p.Health = MaxHealth
	p.X, p.Z = w.spawnPoint()
	p.Y = SpawnY
	return p.Health, true
}

// PlaceBuild appends a build with the next id. Ids strictly increase for
// the process lifetime and are never reused, even after cascade removal.
func (w *World) PlaceBuild(ownerID, buildType string, x, y, z, rotY float64) Build {
	b := Build{
		ID:      w.nextBuildID,
		OwnerID: ownerID,
		Type:    buildType,
		X:       clamp(x),
		Y:       clamp(y),
		Z:       clamp(z),
		RotY:    rotY,
	}
	w.nextBuildID++
	w.Builds = append(w.Builds, b)
	return b
}

// Snapshot returns a full copy of players and builds, safe to serialize
// after the world has moved on.
func (w *World) Snapshot() (map[string]Player, []Build) {
	players := make(map[string]Player, len(w.Players))
	for id, p := range w.Players {
		players[id] = *p
	}
	builds := make([]Build, len(w.Builds))
	copy(builds, w.Builds)
	return players, builds
}
