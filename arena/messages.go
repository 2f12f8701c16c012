package arena

import "fortarena/game"

// Conn is the send half of a connected session. The network layer
// implements it over a websocket; tests use an in-memory fake.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once when a socket connects.
type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

type JoinResult struct {
	SessionID string
}

// Leave: issued on disconnect.
type Leave struct {
	SessionID string
}

type Move struct {
	SessionID string
	X, Y, Z   float64
	RotationY float64
}

type Shoot struct {
	SessionID string
	Origin    game.Vec3
	Direction game.Vec3
}

type PlaceBuild struct {
	SessionID string
	Type      string
	X, Y, Z   float64
	RotY      float64
}
