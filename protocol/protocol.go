package protocol

import (
	"encoding/json"
)

// Message type tags. Inbound (client -> server):
const (
	MsgMove       = "move"
	MsgShoot      = "shoot"
	MsgPlaceBuild = "placeBuild"
)

// Outbound (server -> client):
const (
	MsgInitState    = "initState"
	MsgPlayerJoined = "playerJoined"
	MsgPlayerLeft   = "playerLeft"
	MsgWorldState   = "worldState"
	MsgPlayerHit    = "playerHit"
	MsgRespawn      = "respawn"
	MsgBuildPlaced  = "buildPlaced"
)

// BroadcastHz is the rate of unconditional worldState pushes.
const BroadcastHz = 20

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
