package arena

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"fortarena/game"
	"fortarena/protocol"
)

// Arena owns the authoritative world for this process. One goroutine
// (Run) consumes every command and every broadcast tick, so handlers never
// overlap and world mutation needs no locking.
type Arena struct {
	Inbox   chan any
	world   *game.World
	clients map[string]Conn
	quit    chan struct{}
}

func New() *Arena {
	return NewWithRand(nil)
}

// NewWithRand lets tests pin spawn randomness.
func NewWithRand(rng *rand.Rand) *Arena {
	return &Arena{
		Inbox:   make(chan any, 256),
		world:   game.NewWorld(rng),
		clients: make(map[string]Conn),
		quit:    make(chan struct{}),
	}
}

func (a *Arena) Stop() {
	close(a.quit)
}

func (a *Arena) Run() {
	ticker := time.NewTicker(time.Second / protocol.BroadcastHz)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return
		case cmd := <-a.Inbox:
			a.handleCommand(cmd)
		case <-ticker.C:
			a.broadcastWorld()
		}
	}
}

func (a *Arena) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		a.handleJoin(c)
	case Leave:
		a.handleLeave(c.SessionID)
	case Move:
		// a session that raced its own disconnect is dropped silently
		a.world.UpdatePlayer(c.SessionID, c.X, c.Y, c.Z, c.RotationY)
	case Shoot:
		a.handleShoot(c)
	case PlaceBuild:
		a.handlePlaceBuild(c)
	}
}

func (a *Arena) handleJoin(c Join) {
	id := uuid.NewString()
	p := a.world.CreatePlayer(id)
	a.clients[id] = c.Conn

	players, builds := a.world.Snapshot()
	a.sendTo(id, protocol.MsgInitState, protocol.InitState{
		SelfID:  id,
		Players: playerSnapshots(players),
		Builds:  buildSnapshots(builds),
	})
	a.broadcastExcept(id, protocol.MsgPlayerJoined, protocol.PlayerJoined{
		ID: id, X: p.X, Y: p.Y, Z: p.Z, RotationY: p.RotationY, Health: p.Health,
	})

	c.Reply <- JoinResult{SessionID: id}
	log.Printf("session %s joined (%d online)", id, len(a.clients))
}

func (a *Arena) handleLeave(id string) {
	conn, ok := a.clients[id]
	if !ok {
		return
	}
	delete(a.clients, id)
	_ = conn.Close()

	a.world.RemovePlayer(id)
	a.broadcast(protocol.MsgPlayerLeft, protocol.PlayerLeft{ID: id})
	log.Printf("session %s left (%d online)", id, len(a.clients))
}

func (a *Arena) handleShoot(c Shoot) {
	if _, ok := a.world.Players[c.SessionID]; !ok {
		return
	}
	victimID, hit := game.ResolveHit(c.SessionID, c.Origin, c.Direction, a.world.Players)
	if !hit {
		return
	}
	health, respawned := a.world.ApplyDamage(victimID, game.ShotDamage)
	a.broadcast(protocol.MsgPlayerHit, protocol.PlayerHit{VictimID: victimID, NewHealth: health})
	if respawned {
		if v, ok := a.world.Players[victimID]; ok {
			a.sendTo(victimID, protocol.MsgRespawn, protocol.Respawn{X: v.X, Y: v.Y, Z: v.Z})
		}
	}
}

func (a *Arena) handlePlaceBuild(c PlaceBuild) {
	if _, ok := a.world.Players[c.SessionID]; !ok {
		return
	}
	b := a.world.PlaceBuild(c.SessionID, c.Type, c.X, c.Y, c.Z, c.RotY)
	a.broadcast(protocol.MsgBuildPlaced, protocol.BuildPlaced{Build: buildSnapshot(b)})
}

func (a *Arena) broadcastWorld() {
	players, builds := a.world.Snapshot()
	a.broadcast(protocol.MsgWorldState, protocol.WorldState{
		Players: playerSnapshots(players),
		Builds:  buildSnapshots(builds),
	})
}

func (a *Arena) sendTo(id string, msgType string, payload any) {
	conn, ok := a.clients[id]
	if !ok {
		return
	}
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		return
	}
	if err := conn.Send(b); err != nil {
		a.handleLeave(id)
	}
}

func (a *Arena) broadcast(msgType string, payload any) {
	a.broadcastExcept("", msgType, payload)
}

func (a *Arena) broadcastExcept(skip string, msgType string, payload any) {
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		return
	}
	var failed []string
	for id, conn := range a.clients {
		if id == skip {
			continue
		}
		if err := conn.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	// eviction goes through the normal leave path so builds cascade and
	// the remaining sessions hear about it
	for _, id := range failed {
		a.handleLeave(id)
	}
}

func playerSnapshots(players map[string]game.Player) map[string]protocol.PlayerSnapshot {
	out := make(map[string]protocol.PlayerSnapshot, len(players))
	for id, p := range players {
		out[id] = protocol.PlayerSnapshot{
			ID: id, X: p.X, Y: p.Y, Z: p.Z, RotationY: p.RotationY, Health: p.Health,
		}
	}
	return out
}

func buildSnapshots(builds []game.Build) []protocol.BuildSnapshot {
	out := make([]protocol.BuildSnapshot, 0, len(builds))
	for _, b := range builds {
		out = append(out, buildSnapshot(b))
	}
	return out
}

func buildSnapshot(b game.Build) protocol.BuildSnapshot {
	return protocol.BuildSnapshot{
		ID: b.ID, OwnerID: b.OwnerID, Type: b.Type,
		X: b.X, Y: b.Y, Z: b.Z, RotY: b.RotY,
	}
}
