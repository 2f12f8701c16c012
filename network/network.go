package network

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"fortarena/arena"
	"fortarena/game"
	"fortarena/protocol"
)

const (
	readLimit  = 1 << 20 // 1MB
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	writeWait  = 10 * time.Second
	sendBuffer = 64

	// per-connection inbound command budget; a flooding client gets its
	// extra messages dropped before they reach the arena loop
	inboundRate  = 120
	inboundBurst = 240
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client adapts a websocket to arena.Conn: Send enqueues onto a buffered
// channel drained by the write pump, so the arena loop never blocks on a
// slow socket.
type client struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (c *client) Send(b []byte) error {
	select {
	case c.send <- b:
		return nil
	case <-c.done:
		return fmt.Errorf("connection closed")
	default:
		return fmt.Errorf("send buffer full")
	}
}

func (c *client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
	return nil
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case b := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// Handler upgrades the connection, joins it to the arena, and pumps
// inbound commands until the socket dies.
func Handler(a *arena.Arena) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		c := &client{
			conn: conn,
			send: make(chan []byte, sendBuffer),
			done: make(chan struct{}),
		}
		go c.writePump()

		conn.SetReadLimit(readLimit)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		reply := make(chan arena.JoinResult, 1)
		a.Inbox <- arena.Join{Conn: c, Reply: reply}
		res := <-reply

		limiter := rate.NewLimiter(inboundRate, inboundBurst)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			if !limiter.Allow() {
				continue
			}
			dispatch(a, res.SessionID, msg)
		}

		a.Inbox <- arena.Leave{SessionID: res.SessionID}
		_ = c.Close()
	}
}

// dispatch validates a raw frame into a typed command and posts it to the
// arena. Malformed or unknown frames are dropped; the connection stays up.
func dispatch(a *arena.Arena, sessionID string, raw []byte) {
	env, err := protocol.DecodeEnvelope(raw)
	if err != nil {
		return
	}
	switch env.T {
	case protocol.MsgMove:
		m, err := protocol.DecodePayload[protocol.Move](env)
		if err != nil {
			return
		}
		a.Inbox <- arena.Move{
			SessionID: sessionID,
			X:         m.X, Y: m.Y, Z: m.Z,
			RotationY: m.RotationY,
		}
	case protocol.MsgShoot:
		m, err := protocol.DecodePayload[protocol.Shoot](env)
		if err != nil {
			return
		}
		a.Inbox <- arena.Shoot{
			SessionID: sessionID,
			Origin:    game.Vec3{X: m.Origin.X, Y: m.Origin.Y, Z: m.Origin.Z},
			Direction: game.Vec3{X: m.Direction.X, Y: m.Direction.Y, Z: m.Direction.Z},
		}
	case protocol.MsgPlaceBuild:
		m, err := protocol.DecodePayload[protocol.PlaceBuild](env)
		if err != nil {
			return
		}
		if !protocol.ValidBuildType(m.Type) {
			return
		}
		a.Inbox <- arena.PlaceBuild{
			SessionID: sessionID,
			Type:      m.Type,
			X:         m.X, Y: m.Y, Z: m.Z,
			RotY:      m.RotY,
		}
	}
}
