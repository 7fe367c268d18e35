package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Zachkp/folio/internal/typewriter"
)

const (
	snapshotBuffer = 16
	writeWait      = 10 * time.Second
)

// Message is the websocket envelope for typewriter updates.
type Message struct {
	Type string               `json:"type"`
	Data *typewriter.Snapshot `json:"data,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// offer hands s to a slow reader, dropping the oldest pending snapshot
// when the buffer is full. Only the latest text matters to the page.
func offer(ch chan typewriter.Snapshot, s typewriter.Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// startHeroEngine starts an engine whose snapshots land on the returned
// channel. Callers must Stop the engine.
func (s *server) startHeroEngine() (*typewriter.Engine, chan typewriter.Snapshot) {
	updates := make(chan typewriter.Snapshot, snapshotBuffer)
	engine := s.newEngine(func(snap typewriter.Snapshot) { offer(updates, snap) })
	engine.Start()
	return engine, updates
}

// typewriterStream serves the hero text as Server-Sent Events until the
// client goes away or a non-looping engine finishes.
func (s *server) typewriterStream(c *gin.Context) {
	engine, updates := s.startHeroEngine()
	defer engine.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	send := func(event string, snap typewriter.Snapshot) {
		c.SSEvent(event, snap)
		c.Writer.Flush()
	}

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-updates:
			send("snapshot", snap)
		case <-engine.Done():
			for {
				select {
				case snap := <-updates:
					send("snapshot", snap)
				default:
					send("done", engine.Snapshot())
					return
				}
			}
		}
	}
}

// typewriterSocket is the websocket flavour of typewriterStream.
func (s *server) typewriterSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	engine, updates := s.startHeroEngine()
	defer engine.Stop()

	// The read loop only exists to notice the client closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("Typewriter socket read error: %v", err)
				}
				return
			}
		}
	}()

	write := func(msg Message) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("Typewriter socket write error: %v", err)
			return false
		}
		return true
	}

	for {
		select {
		case <-closed:
			return
		case snap := <-updates:
			if !write(Message{Type: "snapshot", Data: &snap}) {
				return
			}
		case <-engine.Done():
			for {
				select {
				case snap := <-updates:
					if !write(Message{Type: "snapshot", Data: &snap}) {
						return
					}
				default:
					final := engine.Snapshot()
					write(Message{Type: "done", Data: &final})
					conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
						time.Now().Add(writeWait))
					return
				}
			}
		}
	}
}

func (s *server) setupHeroRoutes(r *gin.Engine) {
	r.GET("/hero/typewriter", s.typewriterStream)
	r.GET("/ws/typewriter", s.typewriterSocket)
}
