package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop steps a Server on a wall-clock ticker.
type GameLoop struct {
	server   *Server
	interval time.Duration
	frames   uint64
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		interval: time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop. Each step gets the measured time since the previous
// one; Frame clamps a long stall to the configured max step.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("Game loop started, stepping every %v", g.interval)
	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			log.Printf("Game loop stopped after %d frames", g.frames)
			return
		case now := <-ticker.C:
			g.server.Step(now.Sub(last).Seconds())
			last = now
			g.frames++
		}
	}
}

// Stop may be called more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
