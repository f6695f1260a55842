package core

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/leveldata"
	"github.com/automoto/impact/systems"
	"github.com/automoto/impact/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a headless brawl.
type Options struct {
	Arena    *leveldata.Arena
	Tuning   config.Tuning
	Watcher  *config.Watcher // optional tuning hot reload
	TickRate int
}

// Server runs an arena with every combatant under a bot brain and publishes
// a snapshot after each frame for the debug router.
type Server struct {
	ecs     *ecs.ECS
	arena   *leveldata.Arena
	watcher *config.Watcher
	loop    *GameLoop
	rounds  int

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewServer creates a headless server for one arena.
func NewServer(opts Options) (*Server, error) {
	if opts.Arena == nil {
		return nil, fmt.Errorf("server: no arena")
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	e := ecs.NewECS(donburi.NewWorld())
	systems.Install(e)
	factory.CreateDirector(e, opts.Tuning)

	s := &Server{
		ecs:     e,
		arena:   opts.Arena,
		watcher: opts.Watcher,
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	s.subscribe()
	s.spawn(true)
	s.publish(0)
	return s, nil
}

// Start runs the game loop until Stop is called.
func (s *Server) Start() {
	s.loop.Run()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

// Step advances the brawl by one frame.
func (s *Server) Step(dt float64) {
	s.applyTuningUpdates()

	start := time.Now()
	systems.Frame(s.ecs, dt)
	tickDuration.Observe(time.Since(start).Seconds())

	if winner, over := s.roundOver(); over {
		s.rounds++
		log.Printf("Round %d over, team %d wins", s.rounds, winner)
		s.resetRound()
	}
	s.publish(s.rounds)
}

// State returns the latest snapshot. Safe to call from any goroutine.
func (s *Server) State() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Server) applyTuningUpdates() {
	if s.watcher == nil {
		return
	}
	select {
	case t := <-s.watcher.Updates:
		systems.ApplyTuning(s.ecs.World, t)
		log.Println("Tuning reloaded")
	case err := <-s.watcher.Errors:
		log.Printf("Tuning reload failed, keeping previous values: %v", err)
	default:
	}
}

func (s *Server) subscribe() {
	w := s.ecs.World
	systems.OnHit(w, func(_ donburi.World, evt components.HitEvent) {
		if evt.Swing() {
			missesTotal.Inc()
			return
		}
		hitsTotal.WithLabelValues(evt.AttackType.String()).Inc()
	})
	systems.OnDeath(w, func(_ donburi.World, evt components.HitEvent) {
		deathsTotal.Inc()
		if evt.Defender.Valid() {
			cb := components.Combatant.Get(evt.Defender)
			log.Printf("%s %d (team %d) died to a %s hit", cb.Kind, cb.ID, cb.Team, evt.AttackType)
		}
	})
	systems.OnComboChanged(w, func(_ donburi.World, c systems.ComboChange) {
		comboMultiplier.Set(float64(c.Multiplier))
	})
}

// spawn creates the arena's combatants. The first call also builds the
// spatial index, camera and hazards.
func (s *Server) spawn(first bool) {
	var spawned []*donburi.Entry
	if first {
		spawned = factory.CreateArena(s.ecs, s.arena)
	} else {
		spawned = factory.CreateCombatants(s.ecs, s.arena)
	}
	// Players get a brain too; nobody is at the keyboard.
	for _, c := range spawned {
		if !c.HasComponent(components.Bot) {
			donburi.Add(c, components.Bot, &components.BotData{Difficulty: config.BotDifficultyNormal})
		}
	}
}

// roundOver reports whether at most one team has living combatants.
func (s *Server) roundOver() (int, bool) {
	teams := map[int]bool{}
	winner := -1
	for e := range components.Combatant.Iter(s.ecs.World) {
		if systems.Alive(e) {
			team := components.Combatant.Get(e).Team
			teams[team] = true
			winner = team
		}
	}
	return winner, len(teams) <= 1
}

// resetRound clears bodies and projectiles and respawns the arena, keeping
// the tuning.
func (s *Server) resetRound() {
	w := s.ecs.World
	var stale []*donburi.Entry
	for e := range components.Combatant.Iter(w) {
		stale = append(stale, e)
	}
	for e := range components.Projectile.Iter(w) {
		stale = append(stale, e)
	}
	for _, e := range stale {
		factory.Destroy(s.ecs, e)
	}
	systems.ResetDirector(w)
	s.spawn(false)
}

func (s *Server) publish(rounds int) {
	snap := capture(s.ecs.World, rounds)

	timeScale.Set(snap.TimeScale)
	airborne.Set(float64(snap.Airborne))

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}
