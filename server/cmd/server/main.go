package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/impact/assets"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/server/core"
	"github.com/automoto/impact/shared/leveldata"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:6060", "Debug HTTP listen address (/metrics, /state)")
	tickRate := flag.Int("tickrate", 60, "Engine frames per second")
	arenaName := flag.String("arena", "arena", "Embedded arena name")
	arenaFile := flag.String("arena-file", "", "TMX file to load instead of an embedded arena")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = run until interrupted)")
	flag.Parse()

	arena, err := loadArena(*arenaName, *arenaFile)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	tuning := config.Default()
	var watcher *config.Watcher
	if *tuningPath != "" {
		if tuning, err = config.Load(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if watcher, err = config.NewWatcher(*tuningPath); err != nil {
			log.Printf("Tuning hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	server, err := core.NewServer(core.Options{
		Arena:    arena,
		Tuning:   tuning,
		Watcher:  watcher,
		TickRate: *tickRate,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           core.NewRouter(server),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Debug server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if *duration > 0 {
			select {
			case <-sigChan:
			case <-time.After(*duration):
			}
		} else {
			<-sigChan
		}
		log.Println("Shutting down server...")
		server.Stop()
	}()

	log.Printf("Starting impact brawl on %q (%d combatants, tick rate %d/s, debug %s)",
		arena.Name, len(arena.Combatants), *tickRate, *addr)
	server.Start()
	_ = httpServer.Close()
}

func loadArena(name, file string) (*leveldata.Arena, error) {
	if file == "" {
		return assets.LoadArena(name)
	}
	return leveldata.LoadArena(os.DirFS(filepath.Dir(file)), filepath.Base(file))
}
