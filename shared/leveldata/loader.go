package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoCombatants is returned when an arena has nothing to fight.
var ErrNoCombatants = errors.New("arena has no combatants")

const (
	combatantsGroup = "Combatants"
	hazardsGroup    = "Hazards"

	defaultHazardInterval = 0.5
)

var (
	validKinds   = map[string]bool{"player": true, "npc": true, "boss": true}
	validClasses = map[string]bool{"standard": true, "heavy": true}
)

// LoadArena parses a TMX file and returns its combatant spawns and hazards. It
// takes an fs.FS so callers can pass embed.FS (client) or os.DirFS (server).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if arenaMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile width %d", tmxPath, arenaMap.TileWidth)
	}

	unit := float64(arenaMap.TileWidth)
	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(arenaMap.Width*arenaMap.TileWidth) / unit,
		Depth: float64(arenaMap.Height*arenaMap.TileHeight) / unit,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case combatantsGroup:
			for _, o := range og.Objects {
				spawn := CombatantSpawn{
					X:         (o.X + o.Width/2) / unit,
					Z:         (o.Y + o.Height/2) / unit,
					Kind:      strings.ToLower(o.Properties.GetString("kind")),
					Class:     strings.ToLower(o.Properties.GetString("class")),
					Team:      o.Properties.GetInt("team"),
					FacingDeg: o.Properties.GetFloat("facing_deg"),
				}
				if spawn.Class == "" {
					spawn.Class = "standard"
				}
				if !validKinds[spawn.Kind] {
					return nil, fmt.Errorf("load TMX %s: object %d: unknown kind %q", tmxPath, o.ID, spawn.Kind)
				}
				if !validClasses[spawn.Class] {
					return nil, fmt.Errorf("load TMX %s: object %d: unknown class %q", tmxPath, o.ID, spawn.Class)
				}
				arena.Combatants = append(arena.Combatants, spawn)
			}
		case hazardsGroup:
			for _, o := range og.Objects {
				h := Hazard{
					X:         o.X / unit,
					Z:         o.Y / unit,
					W:         o.Width / unit,
					D:         o.Height / unit,
					Damage:    o.Properties.GetInt("damage"),
					Force:     o.Properties.GetFloat("force"),
					Interval:  o.Properties.GetFloat("interval"),
					Direction: o.Properties.GetFloat("direction_deg"),
				}
				if h.Interval <= 0 {
					h.Interval = defaultHazardInterval
				}
				arena.Hazards = append(arena.Hazards, h)
			}
		}
	}

	if len(arena.Combatants) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoCombatants)
	}

	// Players first, then left-to-right, for consistent ID assignment
	sort.SliceStable(arena.Combatants, func(i, j int) bool {
		a, b := arena.Combatants[i], arena.Combatants[j]
		if (a.Kind == "player") != (b.Kind == "player") {
			return a.Kind == "player"
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Z < b.Z
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
