package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Combatants">
  <object id="1" x="96" y="32" width="16" height="16">
   <properties>
    <property name="kind" value="npc"/>
    <property name="class" value="heavy"/>
    <property name="team" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="24" y="40" width="16" height="16">
   <properties>
    <property name="kind" value="player"/>
    <property name="facing_deg" type="float" value="90"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Hazards">
  <object id="3" x="0" y="0" width="32" height="16">
   <properties>
    <property name="damage" type="int" value="5"/>
    <property name="force" type="float" value="12"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const emptyArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Combatants"/>
</map>
`

const badKindArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Combatants">
  <object id="1" x="0" y="0" width="16" height="16">
   <properties>
    <property name="kind" value="turret"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"arenas/pit.tmx":   {Data: []byte(testArena)},
		"arenas/empty.tmx": {Data: []byte(emptyArena)},
		"arenas/bad.tmx":   {Data: []byte(badKindArena)},
		"other/pit.tmx":    {Data: []byte(testArena)},
	}
}

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(testFS(), "arenas/pit.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.Name != "pit" || arena.Width != 10 || arena.Depth != 8 {
		t.Fatalf("arena header = %q %vx%v", arena.Name, arena.Width, arena.Depth)
	}
	if len(arena.Combatants) != 2 {
		t.Fatalf("got %d combatants, want 2", len(arena.Combatants))
	}

	player := arena.Combatants[0]
	want := CombatantSpawn{X: 2, Z: 3, Kind: "player", Class: "standard", Team: 0, FacingDeg: 90}
	if player != want {
		t.Errorf("player spawn = %+v, want %+v", player, want)
	}

	heavy := arena.Combatants[1]
	if heavy.Kind != "npc" || heavy.Class != "heavy" || heavy.Team != 1 || heavy.X != 6.5 || heavy.Z != 2.5 {
		t.Errorf("heavy spawn = %+v", heavy)
	}

	if len(arena.Hazards) != 1 {
		t.Fatalf("got %d hazards, want 1", len(arena.Hazards))
	}
	h := arena.Hazards[0]
	if h.W != 2 || h.D != 1 || h.Damage != 5 || h.Force != 12 || h.Interval != defaultHazardInterval {
		t.Errorf("hazard = %+v", h)
	}
	if !h.Contains(1, 0.5) || h.Contains(3, 0.5) {
		t.Errorf("hazard containment wrong for %+v", h)
	}
}

func TestLoadArenaErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", "arenas/nope.tmx", nil},
		{"no combatants", "arenas/empty.tmx", ErrNoCombatants},
		{"unknown kind", "arenas/bad.tmx", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArena(testFS(), tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/b.tmx": {Data: []byte(testArena)},
		"arenas/a.tmx": {Data: []byte(testArena)},
	}
	arenas, names, err := LoadAllArenas(fsys, "arenas")
	if err != nil {
		t.Fatalf("LoadAllArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}
	if arenas["a"] == nil || arenas["b"] == nil {
		t.Fatalf("arenas = %v", arenas)
	}

	if _, _, err := LoadAllArenas(testFS(), "arenas"); err == nil {
		t.Fatal("expected the bad arena to fail the whole load")
	}
	if _, _, err := LoadAllArenas(fsys, "missing"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
