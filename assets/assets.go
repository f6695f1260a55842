package assets

import (
	"embed"
	"path"

	"github.com/automoto/impact/shared/leveldata"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS
)

// LoadArena loads one embedded arena by name, without the .tmx suffix.
func LoadArena(name string) (*leveldata.Arena, error) {
	return leveldata.LoadArena(arenaFS, path.Join("arenas", name+".tmx"))
}
