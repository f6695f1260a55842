package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the client.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene Scene)
}
