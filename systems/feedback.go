package systems

import (
	"github.com/automoto/impact/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimeDilation finalises this frame's time scale. It runs after hit
// resolution so a freeze requested by this frame's hits applies to it.
func UpdateTimeDilation(ecs *ecs.ECS) {
	d := GetOrCreateDirector(ecs.World)
	d.Time.Tick(d.RawDelta)
	d.Now += d.RawDelta
	d.SimTime += d.Time.EffectiveDelta()
}

// UpdateCombo samples the airborne count after ragdolls are finalised.
func UpdateCombo(ecs *ecs.ECS) {
	d := GetOrCreateDirector(ecs.World)

	airborne := 0
	for e := range components.Ragdoll.Iter(ecs.World) {
		if components.Ragdoll.Get(e).Active && Alive(e) {
			airborne++
		}
	}

	res := d.Combo.Tick(airborne, d.Time.EffectiveDelta())
	d.Combo.AnimateBump(d.RawDelta)
	if res.Changed {
		ComboChanged.Publish(ecs.World, ComboChange{
			Multiplier: res.Multiplier,
			TotalScore: res.TotalScore,
			Bumped:     res.Bumped,
		})
	}
}

// UpdateScreenShake advances the oscillator on raw time and hands the
// offset to the camera.
func UpdateScreenShake(ecs *ecs.ECS) {
	d := GetOrCreateDirector(ecs.World)
	offset := d.Shake.Tick(d.RawDelta)
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(cameraEntry).Shake = offset
	}
}
