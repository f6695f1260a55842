package factory

import (
	"github.com/automoto/impact/archetypes"
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type ProjectileSpec struct {
	Owner    *donburi.Entry
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Lifetime float64
	Damage   int
	Force    float64
	Radius   float64
}

func CreateProjectile(ecs *ecs.ECS, spec ProjectileSpec) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs, tags.Projectile)
	components.Transform.SetValue(projectile, components.TransformData{Position: spec.Position})
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Owner:    spec.Owner,
		Previous: spec.Position,
		Velocity: spec.Velocity,
		Lifetime: spec.Lifetime,
		Damage:   spec.Damage,
		Force:    spec.Force,
		Radius:   spec.Radius,
	})
	return projectile
}
