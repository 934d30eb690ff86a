package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/zyedidia/generic/mapset"
)

// projectileTargets lists what a flying projectile can hit.
var projectileTargets = func() mapset.Set[tilemap.ObjectType] {
	targets := mapset.New[tilemap.ObjectType]()
	for _, objectType := range tilemap.AllObjectTypes() {
		if objectType != tilemap.ObjectTypeProjectile && objectType != tilemap.ObjectTypeDoodad {
			targets.Put(objectType)
		}
	}
	return targets
}()

type Projectile struct {
	placement
	position mgl32.Vec3
	// velocity in map velocity units per second
	velocity mgl32.Vec3
	shooter  tilemap.Entity
	firedBy  tilemap.Organisation
	impact   *tilemap.Collision
	dead     bool
}

func NewProjectile(shooter tilemap.Entity, firedBy tilemap.Organisation, position, velocity mgl32.Vec3) *Projectile {
	return &Projectile{
		placement: placement{position: voxel.PositionToGridInt3(position)},
		position:  position,
		velocity:  velocity,
		shooter:   shooter,
		firedBy:   firedBy,
	}
}

func (p *Projectile) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeProjectile
}

func (p *Projectile) ControlledBy() tilemap.Organisation {
	return p.firedBy
}

func (p *Projectile) WorldPosition() mgl32.Vec3 {
	return p.position
}

func (p *Projectile) IsDead() bool {
	return p.dead
}

// Impact returns the collision that stopped the projectile, nil while it flies or when it left the map.
func (p *Projectile) Impact() *tilemap.Collision {
	return p.impact
}

// Advance moves the projectile by one tick and removes it from the map when it hits something or leaves the map.
func (p *Projectile) Advance(m *tilemap.TileMap) error {
	if p.dead {
		return nil
	}
	delta := mgl32.Vec3{
		p.velocity.X() / m.VelocityScale.X(),
		p.velocity.Y() / m.VelocityScale.Y(),
		p.velocity.Z() / m.VelocityScale.Z(),
	}.Mul(1 / float32(tilemap.TickScale))
	next := p.position.Add(delta)

	collision := m.FindCollision(p.position, next, tilemap.CollisionOptions{
		ValidTypes:    projectileTargets,
		IgnoredObject: p.shooter,
	})
	if collision.Hit {
		util.LogCollisionDebug(fmt.Sprintf("[Game] projectile hit %s at %v", collision.Object.Type, collision.Position))
		p.impact = &collision
		p.position = collision.Position
		p.kill(m)
		return nil
	}
	p.position = next
	if !m.TileIsValidAt(voxel.PositionToGridInt3(next)) {
		p.kill(m)
		return nil
	}
	return relocate(m, p, &p.placement, voxel.PositionToGridInt3(next))
}

func (p *Projectile) kill(m *tilemap.TileMap) {
	p.dead = true
	Despawn(m, p)
}
