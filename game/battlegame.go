package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
)

// Battle owns a battle map and everything living on it. It is driven one tick at a time from a single goroutine.
type Battle struct {
	Map *tilemap.TileMap

	factions    []*Faction
	terrain     []MapEntity
	projectiles []*Projectile
	doodads     []*Doodad
	hazards     []*BattleHazard
	ticks       int
}

// NewBattle creates a battle map and builds its ground level from a layout, see BuildBattlefield.
func NewBattle(size voxel.Int3, layout []string) (*Battle, error) {
	m, err := NewBattleMap(size)
	if err != nil {
		return nil, err
	}
	terrain, err := BuildBattlefield(m, layout)
	if err != nil {
		return nil, errors.Wrap(err, "building battlefield")
	}
	b := &Battle{Map: m, terrain: terrain}
	for _, e := range terrain {
		if hazard, ok := e.(*BattleHazard); ok {
			b.hazards = append(b.hazards, hazard)
		}
	}
	return b, nil
}

func (b *Battle) Factions() []*Faction {
	return b.factions
}

func (b *Battle) Ticks() int {
	return b.ticks
}

func (b *Battle) Projectiles() []*Projectile {
	return b.projectiles
}

// Fire launches a projectile from the unit's upper tile towards a world position.
func (b *Battle) Fire(shooter *BattleUnit, target mgl32.Vec3, speed float32) (*Projectile, error) {
	origin := eyePosition(shooter)
	direction := target.Sub(origin)
	if direction.Len() == 0 {
		return nil, errors.New("target is the shooter's own position")
	}
	projectile := NewProjectile(shooter, shooter.ControlledBy(), origin, direction.Normalize().Mul(speed))
	if err := Spawn(b.Map, projectile); err != nil {
		return nil, err
	}
	b.projectiles = append(b.projectiles, projectile)
	return projectile, nil
}

// CanSee reports whether nothing blocks the sight line between the eyes of two units.
func (b *Battle) CanSee(observer, target *BattleUnit) bool {
	collision := b.Map.FindCollision(eyePosition(observer), eyePosition(target), tilemap.CollisionOptions{
		IgnoredObject: observer,
		UseLOS:        true,
	})
	return !collision.Hit || collision.Object.Owner == target
}

// ThrowVelocity searches a throw from the unit to the target tile, trying flatter arcs first.
func (b *Battle) ThrowVelocity(thrower *BattleUnit, target voxel.Int3) (velocityXY, velocityZ float32, ok bool) {
	start := eyePosition(thrower)
	targetVector := target.ToTileCenterVec3().Sub(start)
	vectorXY := mgl32.Vec2{targetVector.X(), targetVector.Y()}
	for vz := float32(0); vz <= 120; vz += 5 {
		for vxy := float32(20); vxy <= 200; vxy += 5 {
			if b.Map.CheckThrowTrajectory(thrower, start, target, vectorXY, vxy, vz) {
				return vxy, vz, true
			}
		}
	}
	return 0, 0, false
}

// SpawnDoodad shows a short lived effect, e.g. at a projectile impact.
func (b *Battle) SpawnDoodad(position voxel.Int3, lifetimeTicks int) error {
	doodad := NewDoodad(position, lifetimeTicks)
	if err := Spawn(b.Map, doodad); err != nil {
		return err
	}
	b.doodads = append(b.doodads, doodad)
	return nil
}

// Tick advances the battle: projectiles fly, units take one step, effects age.
func (b *Battle) Tick() error {
	b.ticks++
	alive := b.projectiles[:0]
	for _, projectile := range b.projectiles {
		if err := projectile.Advance(b.Map); err != nil {
			return err
		}
		if !projectile.IsDead() {
			alive = append(alive, projectile)
			continue
		}
		if impact := projectile.Impact(); impact != nil {
			if err := b.SpawnDoodad(impact.Tile, tilemap.TickScale/2); err != nil {
				util.LogMapWarning(fmt.Sprintf("[Game] no impact effect: %v", err))
			}
		}
	}
	b.projectiles = alive

	for _, faction := range b.factions {
		for _, unit := range faction.units {
			if err := unit.Step(b.Map); err != nil {
				return errors.Wrapf(err, "moving %s", unit)
			}
		}
	}

	b.doodads = ageOut(b.Map, b.doodads, func(d *Doodad) *int { return &d.TicksLeft })
	b.hazards = ageOut(b.Map, b.hazards, func(h *BattleHazard) *int { return &h.TicksLeft })

	b.Map.UpdateAllBattlescapeInfo()
	return nil
}

func ageOut[T MapEntity](m *tilemap.TileMap, entities []T, ticksLeft func(T) *int) []T {
	remaining := entities[:0]
	for _, e := range entities {
		left := ticksLeft(e)
		*left--
		if *left <= 0 {
			Despawn(m, e)
			continue
		}
		remaining = append(remaining, e)
	}
	return remaining
}

// Shutdown freezes the map and detaches every entity.
func (b *Battle) Shutdown() {
	b.Map.CeaseUpdates = true
	for _, projectile := range b.projectiles {
		Despawn(b.Map, projectile)
	}
	for _, doodad := range b.doodads {
		Despawn(b.Map, doodad)
	}
	for _, faction := range b.factions {
		for _, unit := range faction.units {
			Despawn(b.Map, unit)
		}
	}
	for _, e := range b.terrain {
		Despawn(b.Map, e)
	}
	b.projectiles, b.doodads, b.hazards, b.terrain = nil, nil, nil, nil
}

// eyePosition is the centre of the highest tile a unit occupies.
func eyePosition(unit *BattleUnit) mgl32.Vec3 {
	top := unit.position
	for _, tile := range unit.Footprint() {
		if tile.Z > top.Z {
			top = tile
		}
	}
	return top.ToTileCenterVec3()
}
