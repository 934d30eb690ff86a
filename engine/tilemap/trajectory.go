package tilemap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
)

// ThrowGravity is the downward acceleration of thrown objects, in the same units as throw velocities per second.
const ThrowGravity = 98.0

// maxThrowSamples bounds the arc simulation to 30 seconds of flight.
const maxThrowSamples = TickScale * 30

// CheckThrowTrajectory simulates a throw from start and reports whether it comes to rest in the tile end.
// The arc stops at the first object it hits, or on the bottom of the map. Tiles it merely flies through do not count.
// targetVectorXY is the horizontal throw direction; velocities are divided by the map's VelocityScale.
// A throw that lands directly on the floor of end counts as reaching it.
func (m *TileMap) CheckThrowTrajectory(thrower Entity, start mgl32.Vec3, end voxel.Int3, targetVectorXY mgl32.Vec2, velocityXY, velocityZ float32) bool {
	if !m.TileIsValidAt(end) {
		return false
	}
	direction := mgl32.Vec2{}
	if targetVectorXY.Len() > 0 {
		direction = targetVectorXY.Normalize()
	}
	velocity := mgl32.Vec3{
		direction.X() * velocityXY / m.VelocityScale.X(),
		direction.Y() * velocityXY / m.VelocityScale.Y(),
		velocityZ / m.VelocityScale.Z(),
	}
	gravity := float32(ThrowGravity) / m.VelocityScale.Z()
	dt := float32(1) / float32(TickScale)
	floorBelow := end.Add(voxel.Int3{Z: -1})
	opts := CollisionOptions{IgnoredObject: thrower}
	position := start
	for sample := 0; sample < maxThrowSamples; sample++ {
		// constant acceleration over one step, integrated exactly
		step := velocity.Sub(mgl32.Vec3{0, 0, gravity * dt / 2}).Mul(dt)
		next := position.Add(step)
		velocity[2] -= gravity * dt
		collision := m.FindCollision(position, next, opts)
		if collision.Hit {
			util.LogCollisionDebug(fmt.Sprintf("[Throw] came to rest on %s at %s", collision.Object.Type, collision.Tile))
			return collision.Tile == end || collision.Tile == floorBelow
		}
		if next.Z() < 0 {
			landing := position.Add(step.Mul(position.Z() / (position.Z() - next.Z())))
			landing[2] = 0
			return voxel.PositionToGridInt3(landing) == end
		}
		if next.X() < 0 || next.Y() < 0 || next.X() >= float32(m.Size.X) || next.Y() >= float32(m.Size.Y) {
			return false
		}
		position = next
	}
	return false
}
