package tilemap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/voxel"
)

var (
	VelocityScaleCity   = mgl32.Vec3{32, 32, 16}
	VelocityScaleBattle = mgl32.Vec3{24, 24, 20}

	VoxelMapSizeCity   = voxel.Int3{X: 32, Y: 32, Z: 16}
	VoxelMapSizeBattle = voxel.Int3{X: 24, Y: 24, Z: 20}
)

const TicksPerSecond = 144

const TickScaleDivisor = 4

// TickScale is the number of integration steps per second of projectile and throw simulation.
const TickScale = TicksPerSecond / TickScaleDivisor

type ObjectType int

const (
	ObjectTypeProjectile ObjectType = iota
	ObjectTypeVehicle
	ObjectTypeScenery
	ObjectTypeDoodad
	ObjectTypeBattleMapPart
	ObjectTypeBattleItem
	ObjectTypeBattleUnit
	ObjectTypeBattleHazard
	objectTypeCount
)

func AllObjectTypes() []ObjectType {
	types := make([]ObjectType, 0, objectTypeCount)
	for t := ObjectType(0); t < objectTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t ObjectType) IsValid() bool {
	return t >= 0 && t < objectTypeCount
}

// BlocksLOS reports whether objects of this kind take part in line of sight queries.
func (t ObjectType) BlocksLOS() bool {
	switch t {
	case ObjectTypeScenery, ObjectTypeVehicle, ObjectTypeBattleMapPart, ObjectTypeBattleHazard:
		return true
	}
	return false
}

// IsUnit reports whether the pathfinding unit exclusion flags apply to this kind.
func (t ObjectType) IsUnit() bool {
	return t == ObjectTypeVehicle || t == ObjectTypeBattleUnit
}

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeProjectile:
		return "Projectile"
	case ObjectTypeVehicle:
		return "Vehicle"
	case ObjectTypeScenery:
		return "Scenery"
	case ObjectTypeDoodad:
		return "Doodad"
	case ObjectTypeBattleMapPart:
		return "BattleMapPart"
	case ObjectTypeBattleItem:
		return "BattleItem"
	case ObjectTypeBattleUnit:
		return "BattleUnit"
	case ObjectTypeBattleHazard:
		return "BattleHazard"
	}
	return fmt.Sprintf("ObjectType(%d)", int(t))
}

type TileViewMode int

const (
	TileViewModeIsometric TileViewMode = iota
	TileViewModeStrategy
)

type MapDirection int

const (
	North MapDirection = iota
	East
	South
	West
	Up
	Down
)

// AllDirections lists the adjacency model in the order the pathfinder expands it.
var AllDirections = [...]MapDirection{North, East, South, West, Up, Down}

func (d MapDirection) Offset() voxel.Int3 {
	switch d {
	case North:
		return voxel.Int3{Y: -1}
	case East:
		return voxel.Int3{X: 1}
	case South:
		return voxel.Int3{Y: 1}
	case West:
		return voxel.Int3{X: -1}
	case Up:
		return voxel.Int3{Z: 1}
	case Down:
		return voxel.Int3{Z: -1}
	}
	return voxel.Int3{}
}

func (d MapDirection) Opposite() MapDirection {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case Up:
		return Down
	}
	return Up
}

func (d MapDirection) String() string {
	return [...]string{"North", "East", "South", "West", "Up", "Down"}[d]
}
