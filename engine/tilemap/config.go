package tilemap

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/voxel"
)

// Config bundles the construction parameters of a map.
type Config struct {
	Size          voxel.Int3
	VoxelMapSize  voxel.Int3
	VelocityScale mgl32.Vec3
	// Layers lists the object types of each layer, bottom first.
	Layers [][]ObjectType
}

func CityConfig(size voxel.Int3) Config {
	return Config{
		Size:          size,
		VoxelMapSize:  VoxelMapSizeCity,
		VelocityScale: VelocityScaleCity,
		Layers: [][]ObjectType{
			{ObjectTypeScenery, ObjectTypeBattleMapPart},
			{ObjectTypeVehicle, ObjectTypeProjectile, ObjectTypeDoodad, ObjectTypeBattleItem, ObjectTypeBattleUnit, ObjectTypeBattleHazard},
		},
	}
}

func BattleConfig(size voxel.Int3) Config {
	return Config{
		Size:          size,
		VoxelMapSize:  VoxelMapSizeBattle,
		VelocityScale: VelocityScaleBattle,
		Layers: [][]ObjectType{
			{ObjectTypeBattleMapPart, ObjectTypeScenery},
			{ObjectTypeBattleItem, ObjectTypeBattleHazard, ObjectTypeDoodad},
			{ObjectTypeBattleUnit, ObjectTypeVehicle, ObjectTypeProjectile},
		},
	}
}

func NewTileMapFromConfig(config Config) (*TileMap, error) {
	return NewTileMap(config.Size, config.VelocityScale, config.VoxelMapSize, config.Layers)
}
