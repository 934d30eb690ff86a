package game

import (
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/voxel"
)

func NewCityMap(size voxel.Int3) (*tilemap.TileMap, error) {
	return tilemap.NewTileMapFromConfig(tilemap.CityConfig(size))
}

func NewBattleMap(size voxel.Int3) (*tilemap.TileMap, error) {
	return tilemap.NewTileMapFromConfig(tilemap.BattleConfig(size))
}
