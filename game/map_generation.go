package game

import (
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
)

// Layout symbols understood by BuildBattlefield. Every symbol except the hole puts ground under the tile.
const (
	LayoutGround = '.'
	LayoutWall   = '#'
	LayoutStairs = 'H'
	LayoutItem   = 'i'
	LayoutSmoke  = '~'
	LayoutHole   = ' '
)

// SmokeLifetimeTicks is how long generated smoke lingers.
const SmokeLifetimeTicks = tilemap.TickScale * 10

// BuildBattlefield fills the ground level of a battle map from rows of layout symbols; row i is y = i.
// The created entities are returned so the caller can tick or remove them.
func BuildBattlefield(m *tilemap.TileMap, rows []string) ([]MapEntity, error) {
	var created []MapEntity
	spawn := func(e MapEntity) error {
		if err := Spawn(m, e); err != nil {
			return err
		}
		created = append(created, e)
		return nil
	}
	for y, row := range rows {
		for x, symbol := range []rune(row) {
			pos := voxel.Int3{X: int32(x), Y: int32(y)}
			if !m.TileIsValidAt(pos) {
				return created, errors.Errorf("layout symbol %q at %s is outside the map", symbol, pos)
			}
			if symbol == LayoutHole {
				continue
			}
			if err := spawn(NewGround(pos, m.VoxelMapSize)); err != nil {
				return created, err
			}
			var err error
			switch symbol {
			case LayoutGround:
			case LayoutWall:
				err = spawn(NewWall(pos))
			case LayoutStairs:
				shape := StairsShape(m.VoxelMapSize)
				err = spawn(NewFeature(pos, shape, shape))
			case LayoutItem:
				err = spawn(NewBattleItem("crate", pos, m.VoxelMapSize))
			case LayoutSmoke:
				err = spawn(NewBattleHazard(HazardSmoke, pos, SmokeLifetimeTicks))
			default:
				err = errors.Errorf("unknown layout symbol %q at %s", symbol, pos)
			}
			if err != nil {
				return created, err
			}
		}
	}
	m.UpdateAllBattlescapeInfo()
	return created, nil
}

// StairsShape fills the lower half of a tile, enough to climb to the next level.
func StairsShape(size voxel.Int3) *voxel.VoxelMap {
	shape := voxel.NewVoxelMap(size)
	shape.FillBox(voxel.Int3{}, voxel.Int3{X: size.X, Y: size.Y, Z: size.Z / 2}, true)
	return shape
}
