package tilemap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/zyedidia/generic/mapset"
)

type CollisionOptions struct {
	// ValidTypes restricts the query to these object types. The zero set accepts every type.
	ValidTypes    mapset.Set[ObjectType]
	IgnoredObject Entity
	// UseLOS samples the line of sight voxel maps and only considers sight blocking types.
	UseLOS bool
	// CheckFullPath marches the whole segment even after a hit; the first hit stays the result.
	CheckFullPath bool
	// MaxRange bounds the march in tiles. Zero means unlimited.
	MaxRange          float32
	RecordPassedTiles bool
	// IgnoreOwnedProjectiles skips projectiles controlled by this organisation.
	IgnoreOwnedProjectiles Organisation
}

type Collision struct {
	Hit      bool
	Position mgl32.Vec3
	Tile     voxel.Int3
	Object   *TileObject
	// TilesPassed lists the tiles the march entered, in order. Only filled when requested.
	TilesPassed []voxel.Int3
	// OutOfRange is set when the march ended at MaxRange without a hit.
	OutOfRange bool
}

func (o CollisionOptions) accepts(object *TileObject) bool {
	if o.ValidTypes.Size() > 0 && !o.ValidTypes.Has(object.Type) {
		return false
	}
	if o.IgnoredObject != nil && object.Owner == o.IgnoredObject {
		return false
	}
	if o.UseLOS && !object.Type.BlocksLOS() {
		return false
	}
	if o.IgnoreOwnedProjectiles != NoOrganisation && object.Type == ObjectTypeProjectile && object.ControlledBy() == o.IgnoreOwnedProjectiles {
		return false
	}
	return true
}

// FindCollision marches the segment start→end (tile space) voxel by voxel and returns the first voxel
// occupied by an accepted object. Voxels are visited in order of increasing distance from start.
func (m *TileMap) FindCollision(start, end mgl32.Vec3, opts CollisionOptions) Collision {
	var result Collision
	shortened := false
	if opts.MaxRange > 0 && end.Sub(start).Len() > opts.MaxRange {
		end = start.Add(end.Sub(start).Normalize().Mul(opts.MaxRange))
		shortened = true
	}

	mapBox := util.AABB{Max: m.Size.ToVec3()}
	clippedStart, clippedEnd, ok := mapBox.ClipSegment(start, end)
	if !ok {
		result.OutOfRange = shortened
		return result
	}

	vms := m.VoxelMapSize.ToVec3()
	voxelStart := util.MulComponents(clippedStart, vms)
	voxelEnd := util.MulComponents(clippedEnd, vms)
	voxelDir := voxelEnd.Sub(voxelStart)
	voxelLength := float64(voxelDir.Len())

	record := opts.RecordPassedTiles || opts.CheckFullPath
	var currentTile voxel.Int3
	var candidates []*TileObject
	tileKnown := false

	util.DDATraverse(voxelStart, voxelEnd, func(cell voxel.Int3, tEnter, tExit float64) bool {
		tilePos := voxel.Int3{
			X: util.FloorDiv(cell.X, m.VoxelMapSize.X),
			Y: util.FloorDiv(cell.Y, m.VoxelMapSize.Y),
			Z: util.FloorDiv(cell.Z, m.VoxelMapSize.Z),
		}
		if !m.TileIsValidAt(tilePos) {
			return false
		}
		if !tileKnown || tilePos != currentTile {
			currentTile = tilePos
			tileKnown = true
			if record {
				result.TilesPassed = append(result.TilesPassed, tilePos)
			}
			candidates = candidates[:0]
			if !result.Hit {
				for _, object := range m.tileAt(tilePos).Objects() {
					if opts.accepts(object) {
						candidates = append(candidates, object)
					}
				}
			}
		}
		if result.Hit {
			return false
		}
		local := cell.Sub(tilePos.MulComponents(m.VoxelMapSize))
		for _, object := range candidates {
			if !object.IsSolidAt(tilePos, local, opts.UseLOS) {
				continue
			}
			hitVoxel := voxelStart
			if voxelLength > 0 {
				hitVoxel = voxelStart.Add(voxelDir.Mul(float32(tEnter / voxelLength)))
			}
			result.Hit = true
			result.Position = util.DivComponents(hitVoxel, vms)
			result.Tile = tilePos
			result.Object = object
			util.LogCollisionDebug(fmt.Sprintf("[Collision] %s hit at %v in %s", object.Type, result.Position, tilePos))
			candidates = candidates[:0]
			return !opts.CheckFullPath
		}
		return false
	})

	if !result.Hit && shortened {
		result.OutOfRange = true
	}
	return result
}
