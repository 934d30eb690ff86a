package tilemap

import (
	"fmt"
	"image"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrUpdatesCeased = errors.New("tile map no longer accepts updates")
	ErrOffMap        = errors.New("footprint lies outside the map")
)

type viewCacheEntry struct {
	surface *image.RGBA
	dirty   bool
	set     bool
}

// TileMap is the spatial model of one city or battle. It is not safe for concurrent use.
type TileMap struct {
	Size          voxel.Int3
	VoxelMapSize  voxel.Int3
	VelocityScale mgl32.Vec3
	// CeaseUpdates freezes placement and the update passes while the map is torn down.
	CeaseUpdates bool

	tiles       []Tile
	layerMap    []mapset.Set[ObjectType]
	layerLookup [objectTypeCount]int

	agentPathCache    map[voxel.Int3][]voxel.Int3
	strategyViewCache []viewCacheEntry
	viewRegions       *rtreego.Rtree
	viewRegionSlots   map[int]*viewRegion
}

// NewTileMap allocates an empty map. Every object type must be assigned to exactly one layer.
func NewTileMap(size voxel.Int3, velocityScale mgl32.Vec3, voxelMapSize voxel.Int3, layerMap [][]ObjectType) (*TileMap, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, errors.Errorf("invalid map size %s", size)
	}
	if voxelMapSize.X <= 0 || voxelMapSize.Y <= 0 || voxelMapSize.Z <= 0 {
		return nil, errors.Errorf("invalid voxel map size %s", voxelMapSize)
	}
	m := &TileMap{
		Size:            size,
		VoxelMapSize:    voxelMapSize,
		VelocityScale:   velocityScale,
		agentPathCache:  make(map[voxel.Int3][]voxel.Int3),
		viewRegions:     rtreego.NewTree(3, 2, 8),
		viewRegionSlots: make(map[int]*viewRegion),
	}
	for i := range m.layerLookup {
		m.layerLookup[i] = -1
	}
	for layer, types := range layerMap {
		set := mapset.New[ObjectType]()
		for _, objectType := range types {
			if !objectType.IsValid() {
				return nil, errors.Errorf("layer %d: invalid object type %d", layer, int(objectType))
			}
			if m.layerLookup[objectType] != -1 {
				return nil, errors.Errorf("object type %s assigned to layers %d and %d", objectType, m.layerLookup[objectType], layer)
			}
			m.layerLookup[objectType] = layer
			set.Put(objectType)
		}
		m.layerMap = append(m.layerMap, set)
	}
	for objectType, layer := range m.layerLookup {
		if layer == -1 {
			return nil, errors.Errorf("object type %s has no layer", ObjectType(objectType))
		}
	}

	m.tiles = make([]Tile, size.Volume())
	for z := int32(0); z < size.Z; z++ {
		for y := int32(0); y < size.Y; y++ {
			for x := int32(0); x < size.X; x++ {
				tile := &m.tiles[m.index(x, y, z)]
				tile.Position = voxel.Int3{X: x, Y: y, Z: z}
				tile.tileMap = m
				tile.layers = make([][]*TileObject, len(layerMap))
			}
		}
	}
	util.LogMapDebug(fmt.Sprintf("[TileMap] created %s with %d layers", size, len(layerMap)))
	return m, nil
}

func (m *TileMap) index(x, y, z int32) int {
	return int(z)*int(m.Size.X)*int(m.Size.Y) + int(y)*int(m.Size.X) + int(x)
}

func (m *TileMap) tileAt(pos voxel.Int3) *Tile {
	return &m.tiles[m.index(pos.X, pos.Y, pos.Z)]
}

func (m *TileMap) TileIsValid(x, y, z int32) bool {
	return x >= 0 && x < m.Size.X && y >= 0 && y < m.Size.Y && z >= 0 && z < m.Size.Z
}

func (m *TileMap) TileIsValidAt(pos voxel.Int3) bool {
	return m.TileIsValid(pos.X, pos.Y, pos.Z)
}

// GetTile returns the tile at the given coordinates, or nil and an error log when they lie outside the map.
func (m *TileMap) GetTile(x, y, z int32) *Tile {
	if !m.TileIsValid(x, y, z) {
		util.LogMapError(fmt.Sprintf("[TileMap] Incorrect tile coordinates %d,%d,%d (size %s)", x, y, z, m.Size))
		return nil
	}
	return &m.tiles[m.index(x, y, z)]
}

func (m *TileMap) GetTileAt(pos voxel.Int3) *Tile {
	return m.GetTile(pos.X, pos.Y, pos.Z)
}

// GetTileForPosition returns the tile containing a world position.
func (m *TileMap) GetTileForPosition(pos mgl32.Vec3) *Tile {
	return m.GetTileAt(voxel.PositionToGridInt3(pos))
}

// GetLayer returns the layer objects of the given type are stored in.
func (m *TileMap) GetLayer(objectType ObjectType) int {
	if !objectType.IsValid() {
		util.LogMapError(fmt.Sprintf("[TileMap] No layer for object type %d", int(objectType)))
		return 0
	}
	return m.layerLookup[objectType]
}

func (m *TileMap) GetLayerCount() int {
	return len(m.layerMap)
}

// LayerTypes returns the set of object types stored in a layer.
func (m *TileMap) LayerTypes(layer int) mapset.Set[ObjectType] {
	if layer < 0 || layer >= len(m.layerMap) {
		return mapset.New[ObjectType]()
	}
	return m.layerMap[layer]
}
