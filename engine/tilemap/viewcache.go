package tilemap

import (
	"fmt"
	"image"

	"github.com/dhconnelly/rtreego"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
)

// viewRegion binds a strategy view cache slot to the tile box it renders.
type viewRegion struct {
	slot   int
	bounds rtreego.Rect
}

func (r *viewRegion) Bounds() rtreego.Rect {
	return r.bounds
}

func (m *TileMap) viewEntry(index int) *viewCacheEntry {
	if index < 0 {
		return nil
	}
	for len(m.strategyViewCache) <= index {
		m.strategyViewCache = append(m.strategyViewCache, viewCacheEntry{dirty: true})
	}
	return &m.strategyViewCache[index]
}

// GetViewSurface returns the cached surface of a slot, nil when none was stored.
func (m *TileMap) GetViewSurface(index int) *image.RGBA {
	if index < 0 || index >= len(m.strategyViewCache) {
		return nil
	}
	return m.strategyViewCache[index].surface
}

// SetViewSurface stores a rendered surface and marks the slot clean.
func (m *TileMap) SetViewSurface(index int, surface *image.RGBA) {
	entry := m.viewEntry(index)
	if entry == nil {
		util.LogViewError(fmt.Sprintf("[ViewCache] invalid slot %d", index))
		return
	}
	entry.surface = surface
	entry.dirty = false
	entry.set = true
}

func (m *TileMap) SetViewSurfaceDirty(index int, dirty bool) {
	entry := m.viewEntry(index)
	if entry == nil {
		util.LogViewError(fmt.Sprintf("[ViewCache] invalid slot %d", index))
		return
	}
	entry.dirty = dirty
}

// IsViewSurfaceDirty reports whether a slot needs to be re-rendered. Slots never stored are dirty.
func (m *TileMap) IsViewSurfaceDirty(index int) bool {
	if index < 0 || index >= len(m.strategyViewCache) {
		return true
	}
	entry := m.strategyViewCache[index]
	return !entry.set || entry.dirty
}

// RegisterViewRegion binds a view slot to the tile box [start, end). Changes to objects inside the box mark the slot dirty.
// Registering a slot again replaces its box.
func (m *TileMap) RegisterViewRegion(index int, start, end voxel.Int3) error {
	if index < 0 {
		return errors.Errorf("invalid view slot %d", index)
	}
	size := end.Sub(start)
	bounds, err := rtreego.NewRect(
		rtreego.Point{float64(start.X), float64(start.Y), float64(start.Z)},
		[]float64{float64(size.X), float64(size.Y), float64(size.Z)},
	)
	if err != nil {
		return errors.Wrapf(err, "view slot %d region %s-%s", index, start, end)
	}
	if previous, ok := m.viewRegionSlots[index]; ok {
		m.viewRegions.Delete(previous)
	}
	region := &viewRegion{slot: index, bounds: bounds}
	m.viewRegions.Insert(region)
	m.viewRegionSlots[index] = region
	m.viewEntry(index)
	return nil
}

func (m *TileMap) markViewDirty(tiles []voxel.Int3) {
	if m.viewRegions.Size() == 0 {
		return
	}
	for _, pos := range tiles {
		centre := rtreego.Point{float64(pos.X) + 0.5, float64(pos.Y) + 0.5, float64(pos.Z) + 0.5}
		for _, hit := range m.viewRegions.SearchIntersect(centre.ToRect(0.25)) {
			region := hit.(*viewRegion)
			if !m.strategyViewCache[region.slot].dirty {
				util.LogViewDebug(fmt.Sprintf("[ViewCache] slot %d dirty, tile %s changed", region.slot, pos))
			}
			m.strategyViewCache[region.slot].dirty = true
		}
	}
}
