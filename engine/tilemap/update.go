package tilemap

import (
	"fmt"

	"github.com/memmaker/tileworld/engine/util"
)

// UpdateAllBattlescapeInfo refreshes the derived battle state of every tile.
// Tiles are visited bottom up so standing checks can rely on the level below.
func (m *TileMap) UpdateAllBattlescapeInfo() {
	if m.CeaseUpdates {
		return
	}
	standable := 0
	for i := range m.tiles {
		tile := &m.tiles[i]
		tile.Height = 0
		tile.LOSBlocked = false
		tile.UnitCount = 0
		for _, object := range tile.Objects() {
			switch object.Type {
			case ObjectTypeBattleMapPart, ObjectTypeScenery:
				if h := object.heightIn(tile.Position); h > tile.Height {
					tile.Height = h
				}
			case ObjectTypeBattleUnit:
				tile.UnitCount++
			}
			if object.blocksSightIn(tile.Position) {
				tile.LOSBlocked = true
			}
		}
		tile.SolidGround = tile.Height > 0
		supported := tile.SolidGround
		if !supported && tile.Position.Z > 0 {
			below := &m.tiles[i-int(m.Size.X)*int(m.Size.Y)]
			supported = below.Height >= 1
		}
		tile.CanStand = supported && tile.Height < 1
		if tile.CanStand {
			standable++
		}
	}
	util.LogMapDebug(fmt.Sprintf("[TileMap] battlescape info updated, %d standable tiles", standable))
}

// UpdateAllCityInfo refreshes the derived city state of every tile.
func (m *TileMap) UpdateAllCityInfo() {
	if m.CeaseUpdates {
		return
	}
	for i := range m.tiles {
		tile := &m.tiles[i]
		tile.HasScenery = false
		tile.VehicleCount = 0
		for _, object := range tile.Objects() {
			switch object.Type {
			case ObjectTypeScenery:
				tile.HasScenery = true
			case ObjectTypeVehicle:
				tile.VehicleCount++
			}
		}
	}
	util.LogMapDebug("[TileMap] city info updated")
}
