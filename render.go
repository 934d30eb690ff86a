package main

import (
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/game"
)

// tileGlyph picks the character of the most interesting object on a tile.
func tileGlyph(tile *tilemap.Tile) rune {
	glyph := ' '
	for _, object := range tile.Objects() {
		switch owner := object.Owner.(type) {
		case *game.BattleUnit:
			if owner.ControlledBy() == 1 {
				return '@'
			}
			return '&'
		case *game.Vehicle:
			return 'V'
		case *game.Projectile:
			return '*'
		case *game.Doodad:
			glyph = 'x'
		case *game.BattleHazard:
			glyph = '~'
		case *game.BattleItem:
			glyph = 'i'
		case *game.BattleMapPart:
			if glyph != ' ' && glyph != '.' {
				continue
			}
			switch owner.Kind {
			case game.MapPartWall:
				glyph = '#'
			case game.MapPartFeature:
				glyph = 'H'
			default:
				glyph = '.'
			}
		case *game.Scenery:
			glyph = '%'
		}
	}
	return glyph
}

// renderLevel draws one z level of the map as text rows, cut to maxWidth columns.
func renderLevel(m *tilemap.TileMap, z int32, maxWidth int) []string {
	width := int(m.Size.X)
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}
	rows := make([]string, 0, m.Size.Y)
	for y := int32(0); y < m.Size.Y; y++ {
		row := make([]rune, width)
		for x := 0; x < width; x++ {
			row[x] = tileGlyph(m.GetTile(int32(x), y, z))
		}
		rows = append(rows, string(row))
	}
	return rows
}
