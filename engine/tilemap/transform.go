package tilemap

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TileTransform maps tile space to screen pixels and back.
type TileTransform interface {
	TileToScreenCoords(pos mgl32.Vec3) mgl32.Vec2
	// ScreenToTileCoords returns the tile space point drawn at the pixel, assuming it lies at height z.
	ScreenToTileCoords(screen mgl32.Vec2, z float32) mgl32.Vec3
}

// IsometricTransform projects tiles as diamonds of TileSize pixels, raising each level by ZHeight pixels.
type IsometricTransform struct {
	TileSize mgl32.Vec2
	ZHeight  float32
}

func (t IsometricTransform) TileToScreenCoords(pos mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{
		(pos.X() - pos.Y()) * t.TileSize.X() / 2,
		(pos.X()+pos.Y())*t.TileSize.Y()/2 - pos.Z()*t.ZHeight,
	}
}

func (t IsometricTransform) ScreenToTileCoords(screen mgl32.Vec2, z float32) mgl32.Vec3 {
	a := screen.X() / (t.TileSize.X() / 2)
	b := (screen.Y() + z*t.ZHeight) / (t.TileSize.Y() / 2)
	return mgl32.Vec3{(a + b) / 2, (b - a) / 2, z}
}

// StrategyTransform is the top-down view, Scale pixels per tile.
type StrategyTransform struct {
	Scale mgl32.Vec2
}

func (t StrategyTransform) TileToScreenCoords(pos mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{pos.X() * t.Scale.X(), pos.Y() * t.Scale.Y()}
}

func (t StrategyTransform) ScreenToTileCoords(screen mgl32.Vec2, z float32) mgl32.Vec3 {
	return mgl32.Vec3{screen.X() / t.Scale.X(), screen.Y() / t.Scale.Y(), z}
}

func NewTransform(mode TileViewMode) TileTransform {
	if mode == TileViewModeStrategy {
		return StrategyTransform{Scale: mgl32.Vec2{8, 8}}
	}
	return IsometricTransform{TileSize: mgl32.Vec2{64, 32}, ZHeight: 16}
}
