package tilemap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/util"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

var objectTypeColours = [objectTypeCount]color.RGBA{
	ObjectTypeProjectile:    colornames.Yellow,
	ObjectTypeVehicle:       colornames.Red,
	ObjectTypeScenery:       colornames.Gray,
	ObjectTypeDoodad:        colornames.Orange,
	ObjectTypeBattleMapPart: colornames.Saddlebrown,
	ObjectTypeBattleItem:    colornames.Gold,
	ObjectTypeBattleUnit:    colornames.Limegreen,
	ObjectTypeBattleHazard:  colornames.Purple,
}

var voxelViewBackground = color.RGBA{A: 255}

// DumpVoxelView renders the map as seen through transform by casting one ray per pixel from height maxZ down to the ground.
// Hits are coloured by object type and shaded by height. In fast mode every other pixel is sampled and the result is upscaled.
func (m *TileMap) DumpVoxelView(viewRect image.Rectangle, transform TileTransform, maxZ float32, fast, los bool) *image.RGBA {
	if viewRect.Empty() || transform == nil || maxZ <= 0 {
		util.LogViewError(fmt.Sprintf("[VoxelView] invalid view %v maxZ %.2f", viewRect, maxZ))
		return nil
	}
	result := image.NewRGBA(image.Rect(0, 0, viewRect.Dx(), viewRect.Dy()))
	if !fast {
		m.sampleVoxelView(result, viewRect.Min, 1, transform, maxZ, los)
		return result
	}
	half := image.NewRGBA(image.Rect(0, 0, (viewRect.Dx()+1)/2, (viewRect.Dy()+1)/2))
	m.sampleVoxelView(half, viewRect.Min, 2, transform, maxZ, los)
	draw.NearestNeighbor.Scale(result, result.Bounds(), half, half.Bounds(), draw.Src, nil)
	return result
}

func (m *TileMap) sampleVoxelView(target *image.RGBA, origin image.Point, stride int, transform TileTransform, maxZ float32, los bool) {
	bounds := target.Bounds()
	opts := CollisionOptions{UseLOS: los}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			screen := mgl32.Vec2{
				float32(origin.X+x*stride) + 0.5,
				float32(origin.Y+y*stride) + 0.5,
			}
			top := transform.ScreenToTileCoords(screen, maxZ)
			bottom := transform.ScreenToTileCoords(screen, 0)
			collision := m.FindCollision(top, bottom, opts)
			if !collision.Hit {
				target.SetRGBA(x, y, voxelViewBackground)
				continue
			}
			target.SetRGBA(x, y, shadeByHeight(objectTypeColours[collision.Object.Type], collision.Position.Z()/float32(m.Size.Z)))
		}
	}
}

// shadeByHeight darkens lower voxels, keeping half the brightness at the ground.
func shadeByHeight(c color.RGBA, height float32) color.RGBA {
	factor := util.Mix(0.5, 1, mgl32.Clamp(height, 0, 1))
	return color.RGBA{
		R: uint8(float32(c.R) * factor),
		G: uint8(float32(c.G) * factor),
		B: uint8(float32(c.B) * factor),
		A: 255,
	}
}
