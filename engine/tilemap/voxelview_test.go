package tilemap

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/voxel"
)

func TestTransformsRoundTrip(t *testing.T) {
	points := []mgl32.Vec3{{0, 0, 0}, {3.5, 1.25, 0}, {7, 2, 1.5}}
	for _, mode := range []TileViewMode{TileViewModeIsometric, TileViewModeStrategy} {
		transform := NewTransform(mode)
		for _, p := range points {
			back := transform.ScreenToTileCoords(transform.TileToScreenCoords(p), p.Z())
			if !back.ApproxEqualThreshold(p, 1e-4) {
				t.Fatalf("mode %d: %v came back as %v", mode, p, back)
			}
		}
	}
}

func TestDumpVoxelViewStrategy(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 4, Y: 4, Z: 2})
	mustAdd(t, m, newEntity(ObjectTypeScenery, voxel.Int3{X: 1, Y: 1}))
	transform := NewTransform(TileViewModeStrategy)
	viewRect := image.Rect(0, 0, 32, 32)

	for _, fast := range []bool{false, true} {
		img := m.DumpVoxelView(viewRect, transform, 2, fast, false)
		if img == nil || img.Bounds() != viewRect {
			t.Fatalf("fast=%t: unexpected image bounds", fast)
		}
		hit := img.RGBAAt(12, 12)
		if hit == voxelViewBackground || hit.R != hit.G || hit.G != hit.B {
			t.Fatalf("fast=%t: expected a shaded grey scenery pixel, got %v", fast, hit)
		}
		if miss := img.RGBAAt(2, 2); miss != voxelViewBackground {
			t.Fatalf("fast=%t: expected background outside the scenery, got %v", fast, miss)
		}
	}
}

func TestDumpVoxelViewIsometric(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 4, Y: 4, Z: 2})
	mustAdd(t, m, newEntity(ObjectTypeScenery, voxel.Int3{X: 1, Y: 1}))
	transform := NewTransform(TileViewModeIsometric)
	viewRect := image.Rect(-64, 0, 64, 96)

	img := m.DumpVoxelView(viewRect, transform, 2, false, false)
	if img == nil || img.Bounds() != image.Rect(0, 0, 128, 96) {
		t.Fatalf("unexpected image bounds")
	}
	// the top face of the scenery tile is drawn at screen (0, 32)
	top := transform.TileToScreenCoords(mgl32.Vec3{1.5, 1.5, 1})
	hit := img.RGBAAt(int(top.X())-viewRect.Min.X, int(top.Y())-viewRect.Min.Y)
	if hit == voxelViewBackground || hit.R != hit.G || hit.G != hit.B {
		t.Fatalf("expected a shaded grey scenery pixel, got %v", hit)
	}
	if miss := img.RGBAAt(0, 0); miss != voxelViewBackground {
		t.Fatalf("expected background at the left edge, got %v", miss)
	}
}

func TestDumpVoxelViewLOSSkipsItems(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 4, Y: 4, Z: 2})
	mustAdd(t, m, newEntity(ObjectTypeScenery, voxel.Int3{X: 1, Y: 1}))
	mustAdd(t, m, newEntity(ObjectTypeBattleItem, voxel.Int3{X: 2, Y: 2}))
	transform := NewTransform(TileViewModeStrategy)
	viewRect := image.Rect(0, 0, 32, 32)

	normal := m.DumpVoxelView(viewRect, transform, 2, false, false)
	if item := normal.RGBAAt(20, 20); item == voxelViewBackground || item.R == item.B {
		t.Fatalf("expected a gold item pixel in the normal view, got %v", item)
	}
	sight := m.DumpVoxelView(viewRect, transform, 2, false, true)
	if item := sight.RGBAAt(20, 20); item != voxelViewBackground {
		t.Fatalf("items do not block sight, got %v", item)
	}
	if wall := sight.RGBAAt(12, 12); wall != normal.RGBAAt(12, 12) {
		t.Fatalf("scenery should look the same in both views, got %v and %v", wall, normal.RGBAAt(12, 12))
	}
}

func TestDumpVoxelViewRejectsEmptyRect(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 2, Y: 2, Z: 1})
	logged := captureLog(t)
	if img := m.DumpVoxelView(image.Rectangle{}, NewTransform(TileViewModeIsometric), 1, false, false); img != nil {
		t.Fatalf("expected nil image for empty view")
	}
	if logged.Len() == 0 {
		t.Fatalf("expected an error log")
	}
}
