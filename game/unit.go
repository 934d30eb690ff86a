package game

import (
	"fmt"

	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
)

// DefaultPathIterationLimit bounds the search effort of a single movement order.
const DefaultPathIterationLimit = 4000

// waypoints is the path following state shared by units and vehicles.
type waypoints struct {
	path   []voxel.Int3
	moving bool
}

func (w *waypoints) IsMoving() bool {
	return w.moving
}

// SetPath stores a path whose first tile is the current position.
func (w *waypoints) SetPath(path []voxel.Int3) {
	w.path = path
	w.moving = len(path) > 1
}

func (w *waypoints) Path() []voxel.Int3 {
	return w.path
}

func (w *waypoints) nextStep() (voxel.Int3, bool) {
	if len(w.path) < 2 {
		w.moving = false
		return voxel.Int3{}, false
	}
	w.path = w.path[1:]
	w.moving = len(w.path) > 1
	return w.path[0], true
}

// BattleUnit is a soldier or alien. OccupiedTileOffsets lets large units span several tiles.
type BattleUnit struct {
	placement
	waypoints
	Name  string
	owner tilemap.Organisation
	body  *voxel.VoxelMap
}

// StandardUnitOffsets makes a unit two tiles tall.
var StandardUnitOffsets = []voxel.Int3{{}, {Z: 1}}

func NewBattleUnit(name string, owner tilemap.Organisation, position voxel.Int3, offsets []voxel.Int3, voxelMapSize voxel.Int3) *BattleUnit {
	body := voxel.NewVoxelMap(voxelMapSize)
	centre := voxel.Int3{X: voxelMapSize.X / 2, Y: voxelMapSize.Y / 2}
	body.FillBox(centre.Sub(voxel.Int3{X: voxelMapSize.X / 4, Y: voxelMapSize.Y / 4}), centre.Add(voxel.Int3{X: voxelMapSize.X / 4, Y: voxelMapSize.Y / 4, Z: voxelMapSize.Z}), true)
	body.CalculateCentre()
	return &BattleUnit{
		placement: placement{position: position, offsets: offsets},
		Name:      name,
		owner:     owner,
		body:      body,
	}
}

func (u *BattleUnit) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeBattleUnit
}

func (u *BattleUnit) ControlledBy() tilemap.Organisation {
	return u.owner
}

func (u *BattleUnit) VoxelMapAt(tile voxel.Int3, los bool) *voxel.VoxelMap {
	return u.body
}

func (u *BattleUnit) String() string {
	return fmt.Sprintf("%s@%s", u.Name, u.position)
}

// MoveTo plans a ground path to the destination and starts following it.
// It returns false when no path was found; the unit then keeps standing.
func (u *BattleUnit) MoveTo(m *tilemap.TileMap, destination voxel.Int3) bool {
	path, cost := m.FindAgentPath(u.position, destination, DefaultPathIterationLimit, &GroundMover{Unit: u}, tilemap.DefaultPathOptions())
	if len(path) == 0 || path[len(path)-1] != destination {
		util.LogPathDebug(fmt.Sprintf("[Game] %s found no path to %s", u, destination))
		return false
	}
	util.LogPathDebug(fmt.Sprintf("[Game] %s moving to %s, cost %.1f", u, destination, cost))
	u.SetPath(path)
	return true
}

// Step advances the unit by one tile along its path.
func (u *BattleUnit) Step(m *tilemap.TileMap) error {
	next, ok := u.nextStep()
	if !ok {
		return nil
	}
	return relocate(m, u, &u.placement, next)
}

// Vehicle is a flying city vehicle.
type Vehicle struct {
	placement
	waypoints
	Name  string
	owner tilemap.Organisation
}

func NewVehicle(name string, owner tilemap.Organisation, position voxel.Int3) *Vehicle {
	return &Vehicle{placement: placement{position: position}, Name: name, owner: owner}
}

func (v *Vehicle) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeVehicle
}

func (v *Vehicle) ControlledBy() tilemap.Organisation {
	return v.owner
}

// FlyTo plans a route through the air and starts following it.
func (v *Vehicle) FlyTo(m *tilemap.TileMap, destination voxel.Int3) bool {
	path, _ := m.FindAgentPath(v.position, destination, DefaultPathIterationLimit, &FlyingMover{Vehicle: v}, tilemap.DefaultPathOptions())
	if len(path) == 0 || path[len(path)-1] != destination {
		return false
	}
	v.SetPath(path)
	return true
}

func (v *Vehicle) Step(m *tilemap.TileMap) error {
	next, ok := v.nextStep()
	if !ok {
		return nil
	}
	return relocate(m, v, &v.placement, next)
}
