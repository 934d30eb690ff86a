package game

import (
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
)

type UnitDefinition struct {
	Name     string
	SpawnPos voxel.Int3
	// OccupiedTileOffsets defaults to StandardUnitOffsets.
	OccupiedTileOffsets []voxel.Int3
}

type FactionDefinition struct {
	Name         string
	Organisation tilemap.Organisation
	Units        []UnitDefinition
}

type Faction struct {
	name         string
	organisation tilemap.Organisation
	units        []*BattleUnit
}

func (f *Faction) Name() string {
	return f.name
}

func (f *Faction) Organisation() tilemap.Organisation {
	return f.organisation
}

func (f *Faction) Units() []*BattleUnit {
	return f.units
}

// AddFaction spawns the units of a faction. Already spawned units stay on the map when a later one fails.
func (b *Battle) AddFaction(def FactionDefinition) (*Faction, error) {
	if def.Organisation == tilemap.NoOrganisation {
		return nil, errors.Errorf("faction %s needs an organisation", def.Name)
	}
	faction := &Faction{name: def.Name, organisation: def.Organisation}
	for _, unitDef := range def.Units {
		offsets := unitDef.OccupiedTileOffsets
		if len(offsets) == 0 {
			offsets = StandardUnitOffsets
		}
		unit := NewBattleUnit(unitDef.Name, def.Organisation, unitDef.SpawnPos, offsets, b.Map.VoxelMapSize)
		if err := Spawn(b.Map, unit); err != nil {
			return nil, errors.Wrapf(err, "faction %s", def.Name)
		}
		faction.units = append(faction.units, unit)
	}
	b.factions = append(b.factions, faction)
	b.Map.UpdateAllBattlescapeInfo()
	return faction, nil
}
