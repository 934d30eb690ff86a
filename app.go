package main

import (
	"fmt"

	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/memmaker/tileworld/game"
)

var demoLayout = []string{
	"................",
	"..####....~~....",
	"..#..#..........",
	"..#..H.....i....",
	"..####..........",
	"........######..",
	"........#....#..",
	"................",
}

var demoSize = voxel.Int3{X: 16, Y: 8, Z: 3}

// newDemoBattle sets up the demo battlefield with two factions.
func newDemoBattle() (*game.Battle, error) {
	battle, err := game.NewBattle(demoSize, demoLayout)
	if err != nil {
		return nil, err
	}
	if _, err := battle.AddFaction(game.FactionDefinition{
		Name:         "X-Com",
		Organisation: 1,
		Units: []game.UnitDefinition{
			{Name: "Soldier #1", SpawnPos: voxel.Int3{X: 0, Y: 0}},
			{Name: "Soldier #2", SpawnPos: voxel.Int3{X: 1, Y: 7}},
		},
	}); err != nil {
		return nil, err
	}
	if _, err := battle.AddFaction(game.FactionDefinition{
		Name:         "Deep Ones",
		Organisation: 2,
		Units: []game.UnitDefinition{
			{Name: "Deep Monster", SpawnPos: voxel.Int3{X: 15, Y: 3}},
		},
	}); err != nil {
		return nil, err
	}
	return battle, nil
}

// demoMoveBudget is the movement range of the second soldier.
const demoMoveBudget = 12

// issueDemoOrders sends the soldiers towards the monster and opens fire on the nearest visible enemy.
func issueDemoOrders(battle *game.Battle) error {
	soldiers := battle.Factions()[0].Units()
	soldiers[0].MoveTo(battle.Map, voxel.Int3{X: 13, Y: 2})
	move := game.NewActionMove(battle.Map, soldiers[1], demoMoveBudget)
	if !move.Execute(voxel.Int3{X: 12, Y: 7}) {
		util.LogMapWarning(fmt.Sprintf("[Demo] %s cannot reach its position, %d tiles in range", soldiers[1], len(move.GetValidTargets())))
	}
	visible := battle.VisibleEnemies(soldiers[1])
	if len(visible) == 0 {
		return nil
	}
	_, err := battle.Fire(soldiers[1], visible[0].Position().ToTileCenterVec3(), 240)
	return err
}
