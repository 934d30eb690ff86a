package game

import (
	"sort"
)

// VisibleEnemies returns the units of other factions the observer can see, nearest first.
func (b *Battle) VisibleEnemies(observer *BattleUnit) []*BattleUnit {
	var result []*BattleUnit
	for _, faction := range b.factions {
		if faction.organisation == observer.ControlledBy() {
			continue
		}
		for _, enemy := range faction.units {
			if b.CanSee(observer, enemy) {
				result = append(result, enemy)
			}
		}
	}
	eye := eyePosition(observer)
	sort.SliceStable(result, func(i, j int) bool {
		return eye.Sub(eyePosition(result[i])).Len() < eye.Sub(eyePosition(result[j])).Len()
	})
	return result
}

// LOSMatrix records for every unit which enemies it can currently see.
func (b *Battle) LOSMatrix() map[*BattleUnit][]*BattleUnit {
	matrix := make(map[*BattleUnit][]*BattleUnit)
	for _, faction := range b.factions {
		for _, unit := range faction.units {
			matrix[unit] = b.VisibleEnemies(unit)
		}
	}
	return matrix
}
