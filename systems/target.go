package systems

import "github.com/ScaratP/TypingMonster/components"

// NoTarget is the index returned when no monster can receive input
const NoTarget = -1

// SelectTarget returns the index of the targetable monster closest to the floor (greatest Y)
// Ties go to the lowest index. Pure: keeps no memory of earlier selections
func SelectTarget(monsters []components.Monster) (int, bool) {
	target := NoTarget
	for i := range monsters {
		m := &monsters[i]
		if !m.Targetable() {
			continue
		}
		if target == NoTarget || m.Y > monsters[target].Y {
			target = i
		}
	}
	return target, target != NoTarget
}
