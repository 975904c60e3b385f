package systems

import (
	"math"
	"math/rand"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/constants"
	"github.com/ScaratP/TypingMonster/theme"
)

// Population is a fixed-capacity arena of monster slots
// Slots [0, n) are in play, active or waiting for recycle; slots beyond n are dormant
// Every destroy bumps the slot generation so stale delayed recycles can be discarded
type Population struct {
	slots [constants.MaxPopulation]components.Monster
	gen   [constants.MaxPopulation]uint64
	n     int

	rng           *rand.Rand
	width, height float64
}

// NewPopulation creates an empty arena over a world of the given size
func NewPopulation(rng *rand.Rand, width, height float64) *Population {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	p := &Population{rng: rng}
	p.SetBounds(width, height)
	return p
}

// SetBounds updates the world size used for placement
func (p *Population) SetBounds(width, height float64) {
	if width <= 0 {
		width = constants.DefaultWorldWidth
	}
	if height <= 0 {
		height = constants.DefaultWorldHeight
	}
	p.width, p.height = width, height
}

// Width returns the world width used for placement
func (p *Population) Width() float64 {
	return p.width
}

// Height returns the world height
func (p *Population) Height() float64 {
	return p.height
}

// Len returns the number of slots in play
func (p *Population) Len() int {
	return p.n
}

// Monsters returns the slots in play, valid until the next population call
func (p *Population) Monsters() []components.Monster {
	return p.slots[:p.n]
}

// At returns the slot at index i
func (p *Population) At(i int) *components.Monster {
	if i < 0 || i >= p.n {
		return nil
	}
	return &p.slots[i]
}

// ActiveCount returns the number of active slots
func (p *Population) ActiveCount() int {
	count := 0
	for i := 0; i < p.n; i++ {
		if p.slots[i].Active {
			count++
		}
	}
	return count
}

// Clear drops every slot back to dormant
func (p *Population) Clear() {
	for i := 0; i < p.n; i++ {
		p.slots[i].Destroy()
		p.slots[i].Remaining = p.slots[i].Remaining[:0]
		p.slots[i].Typed = p.slots[i].Typed[:0]
		p.gen[i]++
	}
	p.n = 0
}

// SpawnInitial fills the arena with level.Count monsters in non-overlapping horizontal sections
func (p *Population) SpawnInitial(level theme.LevelConfig, th theme.Theme) {
	p.Clear()

	count := level.Count
	if count > constants.MaxPopulation {
		count = constants.MaxPopulation
	}
	if count <= 0 {
		return
	}

	size := level.Size
	margin := size * 2
	usable := p.width - margin*2
	if usable < 0 {
		usable = 0
	}
	section := usable / float64(count)
	span := section - size
	if span < 0 {
		span = 0
	}

	for i := 0; i < count; i++ {
		start := margin + float64(i)*section
		m := &p.slots[i]
		m.X = p.rng.Float64()*span + start + size/2
		m.FallSpeed = level.Speed
		m.Reset(constants.SpawnStartY-constants.SpawnStaggerY*float64(i+1), size, theme.Tokenize(th.Text(i)))
		p.gen[i]++
	}
	p.n = count
}

// Destroy deactivates slot i and returns the generation a delayed recycle must present
func (p *Population) Destroy(i int) uint64 {
	if i < 0 || i >= p.n {
		return 0
	}
	p.slots[i].Destroy()
	p.gen[i]++
	return p.gen[i]
}

// RecycleAfterDestroy recycles slot i only if it has not been reset or destroyed again since token was issued
func (p *Population) RecycleAfterDestroy(i int, token uint64, level theme.LevelConfig, th theme.Theme) bool {
	if i < 0 || i >= p.n || p.gen[i] != token || p.slots[i].Active {
		return false
	}
	return p.Recycle(i, level, th)
}

// Recycle resets an inactive slot above the visible area with fresh random text
// X and fall speed are kept; radius follows the current level
func (p *Population) Recycle(i int, level theme.LevelConfig, th theme.Theme) bool {
	if i < 0 || i >= p.n || p.slots[i].Active {
		return false
	}
	y := -constants.RecycleBaseY - p.rng.Float64()*constants.RecycleJitterY
	p.slots[i].Reset(y, level.Size, theme.Tokenize(th.RandomText(p.rng)))
	p.gen[i]++
	return true
}

// RecycleCheck restores the active floor, then recycles each other inactive slot with a fixed probability
// Returns the number of slots recycled
func (p *Population) RecycleCheck(level theme.LevelConfig, th theme.Theme) int {
	recycled := 0
	active := p.ActiveCount()

	for i := 0; i < p.n; i++ {
		if p.slots[i].Active {
			continue
		}
		if active < constants.MinActiveMonsters || p.rng.Float64() < constants.RecycleProbability {
			if p.Recycle(i, level, th) {
				active++
				recycled++
			}
		}
	}
	return recycled
}

// TargetSize returns the population target for a difficulty multiplier
func (p *Population) TargetSize(level theme.LevelConfig, difficulty float64) int {
	target := level.Count
	if difficulty >= constants.GrowthThreshold {
		target += int(math.Floor(difficulty-1)) * constants.GrowthPerStep
	}
	if target > constants.MaxPopulation {
		target = constants.MaxPopulation
	}
	return target
}

// TopUp spawns fresh monsters until the arena reaches the difficulty-driven target
// Returns the number spawned
func (p *Population) TopUp(level theme.LevelConfig, th theme.Theme, difficulty float64) int {
	target := p.TargetSize(level, difficulty)
	spawned := 0
	for p.n < target {
		i := p.n
		m := &p.slots[i]
		span := p.width - constants.FreshSpawnMarginX*2
		if span < 0 {
			span = 0
		}
		m.X = p.rng.Float64()*span + constants.FreshSpawnMarginX
		m.FallSpeed = level.Speed * difficulty
		m.Reset(-constants.FreshSpawnBaseY-p.rng.Float64()*constants.FreshSpawnJitterY, level.Size, theme.Tokenize(th.RandomText(p.rng)))
		p.gen[i]++
		p.n++
		spawned++
	}
	return spawned
}

// Escalate speeds up every active monster by a scaled fraction of factor
func (p *Population) Escalate(factor float64) {
	scale := 1 + factor*constants.DifficultySpeedScale
	for i := 0; i < p.n; i++ {
		if p.slots[i].Active {
			p.slots[i].FallSpeed *= scale
		}
	}
}

// Advance moves every active monster by its fall speed
func (p *Population) Advance() {
	for i := 0; i < p.n; i++ {
		p.slots[i].Advance()
	}
}

// FloorHit returns the first active, positive-radius monster at or below floor
func (p *Population) FloorHit(floor float64) (int, bool) {
	for i := 0; i < p.n; i++ {
		m := &p.slots[i]
		if m.Active && m.Radius > 0 && m.Y >= floor {
			return i, true
		}
	}
	return -1, false
}

// Snapshot returns deep copies of the slots in play
func (p *Population) Snapshot() []components.Monster {
	out := make([]components.Monster, p.n)
	for i := 0; i < p.n; i++ {
		out[i] = p.slots[i].Clone()
	}
	return out
}
