package sand

const (
	grassGrowthMin = 2
	grassGrowthMax = 20 // exclusive
	kelpGrowthMin  = 30
	kelpHungerMin  = 1
	kelpHungerMax  = 20 // exclusive
	minnowMoisture = 3
)

// updateSeed sprouts a seed resting on Dirt or Sand; otherwise it falls like
// any granule.
func (b *Board) updateSeed(index int) {
	if below, ok := b.Relative(index, 0, 1); ok {
		switch b.materialAt(below) {
		case Dirt, Sand:
			b.sprout(index)
			return
		}
	}
	if b.fallDown(index, intoAirOrWater) {
		return
	}
	b.fallDiagonal(index, intoAirOrWater)
}

// sprout turns a landed seed into Kelp when water sits directly above it,
// and into Grass otherwise.
func (b *Board) sprout(index int) {
	if above, ok := b.Relative(index, 0, -1); ok && b.materialAt(above) == Water {
		kelp := b.fresh(Kelp)
		kelp.Growth = uint8(b.rng.IntRange(kelpGrowthMin, min(b.height, 256)))
		kelp.Hunger = uint8(b.rng.IntRange(kelpHungerMin, kelpHungerMax))
		b.set(index, kelp)
		return
	}
	grass := b.fresh(Grass)
	grass.Growth = uint8(b.rng.IntRange(grassGrowthMin, grassGrowthMax))
	b.set(index, grass)
}

type candidate struct {
	index int
	ok    bool
}

// spreadOrder returns the up, up-left and up-right neighbours of index. One
// is picked to go first by the grass weights, the other two follow in random
// order.
func (b *Board) spreadOrder(index int) [3]candidate {
	var dirs [3]candidate
	for i, dx := range [3]int{0, -1, 1} {
		dirs[i].index, dirs[i].ok = b.Relative(index, dx, -1)
	}

	r := b.rng.Float64()
	first := 2
	switch {
	case r < b.params.GrassUpChance:
		first = 0
	case r < b.params.GrassUpChance+b.params.GrassLeftChance:
		first = 1
	}

	order := [3]candidate{dirs[first]}
	n := 1
	for i := range dirs {
		if i != first {
			order[n] = dirs[i]
			n++
		}
	}
	if b.rng.Bool() {
		order[1], order[2] = order[2], order[1]
	}
	return order
}

// occupied reports whether any candidate already holds m.
func (b *Board) occupied(order [3]candidate, m Material) bool {
	for _, c := range order {
		if c.ok && b.materialAt(c.index) == m {
			return true
		}
	}
	return false
}

// growGrass spreads grass upward into one empty candidate, handing down one
// less growth. Spreading stops once a neighbour above is already grass.
func (b *Board) growGrass(index int) bool {
	growth := b.cells[index].Growth
	if growth == 0 {
		return false
	}
	order := b.spreadOrder(index)
	if b.occupied(order, Grass) {
		return false
	}
	for _, c := range order {
		if !c.ok || b.materialAt(c.index) != Empty {
			continue
		}
		child := b.fresh(Grass)
		child.Growth = growth - 1
		b.set(c.index, child)
		return true
	}
	return false
}

func (b *Board) updateKelp(index int) {
	chance := float64(b.cells[index].Hunger) / 255
	if b.rng.Chance(chance) {
		b.growKelp(index)
	}
}

// growKelp spreads kelp upward through water. Unlike grass it may fill
// several candidates in one call; after each spread there is a
// KelpChainStopChance of stopping.
func (b *Board) growKelp(index int) bool {
	parent := b.cells[index]
	if parent.Growth == 0 {
		return false
	}
	order := b.spreadOrder(index)
	if b.occupied(order, Kelp) {
		return false
	}
	spread := false
	for _, c := range order {
		if !c.ok || b.materialAt(c.index) != Water {
			continue
		}
		penalty := b.rng.IntRange(b.params.KelpPenaltyMin, b.params.KelpPenaltyMax+1)
		if penalty > int(parent.Growth) {
			penalty = int(parent.Growth)
		}
		child := b.fresh(Kelp)
		child.Growth = parent.Growth - uint8(penalty)
		child.Hunger = parent.Hunger
		b.set(c.index, child)
		spread = true
		if b.rng.Chance(b.params.KelpChainStopChance) {
			return true
		}
	}
	return spread
}

// updateEgg sinks an egg like a granule; a resting egg occasionally checks
// the water column above it and hatches into a Minnow when it is deep enough.
func (b *Board) updateEgg(index int) {
	if b.fallDown(index, intoAirOrWater) {
		return
	}
	if b.fallDiagonal(index, intoAirOrWater) {
		return
	}
	if !b.rng.Chance(b.params.HatchChance) {
		return
	}
	depth := b.waterDepth(index)
	if depth < b.params.HatchDepth {
		return
	}
	minnow := b.fresh(Minnow)
	minnow.Moisture = uint8(b.rng.IntRange(minnowMoisture, depth-minnowMoisture))
	minnow.Facing = b.rng.Bool()
	b.set(index, minnow)
}

// waterDepth scans straight up from index and returns the offset of the
// first cell that is neither Water nor Minnow, counting the top edge as such
// a cell. The result is capped at 255.
func (b *Board) waterDepth(index int) int {
	depth := 1
	for ; depth < 255; depth++ {
		above, ok := b.Relative(index, 0, -depth)
		if !ok {
			break
		}
		if m := b.materialAt(above); m != Water && m != Minnow {
			break
		}
	}
	return depth
}

// updateMinnow drops a minnow that is out of the water, otherwise swims one
// cell in its facing direction, sometimes rising while it still has
// moisture. Swimming only ever swaps with water; a failed swim turns around.
func (b *Board) updateMinnow(index int) {
	if b.fallDown(index, intoAir) {
		return
	}
	if b.fallDiagonal(index, intoAir) {
		return
	}
	c := &b.cells[index]
	dy := 0
	if c.Moisture > 0 && b.rng.Chance(b.params.MinnowRiseChance) {
		dy = -1
		c.Moisture--
	}
	if target, ok := b.Relative(index, c.dir(), dy); ok && b.materialAt(target) == Water {
		b.swap(index, target)
		return
	}
	c.ToggleFacing()
}
