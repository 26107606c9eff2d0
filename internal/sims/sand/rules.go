package sand

// update dispatches the cell at index to its material's rule.
func (b *Board) update(index int) {
	switch b.cells[index].Material {
	case Sand, Dirt:
		b.updateGranule(index)
	case Water:
		b.updateWater(index)
	case Seed:
		b.updateSeed(index)
	case Grass:
		b.growGrass(index)
	case Kelp:
		b.updateKelp(index)
	case Egg:
		b.updateEgg(index)
	case Minnow:
		b.updateMinnow(index)
	case Empty, Wall, ScreenEdge:
	}
}

// passable reports which materials a falling particle may swap with.
type passable func(Material) bool

func intoAir(m Material) bool { return m == Empty }

func intoAirOrWater(m Material) bool { return m == Empty || m == Water }

// fallDown moves the particle one row down when the cell below accepts it.
// With no row below it removes the particle unless the board has a floor.
func (b *Board) fallDown(index int, accept passable) bool {
	below, ok := b.Relative(index, 0, 1)
	if !ok {
		if b.Floor {
			return false
		}
		b.remove(index)
		return true
	}
	if !accept(b.materialAt(below)) {
		return false
	}
	b.swap(index, below)
	return true
}

// fallDiagonal tries the two cells diagonally below in random order and
// swaps into the first one that accepts the particle and holds a different
// material.
func (b *Board) fallDiagonal(index int, accept passable) bool {
	first, second := -1, 1
	if b.rng.Bool() {
		first, second = second, first
	}
	self := b.materialAt(index)
	for _, dx := range [2]int{first, second} {
		target, ok := b.Relative(index, dx, 1)
		if !ok {
			continue
		}
		m := b.materialAt(target)
		if accept(m) && m != self {
			b.swap(index, target)
			return true
		}
	}
	return false
}

// updateGranule is the Sand and Dirt rule: granules sink through water.
func (b *Board) updateGranule(index int) {
	if b.fallDown(index, intoAirOrWater) {
		return
	}
	b.fallDiagonal(index, intoAirOrWater)
}

func (b *Board) updateWater(index int) {
	if b.fallDown(index, intoAir) {
		return
	}
	if b.fallDiagonal(index, intoAirOrWater) {
		return
	}
	b.disperse(index)
}

type lookResult uint8

const (
	lookNone lookResult = iota
	lookBlocked
	lookOpen
)

// lookAlong scans up to distance cells sideways from index in direction dir
// (+1 right, -1 left). Water is seen through; anything else, including the
// board edge, blocks.
func (b *Board) lookAlong(index, dir, distance int) (lookResult, int) {
	for i := 1; i <= distance; i++ {
		target, ok := b.Relative(index, dir*i, 0)
		if !ok {
			return lookBlocked, 0
		}
		switch b.materialAt(target) {
		case Empty:
			return lookOpen, target
		case Water:
			continue
		default:
			return lookBlocked, 0
		}
	}
	return lookNone, 0
}

// disperse moves a liquid sideways into the first opening within the
// dispersion distance, preferring its facing side. If that side is blocked
// or only liquid, facing flips and the other side is tried.
func (b *Board) disperse(index int) bool {
	c := &b.cells[index]
	dir := c.dir()
	distance := b.params.Dispersion

	if res, target := b.lookAlong(index, dir, distance); res == lookOpen {
		b.swap(index, target)
		return true
	}
	c.ToggleFacing()
	if res, target := b.lookAlong(index, -dir, distance); res == lookOpen {
		b.swap(index, target)
		return true
	}
	return false
}
