package sand

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"falling-sand/internal/core"
)

// Material identifies what occupies a cell.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Dirt
	Seed
	Grass
	Kelp
	Wall
	Moss
	Cloud
	Egg
	Frog
	Tadpole
	Isopod
	Minnow
	Snail
	SpringTail
	// ScreenEdge is only ever reported by neighborhood queries for positions
	// outside the board. It is never stored in a cell.
	ScreenEdge

	materialCount
)

// ErrUnknownMaterial is returned by ParseMaterial for unrecognised names.
var ErrUnknownMaterial = errors.New("unknown material")

var materialNames = [materialCount]string{
	Empty:      "empty",
	Sand:       "sand",
	Water:      "water",
	Dirt:       "dirt",
	Seed:       "seed",
	Grass:      "grass",
	Kelp:       "kelp",
	Wall:       "wall",
	Moss:       "moss",
	Cloud:      "cloud",
	Egg:        "egg",
	Frog:       "frog",
	Tadpole:    "tadpole",
	Isopod:     "isopod",
	Minnow:     "minnow",
	Snail:      "snail",
	SpringTail: "springtail",
	ScreenEdge: "edge",
}

func (m Material) String() string {
	if m < materialCount {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// ParseMaterial resolves a case-insensitive material name.
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range materialNames {
		if n == name {
			return Material(m), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// Reserved reports whether m has no behaviour and no default state of its
// own. Reserved materials are created as Empty.
func (m Material) Reserved() bool {
	switch m {
	case Moss, Cloud, Frog, Tadpole, Isopod, Snail, SpringTail:
		return true
	}
	return m >= materialCount
}

// Phase is an informational classification of a material.
type Phase uint8

const (
	Solid Phase = iota
	Granular
	Liquid
	Gas
)

func (p Phase) String() string {
	switch p {
	case Solid:
		return "solid"
	case Granular:
		return "granular"
	case Liquid:
		return "liquid"
	default:
		return "gas"
	}
}

// Cell is the state of one grid position.
type Cell struct {
	Material Material
	Phase    Phase
	// Updated is compared against the board parity; equal means the cell
	// was already handled in the current sweep.
	Updated  bool
	Moisture uint8
	Hunger   uint8
	Growth   uint8
	Facing   bool
}

var (
	defaultMu  sync.Mutex
	defaultRNG = core.NewRNG(0x5eed)
)

// NewCell returns a fresh cell of material m. Water facing is drawn from a
// shared package-level source, so NewCell is safe for concurrent use. Boards
// use NewCellRand with their own RNG so runs stay reproducible.
func NewCell(m Material) Cell {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return NewCellRand(m, defaultRNG)
}

// NewCellRand returns a fresh cell of material m, drawing any random
// defaults from rng.
func NewCellRand(m Material, rng *core.RNG) Cell {
	if m.Reserved() {
		return Cell{Material: Empty, Phase: Gas}
	}
	c := Cell{Material: m}
	switch m {
	case Empty:
		c.Phase = Gas
	case Sand, Dirt, Seed, Egg, Minnow:
		c.Phase = Granular
	case Water:
		c.Phase = Liquid
		c.Moisture = 255
		c.Facing = rng.Bool()
	case Grass, Kelp, Wall, ScreenEdge:
		c.Phase = Solid
	}
	return c
}

// ToggleFacing flips the lateral direction bit.
func (c *Cell) ToggleFacing() { c.Facing = !c.Facing }

// IsEmpty reports whether the cell holds no particle.
func (c Cell) IsEmpty() bool { return c.Material == Empty }

// dir converts the facing bit to an x step: true is right.
func (c Cell) dir() int {
	if c.Facing {
		return 1
	}
	return -1
}
