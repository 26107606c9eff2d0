package sand

import (
	"errors"
	"fmt"
	"strings"
)

// Scene is a preset starting layout.
type Scene uint8

const (
	SceneEmpty Scene = iota
	// SceneFirstTen places sand in the first ten cells of the top row.
	SceneFirstTen
	// SceneMiddle fills the middle row with sand.
	SceneMiddle
	// SceneRandom fills half of all cells with sand at random.
	SceneRandom
	// SceneRandomTop does the same for the upper half only.
	SceneRandomTop
	// SceneRandomOcean is mostly water with scattered sand above a dry bottom tenth.
	SceneRandomOcean
	// SceneOcean is water over a thin sand bed.
	SceneOcean
	// SceneBeach is a thin sand bed and nothing else.
	SceneBeach
)

// ErrUnknownScene is returned by ParseScene for unrecognised names.
var ErrUnknownScene = errors.New("unknown scene")

var sceneNames = []string{
	SceneEmpty:       "empty",
	SceneFirstTen:    "first-ten",
	SceneMiddle:      "middle",
	SceneRandom:      "random",
	SceneRandomTop:   "random-top",
	SceneRandomOcean: "random-ocean",
	SceneOcean:       "ocean",
	SceneBeach:       "beach",
}

func (s Scene) String() string {
	if int(s) < len(sceneNames) {
		return sceneNames[s]
	}
	return fmt.Sprintf("scene(%d)", uint8(s))
}

// SceneNames lists every scene name in declaration order.
func SceneNames() []string {
	return append([]string(nil), sceneNames...)
}

// ParseScene resolves a scene name. Underscores are accepted in place of
// dashes.
func ParseScene(name string) (Scene, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range sceneNames {
		if n == key {
			return Scene(i), nil
		}
	}
	return SceneEmpty, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Fill resets the board and paints scene onto it.
func (b *Board) Fill(scene Scene) {
	b.Reset()
	h := b.height
	switch scene {
	case SceneFirstTen:
		for i := 0; i < 10 && i < len(b.cells); i++ {
			b.cells[i] = b.fresh(Sand)
		}
	case SceneMiddle:
		b.fillRows(h/2, h/2+1, func() (Material, bool) { return Sand, true })
	case SceneRandom:
		b.fillRows(0, h, func() (Material, bool) { return Sand, b.rng.Float64() > 0.5 })
	case SceneRandomTop:
		b.fillRows(0, h/2, func() (Material, bool) { return Sand, b.rng.Float64() > 0.5 })
	case SceneRandomOcean:
		b.fillRows(0, (h/10)*9, func() (Material, bool) {
			v := b.rng.Float64()
			switch {
			case v > 0.95:
				return Sand, true
			case v > 0.15:
				return Water, true
			}
			return Empty, false
		})
	case SceneOcean:
		bed := (h / 20) * 19
		b.fillRows(0, bed, func() (Material, bool) { return Water, true })
		b.fillRows(bed, h, func() (Material, bool) { return Sand, true })
	case SceneBeach:
		b.fillRows((h/20)*19+1, h, func() (Material, bool) { return Sand, true })
	}
}

// fillRows paints rows [from, to) cell by cell with whatever pick returns.
func (b *Board) fillRows(from, to int, pick func() (Material, bool)) {
	from = max(from, 0)
	to = min(to, b.height)
	for y := from; y < to; y++ {
		for x := 0; x < b.width; x++ {
			if m, ok := pick(); ok {
				b.cells[y*b.width+x] = b.fresh(m)
			}
		}
	}
}
