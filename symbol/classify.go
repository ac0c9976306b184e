package symbol

import (
	"github.com/boljen/go-bitmap"

	"github.com/katalvlaran/lexigrid/gridgraph"
)

// Classify maps a code to its Category. Bits above Mask are ignored.
// It is pure and total over every uint32.
//
// Complexity: O(Cells).
func Classify(code uint32) Category {
	code &= Mask
	switch code {
	case StartCode:
		return Category{Kind: ParticleStart}
	case CollateCode:
		return Category{Kind: ParticleCollate}
	}

	px := pixels(code)

	// Cell i maps to Cells-1-i under a half turn about the center.
	kind := Noun
	for i := 0; i < Cells/2; i++ {
		if px.Get(i) != px.Get(Cells-1-i) {
			kind = Verb
			break
		}
	}

	rows := make([][]int, Side)
	for y := range rows {
		rows[y] = make([]int, Side)
		for x := range rows[y] {
			if px.Get(y*Side + x) {
				rows[y][x] = 1
			}
		}
	}
	gg, _ := gridgraph.From2D(rows, gridgraph.Conn4) // never empty or ragged

	var islands, singles uint8
	for _, comp := range gg.ConnectedComponents() {
		islands++
		if len(comp) == 1 {
			singles++
		}
	}

	return Category{Kind: kind, Islands: islands, Depth: singles}
}

// pixels unpacks the low Cells bits of code into a bitmap.
func pixels(code uint32) bitmap.Bitmap {
	px := bitmap.New(Cells)
	for i := 0; i < Cells; i++ {
		if code&(1<<i) != 0 {
			px.Set(i, true)
		}
	}
	return px
}
