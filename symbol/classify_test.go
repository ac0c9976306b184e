package symbol_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexigrid/symbol"
)

// rows joins slash-separated rows into a newline-separated pattern.
func rows(s string) string {
	return strings.ReplaceAll(s, "/", "\n")
}

func TestClassify_Fixtures(t *testing.T) {
	cases := []struct {
		pattern string
		want    symbol.Category
	}{
		{"#####/#   #/# # #/#   #/#####", symbol.Category{Kind: symbol.ParticleCollate}},
		{"#####/  # #/#   #/# #  /#####", symbol.Category{Kind: symbol.Noun, Islands: 2, Depth: 0}},
		{" ####/##  #/# # #/#  ##/#### ", symbol.Category{Kind: symbol.Noun, Islands: 2, Depth: 1}},
		{"# ###/#    /# ###/#   #/#####", symbol.Category{Kind: symbol.Verb, Islands: 2, Depth: 0}},
		{"#####/#   #/# # #/    #/#####", symbol.Category{Kind: symbol.Verb, Islands: 2, Depth: 1}},
		{"## ##/#   #/#####/#   #/## ##", symbol.Category{Kind: symbol.Noun, Islands: 1, Depth: 0}},
		{"#####/#   #/#   #/#   #/#####", symbol.Category{Kind: symbol.ParticleStart}},
	}
	for idx, tc := range cases {
		sym, err := symbol.Parse(rows(tc.pattern))
		require.NoError(t, err, "testing idx %d", idx)
		assert.Equal(t, tc.want, sym.Category, "testing idx %d:\n%s", idx, rows(tc.pattern))
	}
}

func TestClassify_Sentinels(t *testing.T) {
	assert.Equal(t, symbol.Category{Kind: symbol.ParticleStart}, symbol.Classify(symbol.StartCode))
	assert.Equal(t, symbol.Category{Kind: symbol.ParticleCollate}, symbol.Classify(symbol.CollateCode))
	// Bits above the bitmap are ignored, including for sentinels.
	assert.Equal(t, symbol.Category{Kind: symbol.ParticleStart}, symbol.Classify(symbol.StartCode|1<<30))
}

func TestClassify_EmptyAndFull(t *testing.T) {
	assert.Equal(t, symbol.Category{Kind: symbol.Noun}, symbol.Classify(0))
	assert.Equal(t, symbol.Category{Kind: symbol.Noun, Islands: 1}, symbol.Classify(symbol.Mask))
}

func TestClassify_SinglePixels(t *testing.T) {
	// Center dot: symmetric, one singleton island.
	assert.Equal(t, symbol.Category{Kind: symbol.Noun, Islands: 1, Depth: 1}, symbol.Classify(1<<12))
	// Top-left dot: not symmetric.
	assert.Equal(t, symbol.Category{Kind: symbol.Verb, Islands: 1, Depth: 1}, symbol.Classify(1))
	// Opposite corners: symmetric, two singletons.
	assert.Equal(t, symbol.Category{Kind: symbol.Noun, Islands: 2, Depth: 2}, symbol.Classify(1|1<<24))
	// Diagonal neighbours are not connected.
	assert.Equal(t, symbol.Category{Kind: symbol.Verb, Islands: 2, Depth: 2}, symbol.Classify(1|1<<6))
}

// TestClassify_Properties samples codes and checks determinism, the
// depth ≤ islands bound, and that a half-turn never changes the kind.
func TestClassify_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		code := r.Uint32() & symbol.Mask
		got := symbol.Classify(code)
		if again := symbol.Classify(code); again != got {
			t.Fatalf("Classify(%#x) not deterministic: %v vs %v", code, got, again)
		}
		if got.IsParticle() {
			continue
		}
		if got.Depth > got.Islands {
			t.Fatalf("Classify(%#x) = %v: depth exceeds islands", code, got)
		}
		if got.Islands > symbol.Cells/2+1 {
			t.Fatalf("Classify(%#x) = %v: too many islands", code, got)
		}
		if rot := symbol.Classify(halfTurn(code)); rot != got {
			t.Fatalf("half-turn of %#x classified %v; want %v", code, rot, got)
		}
	}
}

// halfTurn rotates a code by 180° about the bitmap center.
func halfTurn(code uint32) uint32 {
	var out uint32
	for i := 0; i < symbol.Cells; i++ {
		if code&(1<<i) != 0 {
			out |= 1 << (symbol.Cells - 1 - i)
		}
	}
	return out
}
