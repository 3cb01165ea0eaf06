package editdistance_test

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	"github.com/hbollon/go-edlib"
	"github.com/katalvlaran/lvseq"
	"github.com/katalvlaran/lvseq/editdistance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStrings_Table covers literal cases, including the classic pairs.
func TestStrings_Table(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"abc", "ab", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"Hello", "hello", 1},
		{"héllo", "hello", 1}, // counted in runes, not bytes
		{"日本語", "日本", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, editdistance.Strings(tt.a, tt.b))
			assert.Equal(t, tt.want, editdistance.Strings(tt.b, tt.a), "symmetry")
		})
	}
}

// TestDistance_GenericSymbols runs the DP over non-rune symbols.
func TestDistance_GenericSymbols(t *testing.T) {
	a := []string{"select", "id", "from", "users"}
	b := []string{"select", "id", "name", "from", "accounts"}
	assert.Equal(t, 2, editdistance.Distance(a, b), "one insertion + one substitution")

	assert.Equal(t, 0, editdistance.Distance([]int(nil), []int{}))
	assert.Equal(t, 4, editdistance.Distance([]int{1, 2, 3, 4}, nil))
}

// TestDistance_Properties checks identity, symmetry, the empty-prefix rule and
// the triangle inequality on deterministic pseudo-random strings.
func TestDistance_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	words := make([]string, 40)
	for i := range words {
		words[i] = randomWord(rng, 0, 9)
	}

	for _, s := range words {
		assert.Equal(t, 0, editdistance.Strings(s, s), "d(s,s)=0 for %q", s)
		assert.Equal(t, len([]rune(s)), editdistance.Strings("", s), "d('',s)=len(s) for %q", s)
	}
	for i := 0; i+2 < len(words); i++ {
		s, u, v := words[i], words[i+1], words[i+2]
		assert.Equal(t, editdistance.Strings(s, u), editdistance.Strings(u, s), "symmetry %q %q", s, u)
		assert.LessOrEqual(t,
			editdistance.Strings(s, v),
			editdistance.Strings(s, u)+editdistance.Strings(u, v),
			"triangle %q %q %q", s, u, v)
	}
}

// TestStrings_AgreesWithEdlib uses go-edlib as an independent oracle.
func TestStrings_AgreesWithEdlib(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 200; i++ {
		a, b := randomWord(rng, 0, 12), randomWord(rng, 0, 12)
		require.Equal(t, edlib.LevenshteinDistance(a, b), editdistance.Strings(a, b), "%q vs %q", a, b)
	}
}

// TestDistanceFunc_CaseInsensitive plugs a custom symbol equality.
func TestDistanceFunc_CaseInsensitive(t *testing.T) {
	fold := func(a, b rune) bool { return unicode.ToLower(a) == unicode.ToLower(b) }

	d, err := editdistance.DistanceFunc([]rune("CustomerID"), []rune("customerid"), fold)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	d, err = editdistance.DistanceFunc([]rune("Kitten"), []rune("SITTING"), fold)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

// TestDistanceFunc_NilEquality verifies the invalid-argument path.
func TestDistanceFunc_NilEquality(t *testing.T) {
	_, err := editdistance.DistanceFunc([]int{1}, []int{2}, nil)
	assert.ErrorIs(t, err, editdistance.ErrNilEquality)
	assert.ErrorIs(t, err, lvseq.ErrInvalidArgument)
}

// TestLevenshtein_Options verifies option validation.
func TestLevenshtein_Options(t *testing.T) {
	opts := editdistance.DefaultOptions()
	opts.MemoryMode = editdistance.TwoRows
	opts.ReturnScript = true
	_, _, err := editdistance.Levenshtein([]rune("a"), []rune("b"), &opts)
	assert.ErrorIs(t, err, editdistance.ErrScriptNeedsMatrix)

	opts = editdistance.Options{MemoryMode: editdistance.MemoryMode(42)}
	_, _, err = editdistance.Levenshtein([]rune("a"), []rune("b"), &opts)
	assert.ErrorIs(t, err, editdistance.ErrBadMemoryMode)
	assert.ErrorIs(t, err, lvseq.ErrInvalidArgument)

	d, script, err := editdistance.Levenshtein([]rune("kitten"), []rune("sitting"), nil)
	require.NoError(t, err, "nil opts means defaults")
	assert.Equal(t, 3, d)
	assert.Nil(t, script, "default ReturnScript=false should yield nil script")
}

// TestLevenshtein_TwoRowsMatchesFullMatrix compares both memory modes.
func TestLevenshtein_TwoRowsMatchesFullMatrix(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	full := editdistance.DefaultOptions()
	rows := editdistance.Options{MemoryMode: editdistance.TwoRows}

	for i := 0; i < 100; i++ {
		a, b := []rune(randomWord(rng, 0, 10)), []rune(randomWord(rng, 0, 15))
		d1, _, err := editdistance.Levenshtein(a, b, &full)
		require.NoError(t, err)
		d2, path, err := editdistance.Levenshtein(a, b, &rows)
		require.NoError(t, err)
		require.Equal(t, d1, d2, "%q vs %q", string(a), string(b))
		assert.Nil(t, path)
	}
}

// TestLevenshtein_Script verifies that the script replays source into target
// and that its cost equals the distance.
func TestLevenshtein_Script(t *testing.T) {
	opts := editdistance.DefaultOptions()
	opts.ReturnScript = true

	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"abc", ""},
		{"", ""},
		{"same", "same"},
		{"intention", "execution"},
	}
	for _, p := range pairs {
		t.Run(p[0]+"_"+p[1], func(t *testing.T) {
			src, dst := []rune(p[0]), []rune(p[1])
			d, script, err := editdistance.Levenshtein(src, dst, &opts)
			require.NoError(t, err)
			require.NotNil(t, script)

			assert.Equal(t, string(dst), string(replay(src, dst, script)))
			assert.Equal(t, d, cost(script))
			assert.Equal(t, editdistance.Distance(src, dst), d)
		})
	}
}

// TestLevenshtein_ScriptShape pins the exact script for a small case.
func TestLevenshtein_ScriptShape(t *testing.T) {
	opts := editdistance.Options{ReturnScript: true}
	_, script, err := editdistance.Levenshtein([]rune("ab"), []rune("b"), &opts)
	require.NoError(t, err)
	assert.Equal(t, []editdistance.Edit{
		{Op: editdistance.Delete, SourceIndex: 0, TargetIndex: 0},
		{Op: editdistance.Keep, SourceIndex: 1, TargetIndex: 0},
	}, script)
	assert.Equal(t, "delete(0,0)", script[0].String())
}

func replay[E any](source, target []E, script []editdistance.Edit) []E {
	out := make([]E, 0, len(target))
	for _, e := range script {
		switch e.Op {
		case editdistance.Keep:
			out = append(out, source[e.SourceIndex])
		case editdistance.Substitute, editdistance.Insert:
			out = append(out, target[e.TargetIndex])
		case editdistance.Delete:
		}
	}

	return out
}

func cost(script []editdistance.Edit) int {
	n := 0
	for _, e := range script {
		if e.Op != editdistance.Keep {
			n++
		}
	}

	return n
}

// randomWord draws a word over a tiny alphabet so that matches are frequent.
func randomWord(rng *rand.Rand, minLen, maxLen int) string {
	const alphabet = "abcé"
	letters := []rune(alphabet)
	n := minLen + rng.IntN(maxLen-minLen+1)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(letters[rng.IntN(len(letters))])
	}

	return sb.String()
}
