package editdistance_test

import (
	"testing"

	"github.com/katalvlaran/lvseq"
	"github.com/katalvlaran/lvseq/editdistance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"hello", "hello", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"abc", "ab", 1.0 - 1.0/3.0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, editdistance.Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestStringsSimilarity_Algorithms(t *testing.T) {
	for algo := editdistance.AlgoLevenshtein; algo <= editdistance.AlgoQgram; algo++ {
		t.Run(algo.String(), func(t *testing.T) {
			score, err := editdistance.StringsSimilarity("reconcile", "reconcile", algo)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, score, 1e-6, "identical strings score 1")

			score, err = editdistance.StringsSimilarity("martha", "marhta", algo)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestStringsSimilarity_JaroWinklerPrefersPrefix(t *testing.T) {
	jw, err := editdistance.StringsSimilarity("martha", "marhta", editdistance.AlgoJaroWinkler)
	require.NoError(t, err)
	j, err := editdistance.StringsSimilarity("martha", "marhta", editdistance.AlgoJaro)
	require.NoError(t, err)
	assert.Greater(t, jw, j)
}

func TestStringsSimilarity_Errors(t *testing.T) {
	_, err := editdistance.StringsSimilarity("abc", "abcd", editdistance.AlgoHamming)
	assert.Error(t, err, "hamming is undefined for unequal lengths")

	_, err = editdistance.StringsSimilarity("a", "b", editdistance.Algorithm(99))
	assert.ErrorIs(t, err, editdistance.ErrUnknownAlgorithm)
	assert.ErrorIs(t, err, lvseq.ErrInvalidArgument)
}

func TestParseAlgorithm(t *testing.T) {
	algo, err := editdistance.ParseAlgorithm(" Jaro_Winkler ")
	require.NoError(t, err)
	assert.Equal(t, editdistance.AlgoJaroWinkler, algo)

	for algo := editdistance.AlgoLevenshtein; algo <= editdistance.AlgoQgram; algo++ {
		got, err := editdistance.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}

	_, err = editdistance.ParseAlgorithm("soundex")
	assert.ErrorIs(t, err, editdistance.ErrUnknownAlgorithm)
}
