package editdistance

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Algorithm selects the string metric used by StringsSimilarity.
type Algorithm int

const (
	// AlgoLevenshtein is 1 - distance/maxLen, computed by this package.
	AlgoLevenshtein Algorithm = iota
	// AlgoDamerauLevenshtein allows transpositions of adjacent symbols.
	AlgoDamerauLevenshtein
	// AlgoOSA is the optimal string alignment variant of Damerau–Levenshtein.
	AlgoOSA
	// AlgoLCS scores by longest common subsequence.
	AlgoLCS
	// AlgoHamming requires equal-length inputs.
	AlgoHamming
	// AlgoJaro is the Jaro similarity.
	AlgoJaro
	// AlgoJaroWinkler boosts Jaro for common prefixes.
	AlgoJaroWinkler
	// AlgoCosine compares bigram vectors.
	AlgoCosine
	// AlgoJaccard compares bigram sets.
	AlgoJaccard
	// AlgoSorensenDice compares bigram sets with the Dice coefficient.
	AlgoSorensenDice
	// AlgoQgram compares q-gram profiles.
	AlgoQgram
)

var algorithmNames = map[Algorithm]string{
	AlgoLevenshtein:        "levenshtein",
	AlgoDamerauLevenshtein: "damerau-levenshtein",
	AlgoOSA:                "osa",
	AlgoLCS:                "lcs",
	AlgoHamming:            "hamming",
	AlgoJaro:               "jaro",
	AlgoJaroWinkler:        "jaro-winkler",
	AlgoCosine:             "cosine",
	AlgoJaccard:            "jaccard",
	AlgoSorensenDice:       "sorensen-dice",
	AlgoQgram:              "qgram",
}

// edlibAlgorithms maps every metric except AlgoLevenshtein onto go-edlib.
var edlibAlgorithms = map[Algorithm]edlib.Algorithm{
	AlgoDamerauLevenshtein: edlib.DamerauLevenshtein,
	AlgoOSA:                edlib.OSADamerauLevenshtein,
	AlgoLCS:                edlib.Lcs,
	AlgoHamming:            edlib.Hamming,
	AlgoJaro:               edlib.Jaro,
	AlgoJaroWinkler:        edlib.JaroWinkler,
	AlgoCosine:             edlib.Cosine,
	AlgoJaccard:            edlib.Jaccard,
	AlgoSorensenDice:       edlib.SorensenDice,
	AlgoQgram:              edlib.Qgram,
}

// String returns the canonical name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a case-insensitive algorithm name such as
// "levenshtein" or "jaro-winkler". Underscores are accepted for dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for algo, n := range algorithmNames {
		if n == key {
			return algo, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Similarity returns 1 - Strings(a, b)/max(runes(a), runes(b)), a score in
// [0,1] where 1 means identical. Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Strings(a, b))/float64(maxLen)
}

// StringsSimilarity scores a and b in [0,1] with the chosen metric.
// AlgoLevenshtein uses Similarity; the other metrics are delegated to
// go-edlib, whose errors (e.g. Hamming on unequal lengths) are wrapped.
func StringsSimilarity(a, b string, algo Algorithm) (float64, error) {
	if algo == AlgoLevenshtein {
		return Similarity(a, b), nil
	}

	ea, ok := edlibAlgorithms[algo]
	if !ok {
		return 0, fmt.Errorf("%w (%d)", ErrUnknownAlgorithm, int(algo))
	}

	score, err := edlib.StringsSimilarity(a, b, ea)
	if err != nil {
		return 0, fmt.Errorf("editdistance: %s similarity: %w", algo, err)
	}

	return float64(score), nil
}
