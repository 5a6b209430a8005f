package workload

import (
	"math/rand/v2"
	"slices"
	"strings"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Word lengths used by the generators. Short list words make many words
// share an alphagram; longer set words keep the set easy to fill.
const (
	ListWordLength = 2
	SetWordLength  = 5
)

// RandomWord returns a random alphabetic string of length n.
func RandomWord(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.IntN(len(letters))]
	}

	return string(b)
}

// WordList returns count random words of ListWordLength, duplicates allowed.
func WordList(rng *rand.Rand, count int) []string {
	words := make([]string, count)
	for i := range words {
		words[i] = RandomWord(rng, ListWordLength)
	}

	return words
}

// WordSet returns count distinct random words of SetWordLength.
func WordSet(rng *rand.Rand, count int) map[string]struct{} {
	words := make(map[string]struct{}, count)
	for len(words) < count {
		words[RandomWord(rng, SetWordLength)] = struct{}{}
	}

	return words
}

// Alphagram returns the letters of word lowercased and sorted. Anagrams share
// an alphagram.
func Alphagram(word string) string {
	r := []rune(strings.ToLower(word))
	slices.Sort(r)

	return string(r)
}
