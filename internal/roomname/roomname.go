// Package roomname generates short pronounceable room identifiers for the
// root-path redirect, e.g. "zebo" or "kavilu".
package roomname

import "math/rand"

const (
	consonants = "bcdfghjklmnpqrstvwxyz"
	vowels     = "aeiou"
)

// Generate returns a random word of 2 or 3 consonant-vowel pairs.
func Generate() string {
	pairs := 2 + rand.Intn(2)
	word := make([]byte, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		word = append(word, consonants[rand.Intn(len(consonants))])
		word = append(word, vowels[rand.Intn(len(vowels))])
	}
	return string(word)
}
