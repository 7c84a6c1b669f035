package roomname

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := Generate()
		if len(name) != 4 && len(name) != 6 {
			t.Fatalf("Generate() = %q, want 4 or 6 characters", name)
		}
		for j, ch := range name {
			set := consonants
			if j%2 == 1 {
				set = vowels
			}
			if !strings.ContainsRune(set, ch) {
				t.Fatalf("Generate() = %q, char %d breaks the consonant-vowel pattern", name, j)
			}
		}
	}
}
