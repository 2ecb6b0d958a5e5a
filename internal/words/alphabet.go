// internal/words/alphabet.go
//
// Languages and their guessable alphabets.
//
//   - English: A–Z
//   - Finnish: A–Z plus Ä and Ö
//
// An Alphabet is ordered (the order the letter buttons are laid out in) and
// immutable once built.

package words

import (
	"fmt"
	"strconv"
	"strings"
)

const latinLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an ordered, immutable set of guessable uppercase letters.
type Alphabet struct {
	letters []rune
}

// NewAlphabet builds an Alphabet from the runes of s, uppercased, keeping the
// first occurrence of each letter.
func NewAlphabet(s string) Alphabet {
	seen := make(map[rune]struct{}, len(s))
	letters := make([]rune, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		letters = append(letters, r)
	}
	return Alphabet{letters: letters}
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, l := range a.letters {
		if l == r {
			return true
		}
	}
	return false
}

// Covers reports whether every character of w belongs to the alphabet.
func (a Alphabet) Covers(w SecretWord) bool {
	for _, r := range string(w) {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}

// Letters returns a copy of the letters in display order.
func (a Alphabet) Letters() []rune {
	out := make([]rune, len(a.letters))
	copy(out, a.letters)
	return out
}

func (a Alphabet) Len() int { return len(a.letters) }

func (a Alphabet) String() string { return string(a.letters) }

// Language selects a word list and its alphabet.
// The numeric values match the language slider of the menu (0 = English, 1 = Finnish).
type Language int

const (
	English Language = iota
	Finnish
)

var (
	englishAlphabet = NewAlphabet(latinLetters)
	finnishAlphabet = NewAlphabet(latinLetters + "ÄÖ")
)

// Languages lists every supported language in index order.
func Languages() []Language { return []Language{English, Finnish} }

// Valid reports whether l is a supported language.
func (l Language) Valid() bool { return l == English || l == Finnish }

// Alphabet returns the guessable letters for l.
func (l Language) Alphabet() Alphabet {
	if l == Finnish {
		return finnishAlphabet
	}
	return englishAlphabet
}

// String returns the short language code ("en" / "fi").
func (l Language) String() string {
	switch l {
	case English:
		return "en"
	case Finnish:
		return "fi"
	}
	return "lang(" + strconv.Itoa(int(l)) + ")"
}

// ParseLanguage accepts a language index ("0", "1"), code or name.
// An empty string selects English.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "en", "eng", "english":
		return English, nil
	case "1", "fi", "fin", "finnish", "suomi":
		return Finnish, nil
	}
	return English, fmt.Errorf("words: unknown language %q", s)
}
