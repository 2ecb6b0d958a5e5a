// internal/words/words.go
//
// Secret word selection and per-language word catalogs.
//
// Responsibilities:
//   - PickWord: draw one SecretWord uniformly from an in-memory list.
//   - Catalog: hold one raw word list per Language, loaded from files
//     or from the embedded defaults.
//
// Word list files:
//   - One word per line; surrounding whitespace is trimmed.
//   - Blank lines and lines starting with '#' are ignored.
//   - Words with characters outside the language's alphabet are dropped.
//
// A configured file that cannot be read leaves that language without a
// list. Picking from it fails with ErrEmptyWordList; nothing is invented.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand/v2"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmptyWordList is returned when no word can be produced from a list.
var ErrEmptyWordList = errors.New("words: word list is empty")

// SecretWord is the uppercase word a player has to guess.
type SecretWord string

// Runes returns the characters of the word by position.
func (w SecretWord) Runes() []rune { return []rune(string(w)) }

// Len is the number of characters (not bytes) in the word.
func (w SecretWord) Len() int { return utf8.RuneCountInString(string(w)) }

func (w SecretWord) String() string { return string(w) }

// Source is a source of uniform random integers in [0, n).
// *math/rand/v2.Rand satisfies it, which makes draws reproducible in tests.
type Source interface {
	IntN(n int) int
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return mrand.IntN(n)
	}
	return int(nBig.Int64())
}

// CryptoSource draws from crypto/rand. It is the default Source.
var CryptoSource Source = cryptoSource{}

// PickWord selects a word uniformly among the non-empty entries of list and
// returns it uppercased. A nil src uses CryptoSource.
func PickWord(list []string, src Source) (SecretWord, error) {
	candidates := make([]string, 0, len(list))
	for _, w := range list {
		if w = strings.TrimSpace(w); w != "" {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", ErrEmptyWordList
	}
	if src == nil {
		src = CryptoSource
	}
	return SecretWord(strings.ToUpper(candidates[src.IntN(len(candidates))])), nil
}

// Catalog holds the raw word list of each language.
type Catalog struct {
	lists map[Language][]string
}

// NewCatalog builds a catalog from in-memory lists. Entries are normalized
// the same way file contents are.
func NewCatalog(lists map[Language][]string) *Catalog {
	c := &Catalog{lists: make(map[Language][]string, len(lists))}
	for lang, raw := range lists {
		if raw == nil {
			continue
		}
		c.lists[lang] = normalize(raw, lang.Alphabet())
	}
	return c
}

// LoadCatalog reads the word file configured for each language in paths.
// Languages without a path use the embedded default list.
func LoadCatalog(paths map[Language]string) *Catalog {
	c := &Catalog{lists: make(map[Language][]string)}
	for _, lang := range Languages() {
		var (
			raw []string
			err error
		)
		if p := paths[lang]; p != "" {
			raw, err = readWordFile(p)
		} else {
			raw, err = embedded(lang)
		}
		if err != nil {
			log.Warn().Err(err).Str("language", lang.String()).Str("path", paths[lang]).
				Msg("word list unavailable")
			continue
		}
		c.lists[lang] = normalize(raw, lang.Alphabet())
	}
	return c
}

// List returns the words of lang, or nil if the language has no list.
func (c *Catalog) List(lang Language) []string {
	return c.lists[lang]
}

// Pick draws a SecretWord for lang.
func (c *Catalog) Pick(lang Language, src Source) (SecretWord, error) {
	return PickWord(c.List(lang), src)
}

// Stats returns the number of loaded words per language.
func (c *Catalog) Stats() map[Language]int {
	out := make(map[Language]int, len(Languages()))
	for _, lang := range Languages() {
		out[lang] = len(c.lists[lang])
	}
	return out
}

func embedded(lang Language) ([]string, error) {
	if lang == Finnish {
		return assets.FinnishWords()
	}
	return assets.EnglishWords()
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize trims entries and keeps those spelled entirely in alpha.
func normalize(raw []string, alpha Alphabet) []string {
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !alpha.Covers(SecretWord(strings.ToUpper(w))) {
			continue
		}
		out = append(out, w)
	}
	return out
}
