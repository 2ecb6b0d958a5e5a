// assets/embed.go
//
// Default word lists compiled into the binary. Used when no WORDS_*_FILE
// override is configured.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed english_words.txt finnish_words.txt
var FS embed.FS

// readLines returns the trimmed, non-blank lines of an embedded file.
// Lines starting with '#' are comments.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func EnglishWords() ([]string, error) {
	return readLines("english_words.txt")
}

func FinnishWords() ([]string, error) {
	return readLines("finnish_words.txt")
}
