// internal/game/state.go
//
// GuessState holds the mutable guessing data of one session: the reveal
// mask, the set of tried letters and the wrong-guess counter. It makes no
// outcome decisions; Session does.

package game

import (
	"fmt"

	"github.com/robalobadob/hangman/internal/words"
)

// GuessState is the data model behind a Session.
type GuessState struct {
	secret     []rune
	revealed   []bool
	guessed    map[rune]bool // letter -> was it in the word
	wrongCount int
	lifeBudget int
}

// NewGuessState starts with every position hidden and no letters tried.
func NewGuessState(secret words.SecretWord, lifeBudget int) (*GuessState, error) {
	if lifeBudget < 1 {
		return nil, fmt.Errorf("%w: life budget %d", ErrInvalidInput, lifeBudget)
	}
	if secret.Len() == 0 {
		return nil, fmt.Errorf("%w: empty secret word", ErrInvalidInput)
	}
	runes := secret.Runes()
	return &GuessState{
		secret:     runes,
		revealed:   make([]bool, len(runes)),
		guessed:    make(map[rune]bool),
		lifeBudget: lifeBudget,
	}, nil
}

// ApplyGuess records letter and reveals every position holding it.
// A repeated letter returns AlreadyGuessed and changes nothing.
func (s *GuessState) ApplyGuess(letter rune) GuessResult {
	res := GuessResult{Letter: string(letter)}
	if _, ok := s.guessed[letter]; ok {
		res.Kind = AlreadyGuessed
		return res
	}

	for i, r := range s.secret {
		if r == letter {
			s.revealed[i] = true
			res.Positions = append(res.Positions, i)
		}
	}
	hit := len(res.Positions) > 0
	s.guessed[letter] = hit
	if hit {
		res.Kind = Correct
		return res
	}
	s.wrongCount++
	res.Kind = Incorrect
	return res
}

// IsWordFullyRevealed reports whether no position is hidden.
func (s *GuessState) IsWordFullyRevealed() bool {
	for _, ok := range s.revealed {
		if !ok {
			return false
		}
	}
	return true
}

// IsLivesExhausted reports whether the wrong count reached the budget.
func (s *GuessState) IsLivesExhausted() bool {
	return s.wrongCount == s.lifeBudget
}

func (s *GuessState) WrongCount() int { return s.wrongCount }

func (s *GuessState) LifeBudget() int { return s.lifeBudget }

// Secret returns the word being guessed.
func (s *GuessState) Secret() words.SecretWord { return words.SecretWord(string(s.secret)) }

// Guessed reports whether letter was tried, and if so whether it was in the word.
func (s *GuessState) Guessed(letter rune) (tried, hit bool) {
	hit, tried = s.guessed[letter]
	return tried, hit
}

// GuessedCount is the number of distinct letters tried.
func (s *GuessState) GuessedCount() int { return len(s.guessed) }

// Mask returns the word with hidden positions replaced by HiddenChar,
// and the number of revealed positions.
func (s *GuessState) Mask() (string, int) {
	out := make([]rune, len(s.secret))
	n := 0
	for i, r := range s.secret {
		if s.revealed[i] {
			out[i] = r
			n++
		} else {
			out[i] = HiddenChar
		}
	}
	return string(out), n
}

// Revealed returns a copy of the reveal mask.
func (s *GuessState) Revealed() []bool {
	out := make([]bool, len(s.revealed))
	copy(out, s.revealed)
	return out
}
