// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Start a session from a SecretWord, a language and a life budget.
//   - Validate letters against the language alphabet and apply guesses.
//   - Derive the outcome after every guess: win is checked before loss.
//   - Reject every guess once the session is won or lost.
//
// State transitions:
//
//	in_progress --guess, repeated letter--> in_progress (AlreadyGuessed)
//	in_progress --guess, last hidden letter--> won
//	in_progress --guess, wrong count reaches budget--> lost
//	won | lost  --guess--> ErrSessionTerminated, nothing changes
//
// A Session is owned by one caller and is not safe for concurrent use.
// A new game always gets a new Session.
package game

import (
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/words"
)

// DefaultLifeBudget matches the six hanged-man illustrations of the classic board.
const DefaultLifeBudget = 6

// Session is the state machine layered over GuessState.
type Session struct {
	ID        string
	Language  words.Language
	StartedAt time.Time

	alphabet words.Alphabet
	state    *GuessState
	outcome  Outcome
}

// StartNew constructs a session in progress.
// The word must be non-empty and spelled in the language's alphabet.
func StartNew(word words.SecretWord, lang words.Language, lifeBudget int) (*Session, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: language %d", ErrInvalidInput, lang)
	}
	alpha := lang.Alphabet()
	if !alpha.Covers(word) {
		return nil, fmt.Errorf("%w: %q is not spelled in the %s alphabet", ErrInvalidInput, word, lang)
	}
	st, err := NewGuessState(word, lifeBudget)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.NewString(),
		Language:  lang,
		StartedAt: time.Now().UTC(),
		alphabet:  alpha,
		state:     st,
		outcome:   InProgress,
	}, nil
}

// SubmitGuess applies one letter guess. Lowercase letters are accepted.
//
// Errors:
//   - ErrSessionTerminated if the session is already won or lost.
//   - ErrInvalidInput if the letter is not in the alphabet.
//
// On error the session is left untouched.
func (s *Session) SubmitGuess(letter rune) (Turn, error) {
	if s.outcome.Terminal() {
		return Turn{}, ErrSessionTerminated
	}
	letter = unicode.ToUpper(letter)
	if !s.alphabet.Contains(letter) {
		return Turn{}, fmt.Errorf("%w: %q is not a guessable letter", ErrInvalidInput, letter)
	}

	res := s.state.ApplyGuess(letter)
	s.outcome = s.evaluateOutcome()
	return Turn{Outcome: s.outcome, Result: res, View: s.CurrentView()}, nil
}

// evaluateOutcome recomputes the outcome from the guess state.
func (s *Session) evaluateOutcome() Outcome {
	switch {
	case s.state.IsWordFullyRevealed():
		return Won
	case s.state.IsLivesExhausted():
		return Lost
	}
	return InProgress
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// WrongCount returns the number of wrong guesses so far.
func (s *Session) WrongCount() int { return s.state.WrongCount() }

// Word returns the secret word. Callers must not show it while the session is in progress.
func (s *Session) Word() words.SecretWord { return s.state.Secret() }

// CurrentView returns a read-only snapshot of the session.
func (s *Session) CurrentView() View {
	masked, revealed := s.state.Mask()
	letters := make([]LetterState, 0, s.alphabet.Len())
	for _, l := range s.alphabet.Letters() {
		st := Unguessed
		if tried, hit := s.state.Guessed(l); tried {
			st = WrongGuess
			if hit {
				st = CorrectGuess
			}
		}
		letters = append(letters, LetterState{Letter: string(l), Status: st})
	}

	v := View{
		Masked:     masked,
		Revealed:   revealed,
		Length:     s.state.Secret().Len(),
		WrongCount: s.state.WrongCount(),
		LifeBudget: s.state.LifeBudget(),
		LivesLeft:  s.state.LifeBudget() - s.state.WrongCount(),
		Stage:      s.state.WrongCount(),
		Letters:    letters,
		Outcome:    s.outcome,
		Language:   s.Language,
	}
	if s.outcome.Terminal() {
		v.Word = s.state.Secret().String()
	}
	return v
}
