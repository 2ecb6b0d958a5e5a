// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Outcome: in_progress / won / lost classification of a session.
//   - ResultKind + GuessResult: what a single guess did.
//   - LetterStatus: per-letter button state.
//   - View: read-only snapshot handed to the presentation layer.

package game

import (
	"errors"

	"github.com/robalobadob/hangman/internal/words"
)

var (
	// ErrSessionTerminated is returned when a guess arrives after the session was won or lost.
	ErrSessionTerminated = errors.New("game: session terminated")
	// ErrInvalidInput is returned for letters outside the alphabet and malformed session setup.
	ErrInvalidInput = errors.New("game: invalid input")
)

// Outcome is derived from the reveal mask and wrong count after every guess.
type Outcome string

const (
	InProgress Outcome = "in_progress"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o == Won || o == Lost }

// ResultKind classifies a single guess.
type ResultKind string

const (
	AlreadyGuessed ResultKind = "already_guessed"
	Correct        ResultKind = "correct"
	Incorrect      ResultKind = "incorrect"
)

// GuessResult is returned by GuessState.ApplyGuess.
// Positions holds the word indices revealed by a Correct guess.
type GuessResult struct {
	Kind      ResultKind `json:"kind"`
	Letter    string     `json:"letter"`
	Positions []int      `json:"positions,omitempty"`
}

// LetterStatus is the state of one alphabet letter.
type LetterStatus string

const (
	Unguessed    LetterStatus = "unguessed"
	CorrectGuess LetterStatus = "correct"
	WrongGuess   LetterStatus = "wrong"
)

// LetterState pairs a letter with its status, in alphabet order.
type LetterState struct {
	Letter string       `json:"letter"`
	Status LetterStatus `json:"status"`
}

// HiddenChar is shown in place of letters not yet revealed.
const HiddenChar = '_'

// View is a snapshot of a session for rendering.
type View struct {
	Masked     string         `json:"masked"`     // word with hidden letters as '_'
	Revealed   int            `json:"revealed"`   // revealed positions
	Length     int            `json:"length"`     // letters in the word
	WrongCount int            `json:"wrongCount"` // wrong guesses so far
	LifeBudget int            `json:"lifeBudget"`
	LivesLeft  int            `json:"livesLeft"`
	Stage      int            `json:"stage"` // illustration index; LifeBudget is the lost stage
	Letters    []LetterState  `json:"letters"`
	Outcome    Outcome        `json:"outcome"`
	Word       string         `json:"word,omitempty"` // set only once the session is over
	Language   words.Language `json:"language"`
}

// Turn is the result of Session.SubmitGuess.
type Turn struct {
	Outcome Outcome     `json:"outcome"`
	Result  GuessResult `json:"result"`
	View    View        `json:"view"`
}
