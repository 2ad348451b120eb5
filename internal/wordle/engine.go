// Package wordle implements the guessing-game state machine: turn progression,
// letter feedback against a hidden solution, win/loss detection and keyboard
// status aggregation. It performs no I/O; the platform renders the State it
// returns and forwards input as core.Command values.
package wordle

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/car-wordle/internal/core"
)

// Engine owns the word list and the random source used to pick solutions.
// It holds no per-game state; every game lives in a State value.
type Engine struct {
	words *WordList
	rng   *rand.Rand
}

// NewEngine creates an engine drawing solutions from words.
// A nil src falls back to a time-seeded source.
func NewEngine(words *WordList, src rand.Source) *Engine {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Engine{
		words: words,
		rng:   rand.New(src),
	}
}

// Words returns the engine's word list.
func (e *Engine) Words() *WordList {
	return e.words
}

// Initialize starts a fresh game with a uniformly random solution.
func (e *Engine) Initialize() State {
	solution := e.words.At(e.rng.Intn(e.words.Len()))
	return State{
		ID:       e.newID(),
		Solution: solution,
	}
}

// NewGame starts a fresh game with a fixed solution.
func (e *Engine) NewGame(solution string) (State, error) {
	solution = strings.ToUpper(strings.TrimSpace(solution))
	if !e.words.Contains(solution) {
		return State{}, ErrUnknownWord
	}
	return State{
		ID:       e.newID(),
		Solution: solution,
	}, nil
}

// newID derives a game ID from the engine's random source so seeded engines
// are fully reproducible.
func (e *Engine) newID() string {
	id, err := uuid.NewRandomFromReader(e.rng)
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

// AppendLetter adds r to the current guess.
// Non-letters, a full guess and a finished game are ignored.
func (e *Engine) AppendLetter(s State, r rune) State {
	if s.GameOver || len(s.Guess) >= WordLength {
		return s
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return s
	}
	s.Guess += string(r)
	return s
}

// DeleteLetter removes the last letter of the current guess.
func (e *Engine) DeleteLetter(s State) State {
	if s.GameOver || len(s.Guess) == 0 {
		return s
	}
	s.Guess = s.Guess[:len(s.Guess)-1]
	return s
}

// Submit scores the current guess.
//
// An incomplete guess or a finished game is a no-op with a nil error.
// A complete guess that is not in the word list sets MsgInvalidWord and
// returns ErrInvalidWord; the guess is kept and no attempt is consumed.
func (e *Engine) Submit(s State) (State, error) {
	if s.GameOver || len(s.Guess) != WordLength {
		return s, nil
	}
	if !e.words.Contains(s.Guess) {
		s.Message = MsgInvalidWord
		return s, ErrInvalidWord
	}

	attempt := Attempt{
		Word:   s.Guess,
		Result: Score(s.Guess, s.Solution),
	}

	for i, status := range attempt.Result {
		s.Keyboard.merge(rune(attempt.Word[i]), status)
	}

	// Copy so earlier States keep their own history.
	attempts := make([]Attempt, len(s.Attempts), len(s.Attempts)+1)
	copy(attempts, s.Attempts)
	s.Attempts = append(attempts, attempt)

	s.Guess = ""
	s.Message = ""

	switch {
	case attempt.Solved():
		s.GameOver = true
		s.Won = true
		s.Message = MsgWin
	case len(s.Attempts) >= MaxAttempts:
		s.GameOver = true
		s.Message = FormatLoss(s.Solution)
	}
	return s, nil
}

// Apply runs the engine operation selected by cmd.
// Commands that are not game input leave the state unchanged.
func (e *Engine) Apply(s State, cmd core.Command) (State, error) {
	switch cmd.Kind {
	case core.CmdAppend:
		return e.AppendLetter(s, cmd.Letter), nil
	case core.CmdDelete:
		return e.DeleteLetter(s), nil
	case core.CmdSubmit:
		return e.Submit(s)
	}
	return s, nil
}
