package wordle

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/car-wordle/internal/core"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(DefaultWordList(), rand.NewSource(42))
}

func newTestGame(t *testing.T, e *Engine, solution string) State {
	t.Helper()
	s, err := e.NewGame(solution)
	if err != nil {
		t.Fatalf("NewGame(%q) error = %v", solution, err)
	}
	return s
}

// typeWord appends each letter of w to the current guess.
func typeWord(e *Engine, s State, w string) State {
	for _, r := range w {
		s = e.AppendLetter(s, r)
	}
	return s
}

// guess types w and submits it.
func guess(t *testing.T, e *Engine, s State, w string) State {
	t.Helper()
	s, err := e.Submit(typeWord(e, s, w))
	if err != nil {
		t.Fatalf("Submit(%q) error = %v", w, err)
	}
	return s
}

func TestInitialize(t *testing.T) {
	e := newTestEngine(t)
	s := e.Initialize()

	if !e.Words().Contains(s.Solution) {
		t.Errorf("solution %q is not in the word list", s.Solution)
	}
	if s.ID == "" {
		t.Error("ID is empty")
	}
	if len(s.Attempts) != 0 || s.Guess != "" || s.GameOver || s.Won || s.Message != "" {
		t.Errorf("Initialize() = %+v, expected a fresh game", s)
	}
	if s.Keyboard != (Keyboard{}) {
		t.Errorf("Keyboard = %v, expected empty", s.Keyboard)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("Phase() = %q, expected %q", s.Phase(), PhasePlaying)
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed should produce identical games
	e1 := NewEngine(DefaultWordList(), rand.NewSource(12345))
	e2 := NewEngine(DefaultWordList(), rand.NewSource(12345))

	for i := 0; i < 5; i++ {
		s1 := e1.Initialize()
		s2 := e2.Initialize()
		if s1.Solution != s2.Solution {
			t.Errorf("game %d: solution mismatch: %q vs %q", i, s1.Solution, s2.Solution)
		}
		if s1.ID != s2.ID {
			t.Errorf("game %d: ID mismatch: %q vs %q", i, s1.ID, s2.ID)
		}
	}
}

func TestNewGameUnknownSolution(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.NewGame("MUSTANG"); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("NewGame(MUSTANG) error = %v, expected ErrUnknownWord", err)
	}
	s, err := e.NewGame(" tesla ")
	if err != nil {
		t.Fatalf("NewGame(tesla) error = %v", err)
	}
	if s.Solution != "TESLA" {
		t.Errorf("Solution = %q, expected TESLA", s.Solution)
	}
}

func TestAppendLetter(t *testing.T) {
	e := newTestEngine(t)
	s := newTestGame(t, e, "TESLA")

	s = e.AppendLetter(s, 't')
	s = e.AppendLetter(s, 'E')
	if s.Guess != "TE" {
		t.Errorf("Guess = %q, expected %q", s.Guess, "TE")
	}
}

func TestAppendLetterIgnoresNonLetters(t *testing.T) {
	e := newTestEngine(t)
	s := typeWord(e, newTestGame(t, e, "TESLA"), "TE")

	for _, r := range []rune{'1', ' ', '\n', '-', 'é', 'Ñ', '@', '[', '`', '{'} {
		got := e.AppendLetter(s, r)
		if !reflect.DeepEqual(got, s) {
			t.Errorf("AppendLetter(%q) changed state: guess %q -> %q", r, s.Guess, got.Guess)
		}
	}
}

func TestAppendLetterCapsAtWordLength(t *testing.T) {
	e := newTestEngine(t)
	s := newTestGame(t, e, "TESLA")

	s = typeWord(e, s, "CIVICCAMRY")
	if s.Guess != "CIVIC" {
		t.Errorf("Guess = %q, expected %q", s.Guess, "CIVIC")
	}
	if len(s.Guess) > WordLength {
		t.Errorf("len(Guess) = %d, exceeds %d", len(s.Guess), WordLength)
	}
}

func TestDeleteLetter(t *testing.T) {
	e := newTestEngine(t)
	s := newTestGame(t, e, "TESLA")

	// Empty guess is a no-op
	empty := e.DeleteLetter(s)
	if !reflect.DeepEqual(empty, s) {
		t.Errorf("DeleteLetter on empty guess changed state: %+v", empty)
	}

	s = typeWord(e, s, "TES")
	s = e.DeleteLetter(s)
	if s.Guess != "TE" {
		t.Errorf("Guess = %q, expected %q", s.Guess, "TE")
	}
}

func TestSubmitIncompleteIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	s := typeWord(e, newTestGame(t, e, "TESLA"), "TES")

	got, err := e.Submit(s)
	if err != nil {
		t.Errorf("Submit() error = %v, expected nil", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("Submit() with %d letters changed state", len(s.Guess))
	}
}

func TestSubmitInvalidWord(t *testing.T) {
	e := newTestEngine(t)
	s := typeWord(e, newTestGame(t, e, "TESLA"), "ABCDE")

	got, err := e.Submit(s)
	if !errors.Is(err, ErrInvalidWord) {
		t.Fatalf("Submit() error = %v, expected ErrInvalidWord", err)
	}
	if got.Message != MsgInvalidWord {
		t.Errorf("Message = %q, expected %q", got.Message, MsgInvalidWord)
	}
	if got.Guess != "ABCDE" {
		t.Errorf("Guess = %q, expected guess to be kept", got.Guess)
	}
	if len(got.Attempts) != 0 || got.AttemptsLeft() != MaxAttempts {
		t.Errorf("invalid word consumed an attempt: %d used", len(got.Attempts))
	}
	if got.GameOver {
		t.Error("GameOver = true after invalid word")
	}

	// A later valid submission clears the message
	got = e.DeleteLetter(got)
	for i := 0; i < WordLength; i++ {
		got = e.DeleteLetter(got)
	}
	got = guess(t, e, got, "CIVIC")
	if got.Message != "" {
		t.Errorf("Message = %q, expected it to be cleared", got.Message)
	}
}

func TestSubmitAllAbsent(t *testing.T) {
	e := newTestEngine(t)
	s := guess(t, e, newTestGame(t, e, "TESLA"), "CIVIC")

	if len(s.Attempts) != 1 {
		t.Fatalf("len(Attempts) = %d, expected 1", len(s.Attempts))
	}
	a := s.Attempts[0]
	if a.Word != "CIVIC" {
		t.Errorf("Attempt.Word = %q, expected CIVIC", a.Word)
	}
	for i, st := range a.Result {
		if st != Absent {
			t.Errorf("Result[%d] = %v, expected absent", i, st)
		}
	}
	if s.GameOver {
		t.Error("GameOver = true after one miss")
	}
	if s.Guess != "" {
		t.Errorf("Guess = %q, expected it to be cleared", s.Guess)
	}
	if s.AttemptsLeft() != MaxAttempts-1 {
		t.Errorf("AttemptsLeft() = %d, expected %d", s.AttemptsLeft(), MaxAttempts-1)
	}
	for _, r := range "CIV" {
		if s.Keyboard.Status(r) != Absent {
			t.Errorf("Keyboard[%c] = %v, expected absent", r, s.Keyboard.Status(r))
		}
	}
}

func TestSubmitWin(t *testing.T) {
	e := newTestEngine(t)
	s := guess(t, e, newTestGame(t, e, "TESLA"), "TESLA")

	if !s.GameOver || !s.Won {
		t.Fatalf("GameOver = %v, Won = %v, expected both true", s.GameOver, s.Won)
	}
	if s.Message != MsgWin {
		t.Errorf("Message = %q, expected %q", s.Message, MsgWin)
	}
	last, ok := s.LastAttempt()
	if !ok || !last.Solved() {
		t.Errorf("LastAttempt() = %+v, expected all correct", last)
	}
	if s.Phase() != PhaseWon {
		t.Errorf("Phase() = %q, expected %q", s.Phase(), PhaseWon)
	}
	if s.AttemptsLeft() != MaxAttempts-1 {
		t.Errorf("AttemptsLeft() = %d, expected %d", s.AttemptsLeft(), MaxAttempts-1)
	}
}

func TestSubmitLoss(t *testing.T) {
	e := newTestEngine(t)
	s := newTestGame(t, e, "TESLA")

	misses := []string{"CIVIC", "CAMRY", "CORSA", "PRIUS", "SUPRA", "CHEVY"}
	for i, w := range misses {
		s = guess(t, e, s, w)
		if i < len(misses)-1 && s.GameOver {
			t.Fatalf("GameOver after %d attempts", i+1)
		}
	}

	if !s.GameOver || s.Won {
		t.Fatalf("GameOver = %v, Won = %v, expected lost game", s.GameOver, s.Won)
	}
	if !strings.Contains(s.Message, "TESLA") {
		t.Errorf("Message = %q, expected it to reveal the solution", s.Message)
	}
	if s.Message != FormatLoss("TESLA") {
		t.Errorf("Message = %q, expected %q", s.Message, FormatLoss("TESLA"))
	}
	if s.Phase() != PhaseLost {
		t.Errorf("Phase() = %q, expected %q", s.Phase(), PhaseLost)
	}

	// Further input is ignored
	after := typeWord(e, s, "TESLA")
	if !reflect.DeepEqual(after, s) {
		t.Error("AppendLetter changed state after game over")
	}
	after, err := e.Submit(after)
	if err != nil {
		t.Errorf("Submit() after game over error = %v", err)
	}
	if !reflect.DeepEqual(after, s) {
		t.Error("7th Submit changed state after game over")
	}
	if !reflect.DeepEqual(e.DeleteLetter(s), s) {
		t.Error("DeleteLetter changed state after game over")
	}
}

func TestWinOnLastAttempt(t *testing.T) {
	e := newTestEngine(t)
	s := newTestGame(t, e, "TESLA")

	for _, w := range []string{"CIVIC", "CAMRY", "CORSA", "PRIUS", "SUPRA"} {
		s = guess(t, e, s, w)
	}
	s = guess(t, e, s, "TESLA")

	if !s.Won || s.Message != MsgWin {
		t.Errorf("Won = %v, Message = %q, expected a win on the last attempt", s.Won, s.Message)
	}
}

func TestKeyboardAggregation(t *testing.T) {
	e := newTestEngine(t)

	t.Run("correct survives present in the same attempt", func(t *testing.T) {
		s := guess(t, e, newTestGame(t, e, "COMET"), "CIVIC")
		if s.Keyboard.Status('C') != Correct {
			t.Errorf("Keyboard[C] = %v, expected correct", s.Keyboard.Status('C'))
		}
	})

	t.Run("present upgrades to correct and never back", func(t *testing.T) {
		s := newTestGame(t, e, "TESLA")

		s = guess(t, e, s, "ASPEN")
		if s.Keyboard.Status('S') != Present {
			t.Fatalf("after ASPEN Keyboard[S] = %v, expected present", s.Keyboard.Status('S'))
		}

		s = guess(t, e, s, "LASER")
		if s.Keyboard.Status('S') != Correct {
			t.Fatalf("after LASER Keyboard[S] = %v, expected correct", s.Keyboard.Status('S'))
		}

		s = guess(t, e, s, "SMART")
		if s.Keyboard.Status('S') != Correct {
			t.Errorf("after SMART Keyboard[S] = %v, expected correct", s.Keyboard.Status('S'))
		}
		if s.Keyboard.Status('M') != Absent {
			t.Errorf("Keyboard[M] = %v, expected absent", s.Keyboard.Status('M'))
		}
		if s.Keyboard.Status('Z') != Unknown {
			t.Errorf("Keyboard[Z] = %v, expected unknown", s.Keyboard.Status('Z'))
		}
	})

	t.Run("entries only move forward", func(t *testing.T) {
		s := newTestGame(t, e, "TESLA")
		prev := s.Keyboard
		for _, w := range []string{"LASER", "ASPEN", "SMART", "ATLAS", "SCION"} {
			s = guess(t, e, s, w)
			for i := range s.Keyboard {
				if s.Keyboard[i] < prev[i] {
					t.Errorf("after %s Keyboard[%c] went %v -> %v", w, 'A'+i, prev[i], s.Keyboard[i])
				}
			}
			prev = s.Keyboard
		}
	})
}

func TestSubmitDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(t)
	s1 := guess(t, e, newTestGame(t, e, "TESLA"), "CIVIC")
	typed := typeWord(e, s1, "CAMRY")

	s2, err := e.Submit(typed)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(s1.Attempts) != 1 || len(typed.Attempts) != 1 {
		t.Errorf("earlier states grew: %d and %d attempts", len(s1.Attempts), len(typed.Attempts))
	}
	if typed.Guess != "CAMRY" {
		t.Errorf("input guess changed to %q", typed.Guess)
	}
	if len(s2.Attempts) != 2 {
		t.Errorf("len(Attempts) = %d, expected 2", len(s2.Attempts))
	}

	// Branching from the same state must not share history
	branch, err := e.Submit(typeWord(e, s1, "CORSA"))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if s2.Attempts[1].Word != "CAMRY" || branch.Attempts[1].Word != "CORSA" {
		t.Errorf("branches share attempts: %q and %q", s2.Attempts[1].Word, branch.Attempts[1].Word)
	}
}

func TestApply(t *testing.T) {
	e := newTestEngine(t)
	s := newTestGame(t, e, "TESLA")

	cmds := []core.Command{
		core.AppendCmd('c'),
		core.AppendCmd('i'),
		core.AppendCmd('x'),
		core.DeleteCmd(),
		core.AppendCmd('v'),
		core.AppendCmd('i'),
		core.AppendCmd('c'),
		{Kind: core.CmdNewGame},
		core.SubmitCmd(),
	}

	var err error
	for _, c := range cmds {
		s, err = e.Apply(s, c)
		if err != nil {
			t.Fatalf("Apply(%v) error = %v", c, err)
		}
	}

	if len(s.Attempts) != 1 || s.Attempts[0].Word != "CIVIC" {
		t.Errorf("Attempts = %+v, expected one CIVIC attempt", s.Attempts)
	}
}

func TestApplyInvalidWordError(t *testing.T) {
	e := newTestEngine(t)
	s := typeWord(e, newTestGame(t, e, "TESLA"), "QQQQQ")

	if _, err := e.Apply(s, core.SubmitCmd()); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("Apply(Submit) error = %v, expected ErrInvalidWord", err)
	}
}
