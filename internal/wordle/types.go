package wordle

// Board dimensions; fixed for every game.
const (
	WordLength  = 5
	MaxAttempts = 6
)

// LetterStatus is the scoring result of one guessed letter.
// Values are ordered by priority so a keyboard entry can only move forward.
type LetterStatus uint8

const (
	Unknown LetterStatus = iota // Not guessed yet (keyboard only)
	Absent                      // Letter does not appear in the solution
	Present                     // Letter appears elsewhere in the solution
	Correct                     // Letter is in the right position
)

// String returns the lowercase name of the status.
func (s LetterStatus) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Attempt is one submitted, validated guess and its per-letter result.
type Attempt struct {
	Word   string
	Result [WordLength]LetterStatus
}

// Solved reports whether every letter of the attempt is correct.
func (a Attempt) Solved() bool {
	for _, s := range a.Result {
		if s != Correct {
			return false
		}
	}
	return true
}

// Keyboard holds the best-known status of each letter A-Z.
type Keyboard [26]LetterStatus

// Status returns the recorded status for r, or Unknown for non-letters.
func (k Keyboard) Status(r rune) LetterStatus {
	i, ok := letterIndex(r)
	if !ok {
		return Unknown
	}
	return k[i]
}

// merge upgrades the entry for r to s; lower priorities never overwrite.
func (k *Keyboard) merge(r rune, s LetterStatus) {
	i, ok := letterIndex(r)
	if !ok {
		return
	}
	if s > k[i] {
		k[i] = s
	}
}

// Phase is a coarse description of the game progress.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// State is the complete state of one game. Engine operations take a State
// and return a new one; the caller's copy is never modified.
type State struct {
	ID       string    // Game identifier, for log correlation
	Solution string    // Hidden target word (uppercase)
	Attempts []Attempt // Submitted attempts, oldest first
	Guess    string    // In-progress guess, 0..WordLength letters
	Keyboard Keyboard  // Per-letter status across all attempts
	GameOver bool      // True once the game is won or lost
	Won      bool      // True if the last attempt matched the solution
	Message  string    // User-visible message, may be empty
}

// AttemptsUsed returns how many attempts have been submitted.
func (s State) AttemptsUsed() int {
	return len(s.Attempts)
}

// AttemptsLeft returns how many attempts remain.
func (s State) AttemptsLeft() int {
	return MaxAttempts - len(s.Attempts)
}

// LastAttempt returns the most recent attempt, if any.
func (s State) LastAttempt() (Attempt, bool) {
	if len(s.Attempts) == 0 {
		return Attempt{}, false
	}
	return s.Attempts[len(s.Attempts)-1], true
}

// Phase reports whether the game is still running, won or lost.
func (s State) Phase() Phase {
	switch {
	case s.Won:
		return PhaseWon
	case s.GameOver:
		return PhaseLost
	default:
		return PhasePlaying
	}
}

// letterIndex maps an uppercase ASCII letter to 0..25.
func letterIndex(r rune) (int, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return int(r - 'A'), true
}
