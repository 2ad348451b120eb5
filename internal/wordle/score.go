package wordle

import "strings"

// Score compares guess against solution position by position.
//
//   - Same letter at the same position: Correct.
//   - Letter appears anywhere in the solution: Present.
//   - Otherwise: Absent.
//
// Presence is a plain membership test; matched letters are not consumed, so a
// letter repeated in the guess can be marked Present more than once even when
// the solution holds it once. Both words must be WordLength uppercase letters.
func Score(guess, solution string) [WordLength]LetterStatus {
	var res [WordLength]LetterStatus
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == solution[i]:
			res[i] = Correct
		case strings.IndexByte(solution, guess[i]) >= 0:
			res[i] = Present
		default:
			res[i] = Absent
		}
	}
	return res
}
