package wordle

import "errors"

var (
	// ErrInvalidWord is returned by Submit when the guess is not in the word list.
	// The attempt is not consumed.
	ErrInvalidWord = errors.New("wordle: word not in list")

	// ErrUnknownWord is returned when a fixed solution is not in the word list.
	ErrUnknownWord = errors.New("wordle: solution not in word list")

	// ErrEmptyWordList is returned when no valid word survives loading.
	ErrEmptyWordList = errors.New("wordle: word list is empty")
)

// User-visible messages.
const (
	MsgInvalidWord = "❌ Palabra no válida. Intenta con un modelo de auto válido."
	MsgWin         = "🚗 ¡Felicidades! Adivinaste el modelo."
	msgLossPrefix  = "😞 Fin del juego. La respuesta era: "
)

// FormatLoss returns the loss message revealing the solution.
func FormatLoss(solution string) string {
	return msgLossPrefix + solution
}
