package wordle

// Strategy produces guesses and digests the scores coming back.
type Strategy interface {
	MakeGuess() Word
	ReceiveScore(score Score)
}

// Run plays rounds until the engine reports a terminal state: ask the
// strategy for a guess, score it, feed the score back. An engine error
// (illegal guess, exhausted session) aborts the game.
func Run(engine Engine, strategy Strategy) (bool, error) {
	for {
		guess := strategy.MakeGuess()
		result, err := engine.ScoreGuess(guess)
		if err != nil {
			return false, err
		}
		if result.Done {
			return result.Won, nil
		}
		strategy.ReceiveScore(result.Score)
	}
}
