package wordle

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInWordList means a guess is not a member of the legal word
	// list. Recoverable: re-prompt and try again.
	ErrNotInWordList = errors.New("not in word list")

	// ErrTooManyGuesses means a guess was scored against a session that
	// already finished. That is a caller protocol bug, not a game event.
	ErrTooManyGuesses = errors.New("too many guesses")
)

// GuessResult is one scored round. Done marks a terminal session, Won is
// meaningful only when Done is set.
type GuessResult struct {
	Done  bool
	Won   bool
	Score Score
}

// Engine scores a guess against whatever holds the secret: the standard
// engine knows the word, a console oracle asks a human for the colors.
type Engine interface {
	ScoreGuess(guess Word) (GuessResult, error)
}

// StandardEngine holds the secret word and the attempt budget for one
// session. The secret is never exposed to the strategy.
type StandardEngine struct {
	secret      Word
	legal       *WordList
	maxGuesses  int
	guessesMade int
	finished    bool
}

func NewStandardEngine(secret Word, legal *WordList, maxGuesses int) *StandardEngine {
	return &StandardEngine{
		secret:     secret,
		legal:      legal,
		maxGuesses: maxGuesses,
	}
}

// ScoreGuess validates and scores one guess. Rejected guesses leave the
// session untouched.
func (e *StandardEngine) ScoreGuess(guess Word) (GuessResult, error) {
	if e.finished {
		return GuessResult{}, fmt.Errorf("%q: %w", guess.String(), ErrTooManyGuesses)
	}
	if !e.legal.Contains(guess) {
		return GuessResult{}, fmt.Errorf("%q: %w", guess.String(), ErrNotInWordList)
	}
	score := Evaluate(e.secret, guess)
	e.guessesMade++
	if score.AllRightPlace() {
		e.finished = true
		return GuessResult{Done: true, Won: true, Score: score}, nil
	}
	if e.guessesMade >= e.maxGuesses {
		e.finished = true
		return GuessResult{Done: true, Won: false, Score: score}, nil
	}
	return GuessResult{Score: score}, nil
}

// GuessesMade reports how many guesses have been scored so far.
func (e *StandardEngine) GuessesMade() int {
	return e.guessesMade
}
