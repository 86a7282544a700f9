// Package solver holds the guessing strategies: the elimination solver,
// the interactive human guesser, and the human-then-solver handoff.
package solver

import (
	mapset "github.com/deckarep/golang-set"
	"github.com/rs/zerolog"

	"github.com/ericmarkmartin/wordle-solver/wordle"
)

// DefaultOpener is the fixed first guess. Tunable, not derived: it is a
// high-information word regardless of what the dictionary holds.
const DefaultOpener = "arose"

// Solver picks guesses by worst-case elimination. The first guesses are
// fixed openers; after that every candidate source word is scored by the
// minimum number of viable words it is guaranteed to eliminate, and the
// best guaranteed count wins.
type Solver struct {
	wordList   *wordle.WordList // legal guesses, never narrowed
	viable     *wordle.WordList // possible secrets, only shrinks
	openers    []wordle.Word
	lastGuess  wordle.Word
	rightPlace mapset.Set // letters confirmed RightPlace so far
	numGuesses int
	maxGuesses int
	log        zerolog.Logger
}

// New builds a solver over the reference word list. The openers are used
// verbatim for the first guesses, maxGuesses is the session budget the
// solver is playing against.
func New(wordList *wordle.WordList, openers []wordle.Word, maxGuesses int, log zerolog.Logger) *Solver {
	return &Solver{
		wordList:   wordList,
		viable:     wordList.Clone(),
		openers:    openers,
		rightPlace: mapset.NewSet(),
		maxGuesses: maxGuesses,
		log:        log,
	}
}

// AdoptCandidates replaces the viable set with one narrowed elsewhere,
// for taking over a game in progress. The opener phase is skipped: those
// guesses were already spent by whoever played the earlier rounds.
func (s *Solver) AdoptCandidates(viable *wordle.WordList) {
	s.viable = viable
	s.numGuesses = len(s.openers)
}

// EliminationScore is the guaranteed elimination count for a guess: for
// every possible secret, count the viable words the guess would knock out,
// and keep the worst case.
func (s *Solver) EliminationScore(guess wordle.Word) int {
	viable := s.viable.Words()
	if len(viable) == 0 {
		panic("no viable words remain")
	}
	scores := make([]wordle.Score, len(viable))
	for i, word := range viable {
		scores[i] = wordle.Evaluate(word, guess)
	}
	min := -1
	for secret := range viable {
		eliminated := 0
		for c, word := range viable {
			if !word.Equal(guess) && !scores[c].Equal(scores[secret]) {
				eliminated++
			}
		}
		if min < 0 || eliminated < min {
			min = eliminated
		}
	}
	return min
}

// MakeGuess returns the next guess. Ties on elimination score go to the
// first word in the source list's iteration order, so a given dictionary
// always produces the same guesses.
func (s *Solver) MakeGuess() wordle.Word {
	if s.viable.Len() == 0 {
		panic("no viable words remain")
	}
	var guess wordle.Word
	if s.numGuesses < len(s.openers) {
		guess = s.openers[s.numGuesses]
	} else {
		// probing words from the full list are only affordable while
		// there is budget to follow them up
		source := s.wordList
		if s.viable.Len() == 1 || s.numGuesses >= s.maxGuesses-1 {
			source = s.viable
		}
		best := -1
		for _, word := range source.Range {
			score := s.EliminationScore(word)
			if score > best {
				best = score
				guess = word
			}
		}
		s.log.Debug().
			Str("guess", guess.String()).
			Int("eliminates", best).
			Int("viable", s.viable.Len()).
			Msg("picked guess")
	}
	s.lastGuess = guess
	s.numGuesses++
	return guess
}

// ReceiveScore narrows the viable set with the score for the last guess
// and records letters confirmed in the right place.
func (s *Solver) ReceiveScore(score wordle.Score) {
	if s.lastGuess == nil {
		panic("received a score before making a guess")
	}
	s.viable.Narrow(s.lastGuess, score)
	for i, ls := range score {
		if ls == wordle.RightPlace {
			s.rightPlace.Add(s.lastGuess[i])
		}
	}
	s.log.Debug().
		Str("guess", s.lastGuess.String()).
		Str("score", score.String()).
		Int("viable", s.viable.Len()).
		Msg("narrowed candidates")
}

// Viable exposes the remaining candidate words, mostly for reporting.
func (s *Solver) Viable() *wordle.WordList {
	return s.viable
}
