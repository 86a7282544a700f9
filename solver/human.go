package solver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ericmarkmartin/wordle-solver/wordle"
)

// HumanGuesser reads guesses from a line-oriented reader, usually stdin.
// Malformed lines are re-prompted and never leave this type.
type HumanGuesser struct {
	in     *bufio.Scanner
	out    io.Writer
	length int
}

func NewHumanGuesser(in io.Reader, out io.Writer, length int) *HumanGuesser {
	return &HumanGuesser{
		in:     bufio.NewScanner(in),
		out:    out,
		length: length,
	}
}

// readGuess parses one line: drop everything that is not a letter,
// lowercase the rest, and require exactly the game's word length.
func (h *HumanGuesser) readGuess() (wordle.Word, bool) {
	if !h.in.Scan() {
		panic("input closed while waiting for a guess")
	}
	var letters strings.Builder
	for _, r := range strings.ToLower(h.in.Text()) {
		if r >= 'a' && r <= 'z' {
			letters.WriteRune(r)
		}
	}
	word, err := wordle.NewWord(letters.String(), h.length)
	if err != nil {
		return nil, false
	}
	return word, true
}

func (h *HumanGuesser) MakeGuess() wordle.Word {
	fmt.Fprintln(h.out, "Enter guess:")
	for {
		if guess, ok := h.readGuess(); ok {
			return guess
		}
		fmt.Fprintln(h.out, "Not a valid guess, try again:")
	}
}

func (h *HumanGuesser) ReceiveScore(score wordle.Score) {
	fmt.Fprintln(h.out, "Score was", score.String())
}

// guessMode says who is currently producing guesses.
type guessMode int

const (
	modeHuman guessMode = iota
	modeSolver
)

// HumanThenSolver starts with a human guessing and can hand the game to
// the solver once, carrying over everything learned so far. The mode is an
// explicit state, the transition is one-way.
type HumanThenSolver struct {
	wordList   *wordle.WordList
	viable     *wordle.WordList
	human      *HumanGuesser
	solver     *Solver
	mode       guessMode
	lastGuess  wordle.Word
	in         *bufio.Scanner
	out        io.Writer
	maxGuesses int
	log        zerolog.Logger
}

func NewHumanThenSolver(wordList *wordle.WordList, in io.Reader, out io.Writer, maxGuesses int, log zerolog.Logger) *HumanThenSolver {
	scanner := bufio.NewScanner(in)
	return &HumanThenSolver{
		wordList:   wordList,
		viable:     wordList.Clone(),
		human:      &HumanGuesser{in: scanner, out: out, length: wordList.WordLength()},
		mode:       modeHuman,
		in:         scanner,
		out:        out,
		maxGuesses: maxGuesses,
		log:        log,
	}
}

// StartSolver hands the game to the solver, seeding it with the candidate
// set narrowed during the human rounds. Panics if the solver already has
// the game.
func (h *HumanThenSolver) StartSolver() {
	if h.mode != modeHuman {
		panic("solver already started")
	}
	// no openers: the opening rounds were already played by the human
	h.solver = New(h.wordList, nil, h.maxGuesses, h.log)
	h.solver.AdoptCandidates(h.viable)
	h.viable = nil
	h.mode = modeSolver
}

// shouldSwitchToSolver offers the handoff before a human guess.
func (h *HumanThenSolver) shouldSwitchToSolver() bool {
	fmt.Fprintf(h.out, "There are %d viable words remaining\n", h.viable.Len())
	fmt.Fprintln(h.out, "Do you want to let the solver take over? [y/n]")
	for {
		if !h.in.Scan() {
			panic("input closed while waiting for an answer")
		}
		switch strings.ToLower(strings.TrimSpace(h.in.Text())) {
		case "y":
			return true
		case "n":
			return false
		default:
			fmt.Fprintln(h.out, "Please answer y or n:")
		}
	}
}

func (h *HumanThenSolver) MakeGuess() wordle.Word {
	if h.mode == modeHuman && h.shouldSwitchToSolver() {
		h.StartSolver()
	}
	switch h.mode {
	case modeHuman:
		guess := h.human.MakeGuess()
		h.lastGuess = guess
		return guess
	case modeSolver:
		fmt.Fprintln(h.out, "Computing...")
		return h.solver.MakeGuess()
	}
	panic(fmt.Sprintf("invalid mode: %d", h.mode))
}

func (h *HumanThenSolver) ReceiveScore(score wordle.Score) {
	switch h.mode {
	case modeHuman:
		h.viable.Narrow(h.lastGuess, score)
		h.human.ReceiveScore(score)
	case modeSolver:
		h.solver.ReceiveScore(score)
	}
}
