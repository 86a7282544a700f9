package solver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ericmarkmartin/wordle-solver/wordle"
)

// ConsoleOracle is an engine where a human holds the secret: the program
// announces each guess and the human types the score back as g/y/b
// letters. Unparseable lines are re-prompted, never surfaced.
type ConsoleOracle struct {
	in     *bufio.Scanner
	out    io.Writer
	length int
}

func NewConsoleOracle(in io.Reader, out io.Writer, length int) *ConsoleOracle {
	return &ConsoleOracle{
		in:     bufio.NewScanner(in),
		out:    out,
		length: length,
	}
}

func (o *ConsoleOracle) readScore() (wordle.Score, bool) {
	if !o.in.Scan() {
		panic("input closed while waiting for a score")
	}
	return wordle.ParseScore(o.in.Text(), o.length)
}

// ScoreGuess asks the human for the score. An all-green answer ends the
// game as won.
func (o *ConsoleOracle) ScoreGuess(guess wordle.Word) (wordle.GuessResult, error) {
	fmt.Fprintf(o.out, "Enter score for %s (g=right place, y=right letter, b=wrong):\n", guess.String())
	for {
		score, ok := o.readScore()
		if !ok {
			fmt.Fprintln(o.out, "Invalid score, try again:")
			continue
		}
		if score.AllRightPlace() {
			return wordle.GuessResult{Done: true, Won: true, Score: score}, nil
		}
		return wordle.GuessResult{Score: score}, nil
	}
}
