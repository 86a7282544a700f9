package wordle

import (
	"fmt"
	"strings"
)

// LetterScore is the outcome for a single guess position. The zero value is
// Wrong so the second scoring pass only ever upgrades a position.
type LetterScore int

const (
	Wrong LetterScore = iota
	RightLetter
	RightPlace
)

func (ls LetterScore) String() string {
	switch ls {
	case Wrong:
		return "b"
	case RightLetter:
		return "y"
	case RightPlace:
		return "g"
	}
	panic(fmt.Sprintf("invalid LetterScore: %d", int(ls)))
}

// Word is a fixed-length sequence of letters. The length is fixed per game
// and checked at construction, never after.
type Word []rune

// NewWord parses a textual token into a Word of the given length.
func NewWord(s string, length int) (Word, error) {
	runes := []rune(s)
	if len(runes) != length {
		return nil, fmt.Errorf("not a %d letter word: %q", length, s)
	}
	return Word(runes), nil
}

func (w Word) String() string {
	return string(w)
}

func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i, letter := range w {
		if other[i] != letter {
			return false
		}
	}
	return true
}

// Score is one LetterScore per guess position, produced by Evaluate.
type Score []LetterScore

func (s Score) Equal(other Score) bool {
	if len(s) != len(other) {
		return false
	}
	for i, ls := range s {
		if other[i] != ls {
			return false
		}
	}
	return true
}

func (s Score) AllRightPlace() bool {
	for _, ls := range s {
		if ls != RightPlace {
			return false
		}
	}
	return true
}

func (s Score) String() string {
	var b strings.Builder
	for _, ls := range s {
		b.WriteString(ls.String())
	}
	return b.String()
}

// ParseScore reads a score from text: g=RightPlace y=RightLetter b=Wrong,
// case insensitive, every other rune dropped. Reports false unless exactly
// length outcomes remain.
func ParseScore(s string, length int) (Score, bool) {
	ret := make(Score, 0, length)
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'g':
			ret = append(ret, RightPlace)
		case 'y':
			ret = append(ret, RightLetter)
		case 'b':
			ret = append(ret, Wrong)
		}
	}
	if len(ret) != length {
		return nil, false
	}
	return ret, true
}

// Evaluate scores guess against secret with the two pass algorithm.
//
// Pass 1 marks exact positions RightPlace and counts the remaining secret
// letters. Pass 2 walks the positions that are not RightPlace and marks
// RightLetter while the counted availability holds out, Wrong after. The
// counter is what keeps repeated letters honest: a secret letter consumed
// by a RightPlace or an earlier RightLetter cannot be claimed again.
func Evaluate(secret, guess Word) Score {
	if len(secret) != len(guess) {
		panic("evaluate: word lengths differ: " + secret.String() + " " + guess.String())
	}
	score := make(Score, len(guess))
	available := make(map[rune]int, len(secret))
	for i, letter := range secret {
		if guess[i] == letter {
			score[i] = RightPlace
		} else {
			available[letter]++
		}
	}
	for i, letter := range guess {
		if score[i] == RightPlace {
			continue
		}
		if available[letter] > 0 {
			score[i] = RightLetter
			available[letter]--
		}
	}
	return score
}
