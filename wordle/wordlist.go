package wordle

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// WordList is an ordered set of same-length words. Membership is a bitset
// over the insertion order, so a candidate list narrows by clearing bits
// and the backing words are shared between clones.
type WordList struct {
	words  []Word
	length int
	viable *bitset.BitSet
}

// NewWordList builds a word list from tokens, in order. All tokens must
// have the same length and duplicates are rejected.
func NewWordList(tokens []string) (*WordList, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty word list")
	}
	length := len([]rune(tokens[0]))
	words := make([]Word, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		word, err := NewWord(token, length)
		if err != nil {
			return nil, err
		}
		if seen[token] {
			return nil, fmt.Errorf("duplicate word: %q", token)
		}
		seen[token] = true
		words = append(words, word)
	}
	viable := bitset.New(uint(len(words)))
	for i := range words {
		viable.Set(uint(i))
	}
	return &WordList{words: words, length: length, viable: viable}, nil
}

// WordLength is the fixed letter count shared by every word in the list.
func (wl *WordList) WordLength() int {
	return wl.length
}

func (wl *WordList) Len() int {
	return int(wl.viable.Count())
}

// Range iterates the remaining words in insertion order.
func (wl *WordList) Range(yield func(i int, word Word) bool) {
	i := 0
	for w, ok := wl.viable.NextSet(0); ok; w, ok = wl.viable.NextSet(w + 1) {
		if !yield(i, wl.words[w]) {
			return
		}
		i++
	}
}

func (wl *WordList) Words() []Word {
	ret := make([]Word, 0, wl.Len())
	for _, word := range wl.Range {
		ret = append(ret, word)
	}
	return ret
}

func (wl *WordList) Strings() []string {
	ret := make([]string, 0, wl.Len())
	for _, word := range wl.Range {
		ret = append(ret, word.String())
	}
	return ret
}

func (wl *WordList) Contains(word Word) bool {
	for w, ok := wl.viable.NextSet(0); ok; w, ok = wl.viable.NextSet(w + 1) {
		if wl.words[w].Equal(word) {
			return true
		}
	}
	return false
}

// FirstWord returns the first remaining word. Panics on an empty list,
// which callers treat as an invariant violation.
func (wl *WordList) FirstWord() Word {
	w, ok := wl.viable.NextSet(0)
	if !ok {
		panic("word list is empty")
	}
	return wl.words[w]
}

// Clone shares the backing words but copies the membership mask, so the
// clone narrows independently.
func (wl *WordList) Clone() *WordList {
	return &WordList{words: wl.words, length: wl.length, viable: wl.viable.Clone()}
}

// Narrow keeps only the words that would have produced the observed score
// for the guess. Re-applying the same guess/score pair is a no-op.
func (wl *WordList) Narrow(guess Word, observed Score) {
	for w, ok := wl.viable.NextSet(0); ok; w, ok = wl.viable.NextSet(w + 1) {
		if !Evaluate(wl.words[w], guess).Equal(observed) {
			wl.viable.Clear(w)
		}
	}
}
