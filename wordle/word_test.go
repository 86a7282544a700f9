package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustWord(t *testing.T, s string) Word {
	t.Helper()
	word, err := NewWord(s, len([]rune(s)))
	assert.NoError(t, err)
	return word
}

func evaluate(t *testing.T, secret, guess string) string {
	t.Helper()
	return Evaluate(mustWord(t, secret), mustWord(t, guess)).String()
}

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)
	// repeated letter cases that the two pass counter has to get right
	assert.Equal("bbb", evaluate(t, "aaa", "xxx"))
	assert.Equal("ggg", evaluate(t, "xxx", "xxx"))
	assert.Equal("yyy", evaluate(t, "cab", "abc"))
	assert.Equal("ygy", evaluate(t, "cba", "abc"))
	assert.Equal("ggb", evaluate(t, "aaa", "aab"))
	assert.Equal("bbg", evaluate(t, "xxx", "yyx"))
	assert.Equal("bbg", evaluate(t, "yyx", "xxx"))
	assert.Equal("ygy", evaluate(t, "yyx", "xyy"))

	assert.Equal("yyybb", evaluate(t, "favor", "arose"))
	assert.Equal("bgbbg", evaluate(t, "favor", "radar"))
}

func TestEvaluateSelf(t *testing.T) {
	for _, word := range []string{"favor", "arose", "xxx", "aab"} {
		assert.True(t, Evaluate(mustWord(t, word), mustWord(t, word)).AllRightPlace(), word)
	}
}

func TestEvaluateDisjointLetters(t *testing.T) {
	assert := assert.New(t)
	a := mustWord(t, "abcde")
	b := mustWord(t, "fghij")
	for _, ls := range Evaluate(a, b) {
		assert.Equal(Wrong, ls)
	}
	for _, ls := range Evaluate(b, a) {
		assert.Equal(Wrong, ls)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first := evaluate(t, "abbey", "babes")
	for range 10 {
		assert.Equal(t, first, evaluate(t, "abbey", "babes"))
	}
}

func TestNewWordLength(t *testing.T) {
	assert := assert.New(t)
	_, err := NewWord("favor", 5)
	assert.NoError(err)
	_, err = NewWord("favors", 5)
	assert.Error(err)
	_, err = NewWord("favo", 5)
	assert.Error(err)
	_, err = NewWord("", 5)
	assert.Error(err)
}

func TestWordEqual(t *testing.T) {
	assert := assert.New(t)
	assert.True(mustWord(t, "favor").Equal(mustWord(t, "favor")))
	assert.False(mustWord(t, "favor").Equal(mustWord(t, "vapor")))
	assert.False(mustWord(t, "favor").Equal(mustWord(t, "favo")))
}

func TestParseScore(t *testing.T) {
	assert := assert.New(t)

	score, ok := ParseScore("gybgg", 5)
	assert.True(ok)
	assert.Equal(Score{RightPlace, RightLetter, Wrong, RightPlace, RightPlace}, score)

	// case insensitive, unrecognized runes dropped
	score, ok = ParseScore(" G y-B!g g\n", 5)
	assert.True(ok)
	assert.Equal("gybgg", score.String())

	_, ok = ParseScore("gyb", 5)
	assert.False(ok)
	_, ok = ParseScore("gybggg", 5)
	assert.False(ok)
	_, ok = ParseScore("xxxxx", 5)
	assert.False(ok)
}

func TestScoreEqual(t *testing.T) {
	assert := assert.New(t)
	a := Score{RightPlace, Wrong}
	assert.True(a.Equal(Score{RightPlace, Wrong}))
	assert.False(a.Equal(Score{RightPlace, RightLetter}))
	assert.False(a.Equal(Score{RightPlace}))
}
