package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustWordList(t *testing.T, tokens []string) *WordList {
	t.Helper()
	wl, err := NewWordList(tokens)
	assert.NoError(t, err)
	return wl
}

// narrow against the score the secret itself would produce, then check
// exactly the expected words survive.
func testNarrow(t *testing.T, tokens []string, secret, guess string, expected []string) {
	t.Helper()
	wl := mustWordList(t, tokens)
	guessWord := mustWord(t, guess)
	observed := Evaluate(mustWord(t, secret), guessWord)
	wl.Narrow(guessWord, observed)
	assert.Equal(t, expected, wl.Strings())
}

func TestNarrow(t *testing.T) {
	testNarrow(t,
		[]string{"aaazz", "abbbb", "bcazz"},
		"abbbb", "bxxac",
		[]string{"abbbb"},
	)
	testNarrow(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz"},
		"abazz", "xabxx",
		[]string{"abczz", "abazz", "bbazz"},
	)
	testNarrow(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz", "azzza", "azzzz"},
		"abazz", "axxxa",
		[]string{"aaazz", "abazz"},
	)
}

func TestNarrowKeepsSecretAndShrinks(t *testing.T) {
	assert := assert.New(t)
	wl := mustWordList(t, SortedDictionary())
	secret := mustWord(t, "favor")
	for _, guess := range []string{"arose", "crane", "fifty", "favor"} {
		before := wl.Len()
		guessWord := mustWord(t, guess)
		wl.Narrow(guessWord, Evaluate(secret, guessWord))
		assert.LessOrEqual(wl.Len(), before)
		assert.True(wl.Contains(secret), "secret eliminated by %q", guess)
	}
	assert.Equal([]string{"favor"}, wl.Strings())
}

func TestNarrowIdempotent(t *testing.T) {
	assert := assert.New(t)
	wl := mustWordList(t, SortedDictionary()[:200])
	secret := mustWord(t, wl.Strings()[17])
	guess := mustWord(t, wl.Strings()[42])
	observed := Evaluate(secret, guess)

	wl.Narrow(guess, observed)
	once := wl.Strings()
	wl.Narrow(guess, observed)
	assert.Equal(once, wl.Strings())
}

func TestNewWordListRejectsBadInput(t *testing.T) {
	assert := assert.New(t)
	_, err := NewWordList(nil)
	assert.Error(err)
	_, err = NewWordList([]string{"abc", "abcd"})
	assert.Error(err)
	_, err = NewWordList([]string{"abc", "abc"})
	assert.Error(err)
}

func TestWordListOrderAndLength(t *testing.T) {
	assert := assert.New(t)
	wl := mustWordList(t, []string{"zebra", "apple", "mango"})
	assert.Equal(5, wl.WordLength())
	assert.Equal(3, wl.Len())
	// insertion order, not sorted order
	assert.Equal([]string{"zebra", "apple", "mango"}, wl.Strings())
	assert.Equal("zebra", wl.FirstWord().String())
}

func TestWordListContains(t *testing.T) {
	assert := assert.New(t)
	wl := mustWordList(t, []string{"zebra", "apple", "mango"})
	assert.True(wl.Contains(mustWord(t, "apple")))
	assert.False(wl.Contains(mustWord(t, "peach")))

	// narrowing removes membership
	guess := mustWord(t, "apple")
	wl.Narrow(guess, Evaluate(mustWord(t, "zebra"), guess))
	assert.False(wl.Contains(mustWord(t, "apple")))
	assert.True(wl.Contains(mustWord(t, "zebra")))
}

func TestCloneNarrowsIndependently(t *testing.T) {
	assert := assert.New(t)
	wl := mustWordList(t, []string{"zebra", "apple", "mango"})
	clone := wl.Clone()
	guess := mustWord(t, "apple")
	clone.Narrow(guess, Evaluate(mustWord(t, "apple"), guess))
	assert.Equal([]string{"apple"}, clone.Strings())
	assert.Equal(3, wl.Len())
}

func TestRangeStopsEarly(t *testing.T) {
	wl := mustWordList(t, []string{"zebra", "apple", "mango"})
	seen := 0
	for i := range wl.Range {
		seen++
		if i == 1 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
