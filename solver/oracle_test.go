package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOracleParsesScore(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	oracle := NewConsoleOracle(strings.NewReader("gybbb\n"), &out, 5)

	result, err := oracle.ScoreGuess(mustWord(t, "arose"))
	assert.NoError(err)
	assert.False(result.Done)
	assert.Equal("gybbb", result.Score.String())
	assert.Contains(out.String(), "Enter score for arose")
}

func TestOracleRepromptsOnMalformedScore(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	// too short, junk, then valid with noise characters
	oracle := NewConsoleOracle(strings.NewReader("gy\nwhat\ng y b b g!\n"), &out, 5)

	result, err := oracle.ScoreGuess(mustWord(t, "arose"))
	assert.NoError(err)
	assert.Equal("gybbg", result.Score.String())
	assert.Contains(out.String(), "Invalid score")
}

func TestOracleAllGreenWins(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	oracle := NewConsoleOracle(strings.NewReader("GGGGG\n"), &out, 5)

	result, err := oracle.ScoreGuess(mustWord(t, "favor"))
	assert.NoError(err)
	assert.True(result.Done)
	assert.True(result.Won)
}
