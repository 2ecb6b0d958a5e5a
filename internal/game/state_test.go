package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuessStateRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name   string
		secret string
		budget int
	}{
		{name: "zero budget", secret: "CAT", budget: 0},
		{name: "negative budget", secret: "CAT", budget: -3},
		{name: "empty word", secret: "", budget: 6},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := NewGuessState(secret(tc.secret), tc.budget)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, st)
		})
	}
}

func TestNewGuessStateStartsHidden(t *testing.T) {
	st, err := NewGuessState(secret("CAT"), 6)
	require.NoError(t, err)

	masked, n := st.Mask()
	assert.Equal(t, "___", masked)
	assert.Zero(t, n)
	assert.Equal(t, []bool{false, false, false}, st.Revealed())
	assert.Zero(t, st.WrongCount())
	assert.Zero(t, st.GuessedCount())
	assert.False(t, st.IsWordFullyRevealed())
	assert.False(t, st.IsLivesExhausted())
}

func TestApplyGuessRevealsEveryPosition(t *testing.T) {
	st, err := NewGuessState(secret("BANANA"), 6)
	require.NoError(t, err)

	res := st.ApplyGuess('A')
	assert.Equal(t, Correct, res.Kind)
	assert.Equal(t, []int{1, 3, 5}, res.Positions)
	assert.Equal(t, []bool{false, true, false, true, false, true}, st.Revealed())

	masked, n := st.Mask()
	assert.Equal(t, "_A_A_A", masked)
	assert.Equal(t, 3, n)
	assert.Zero(t, st.WrongCount())
}

func TestApplyGuessIncorrect(t *testing.T) {
	st, err := NewGuessState(secret("CAT"), 6)
	require.NoError(t, err)

	res := st.ApplyGuess('Z')
	assert.Equal(t, Incorrect, res.Kind)
	assert.Empty(t, res.Positions)
	assert.Equal(t, 1, st.WrongCount())

	tried, hit := st.Guessed('Z')
	assert.True(t, tried)
	assert.False(t, hit)
}

func TestApplyGuessRepeatIsNoOp(t *testing.T) {
	for _, letter := range []rune{'C', 'Q'} {
		st, err := NewGuessState(secret("CAT"), 6)
		require.NoError(t, err)

		first := st.ApplyGuess(letter)
		wrong, mask, count := st.WrongCount(), st.Revealed(), st.GuessedCount()

		second := st.ApplyGuess(letter)
		assert.NotEqual(t, AlreadyGuessed, first.Kind)
		assert.Equal(t, AlreadyGuessed, second.Kind)
		assert.Equal(t, wrong, st.WrongCount())
		assert.Equal(t, mask, st.Revealed())
		assert.Equal(t, count, st.GuessedCount())
	}
}

func TestIsLivesExhaustedAtBudget(t *testing.T) {
	st, err := NewGuessState(secret("CAT"), 2)
	require.NoError(t, err)

	st.ApplyGuess('X')
	assert.False(t, st.IsLivesExhausted())
	st.ApplyGuess('Q')
	assert.True(t, st.IsLivesExhausted())
}
