package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombinationNormalization(t *testing.T) {
	t.Run("two dice in either order are the same attack", func(t *testing.T) {
		require.Equal(t, NewAttackWithTwo(6, 5), NewAttackWithTwo(5, 6))
		require.Equal(t, []Die{6, 5}, NewAttackWithTwo(5, 6).Dice())
	})

	t.Run("three dice are sorted descending", func(t *testing.T) {
		require.Equal(t, []Die{5, 3, 1}, NewAttackWithThree(1, 5, 3).Dice())
		require.Equal(t, NewAttackWithThree(3, 1, 5), NewAttackWithThree(5, 3, 1))
	})

	t.Run("defending dice are sorted descending", func(t *testing.T) {
		require.Equal(t, []Die{4, 2}, NewDefendWithTwo(2, 4).Dice())
	})
}

func TestCombinationPermutations(t *testing.T) {
	tests := []struct {
		name        string
		combination Combination
		want        int
	}{
		{"single die", NewAttackWithOne(3), 1},
		{"pair", NewAttackWithTwo(3, 2), 2},
		{"double", NewDefendWithTwo(4, 4), 1},
		{"distinct triple", NewAttackWithThree(1, 2, 3), 6},
		{"triple with a pair", NewAttackWithThree(2, 2, 3), 3},
		{"triple of a kind", NewAttackWithThree(5, 5, 5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.combination.Permutations())
		})
	}
}

func TestCombinationString(t *testing.T) {
	require.Equal(t, "WithThree[6 5 3]", NewAttackWithThree(3, 6, 5).String())
	require.Equal(t, "WithOne[2]", NewDefendWithOne(2).String())
	require.Equal(t, "Strategy(7)", Strategy(7).String())
}
