package game

import (
	"fmt"
	"riskodds/meta"
	"slices"
)

// Die is a single face value in [1,6].
type Die int

const (
	One Die = iota + 1
	Two
	Three
	Four
	Five
	Six
)

// AllDice returns every face value in ascending order.
func AllDice() []Die {
	dice := make([]Die, 0, meta.FACES)
	for d := One; d <= Six; d++ {
		dice = append(dice, d)
	}
	return dice
}

func (d Die) Valid() bool {
	return d >= One && d <= Six
}

// sortDescending returns a copy of dice ordered highest first.
func sortDescending(dice ...Die) []Die {
	sorted := slices.Clone(dice)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	return sorted
}

// permutations counts the distinct orderings of a multiset of dice.
func permutations(dice []Die) int {
	counts := make(map[Die]int, len(dice))
	for _, d := range dice {
		counts[d]++
	}
	n := factorial(len(dice))
	for _, c := range counts {
		n /= factorial(c)
	}
	return n
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

func formatDice(strategy Strategy, dice []Die) string {
	return fmt.Sprintf("%s%v", strategy, dice)
}
