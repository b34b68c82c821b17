package game

import (
	"riskodds/meta"
	"slices"
)

// AllAttacks enumerates every normalized attack, grouped by strategy with the
// most dice first.
func AllAttacks() []Attack {
	var attacks []Attack
	for _, s := range AttackStrategies {
		attacks = append(attacks, Attacks(s)...)
	}
	return attacks
}

// AllDefends enumerates every normalized defence, grouped by strategy with the
// most dice first.
func AllDefends() []Defend {
	var defends []Defend
	for _, s := range DefendStrategies {
		defends = append(defends, Defends(s)...)
	}
	return defends
}

// Attacks enumerates the attacks committing exactly s.Dice() dice.
func Attacks(s Strategy) []Attack {
	if s < WithOne || s.Dice() > meta.MAX_ATTACK_DICE {
		return nil
	}
	var attacks []Attack
	for _, dice := range multisets(s.Dice(), Six) {
		switch s {
		case WithOne:
			attacks = append(attacks, NewAttackWithOne(dice[0]))
		case WithTwo:
			attacks = append(attacks, NewAttackWithTwo(dice[0], dice[1]))
		case WithThree:
			attacks = append(attacks, NewAttackWithThree(dice[0], dice[1], dice[2]))
		}
	}
	return attacks
}

// Defends enumerates the defences committing exactly s.Dice() dice.
func Defends(s Strategy) []Defend {
	if s < WithOne || s.Dice() > meta.MAX_DEFEND_DICE {
		return nil
	}
	var defends []Defend
	for _, dice := range multisets(s.Dice(), Six) {
		switch s {
		case WithOne:
			defends = append(defends, NewDefendWithOne(dice[0]))
		case WithTwo:
			defends = append(defends, NewDefendWithTwo(dice[0], dice[1]))
		}
	}
	return defends
}

// multisets returns every non-increasing sequence of size dice no higher than
// highest.
func multisets(size int, highest Die) [][]Die {
	if size <= 0 {
		return [][]Die{nil}
	}
	var out [][]Die
	for _, d := range slices.Backward(AllDice()) {
		if d > highest {
			continue
		}
		for _, rest := range multisets(size-1, d) {
			out = append(out, append([]Die{d}, rest...))
		}
	}
	return out
}
