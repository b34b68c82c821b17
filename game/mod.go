package game

// Combination is the set of dice one side commits to a single combat round.
// Dice are always stored highest first, so rank i of an attack lines up with
// rank i of a defence.
type Combination interface {
	Strategy() Strategy
	Dice() []Die
	// Permutations is the number of ordered rolls that normalize to this combination.
	Permutations() int
	String() string
}

// Resolve computes the casualties of one matchup under the standard rules.
func Resolve(attack Attack, defend Defend) Losses {
	return standard.Resolve(attack, defend)
}

// ResolveWith computes the casualties of one matchup under r.
func ResolveWith(r Rules, attack Attack, defend Defend) Losses {
	attackerLosses, defenderLosses := r.DetermineAttackOutcome(attack.Dice(), defend.Dice())
	return Losses{
		Attacker: attackerLosses,
		Defender: defenderLosses,
	}
}

var standard = NewStandardRules()
