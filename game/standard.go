package game

import "riskodds/meta"

var _ Rules = (*StandardRules)(nil)

type StandardRules struct {
	AttackDice int
	DefendDice int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		AttackDice: meta.MAX_ATTACK_DICE,
		DefendDice: meta.MAX_DEFEND_DICE,
	}
}

func (sr *StandardRules) MaxAttackDice() int {
	return sr.AttackDice
}

func (sr *StandardRules) MaxDefendDice() int {
	return sr.DefendDice
}

func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []Die) (attackerLosses, defenderLosses int) {
	// Standard Risk attack outcome, ties go to the defender
	battles := min(len(attackerRolls), len(defenderRolls), sr.DefendDice)
	for i := 0; i < battles; i++ {
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}

// Resolve computes the casualties of a single matchup.
func (sr *StandardRules) Resolve(attack Attack, defend Defend) Losses {
	return ResolveWith(sr, attack, defend)
}
