package game

type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	// DetermineAttackOutcome compares rolls sorted highest first, rank by rank.
	DetermineAttackOutcome(attackerRolls, defenderRolls []Die) (attackerLosses, defenderLosses int)
}
