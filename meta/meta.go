// meta/meta.go
package meta

// FACES defines the number of faces on a die.
const FACES = 6

// MAX_ATTACK_DICE defines the most dice an attacker may commit.
const MAX_ATTACK_DICE = 3

// MAX_DEFEND_DICE defines the most dice a defender may commit.
const MAX_DEFEND_DICE = 2
