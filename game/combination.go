package game

// Attack is one of AttackWithOne, AttackWithTwo or AttackWithThree.
type Attack interface {
	Combination
	attack()
}

// Defend is one of DefendWithOne or DefendWithTwo.
type Defend interface {
	Combination
	defend()
}

type AttackWithOne struct {
	first Die
}

type AttackWithTwo struct {
	first, second Die
}

type AttackWithThree struct {
	first, second, third Die
}

type DefendWithOne struct {
	first Die
}

type DefendWithTwo struct {
	first, second Die
}

func NewAttackWithOne(d Die) AttackWithOne {
	return AttackWithOne{first: d}
}

// NewAttackWithTwo normalizes the dice highest first.
func NewAttackWithTwo(a, b Die) AttackWithTwo {
	dice := sortDescending(a, b)
	return AttackWithTwo{first: dice[0], second: dice[1]}
}

// NewAttackWithThree normalizes the dice highest first.
func NewAttackWithThree(a, b, c Die) AttackWithThree {
	dice := sortDescending(a, b, c)
	return AttackWithThree{first: dice[0], second: dice[1], third: dice[2]}
}

func NewDefendWithOne(d Die) DefendWithOne {
	return DefendWithOne{first: d}
}

// NewDefendWithTwo normalizes the dice highest first.
func NewDefendWithTwo(a, b Die) DefendWithTwo {
	dice := sortDescending(a, b)
	return DefendWithTwo{first: dice[0], second: dice[1]}
}

func (AttackWithOne) attack()   {}
func (AttackWithTwo) attack()   {}
func (AttackWithThree) attack() {}
func (DefendWithOne) defend()   {}
func (DefendWithTwo) defend()   {}

func (a AttackWithOne) Strategy() Strategy   { return WithOne }
func (a AttackWithTwo) Strategy() Strategy   { return WithTwo }
func (a AttackWithThree) Strategy() Strategy { return WithThree }
func (d DefendWithOne) Strategy() Strategy   { return WithOne }
func (d DefendWithTwo) Strategy() Strategy   { return WithTwo }

func (a AttackWithOne) Dice() []Die   { return []Die{a.first} }
func (a AttackWithTwo) Dice() []Die   { return []Die{a.first, a.second} }
func (a AttackWithThree) Dice() []Die { return []Die{a.first, a.second, a.third} }
func (d DefendWithOne) Dice() []Die   { return []Die{d.first} }
func (d DefendWithTwo) Dice() []Die   { return []Die{d.first, d.second} }

func (a AttackWithOne) Permutations() int   { return 1 }
func (a AttackWithTwo) Permutations() int   { return permutations(a.Dice()) }
func (a AttackWithThree) Permutations() int { return permutations(a.Dice()) }
func (d DefendWithOne) Permutations() int   { return 1 }
func (d DefendWithTwo) Permutations() int   { return permutations(d.Dice()) }

func (a AttackWithOne) String() string   { return formatDice(a.Strategy(), a.Dice()) }
func (a AttackWithTwo) String() string   { return formatDice(a.Strategy(), a.Dice()) }
func (a AttackWithThree) String() string { return formatDice(a.Strategy(), a.Dice()) }
func (d DefendWithOne) String() string   { return formatDice(d.Strategy(), d.Dice()) }
func (d DefendWithTwo) String() string   { return formatDice(d.Strategy(), d.Dice()) }
