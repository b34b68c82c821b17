package game

import "fmt"

// Losses are the casualties of one resolved matchup.
type Losses struct {
	Attacker int `yaml:"attacker"`
	Defender int `yaml:"defender"`
}

func (l Losses) Add(other Losses) Losses {
	return Losses{
		Attacker: l.Attacker + other.Attacker,
		Defender: l.Defender + other.Defender,
	}
}

// Scale multiplies both sides, used to weight a matchup by its roll count.
func (l Losses) Scale(n int) Losses {
	return Losses{
		Attacker: l.Attacker * n,
		Defender: l.Defender * n,
	}
}

// Total is the number of compared dice pairs that produced these losses.
func (l Losses) Total() int {
	return l.Attacker + l.Defender
}

func (l Losses) String() string {
	return fmt.Sprintf("A: %d, D: %d", l.Attacker, l.Defender)
}
