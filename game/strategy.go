package game

import "fmt"

// Strategy classifies a combination by how many dice it commits.
type Strategy int

const (
	WithOne Strategy = iota + 1
	WithTwo
	WithThree
)

// AttackStrategies lists the attack strategies, most dice first.
var AttackStrategies = []Strategy{WithThree, WithTwo, WithOne}

// DefendStrategies lists the defend strategies, most dice first.
var DefendStrategies = []Strategy{WithTwo, WithOne}

// Dice returns the number of dice committed.
func (s Strategy) Dice() int {
	return int(s)
}

func (s Strategy) String() string {
	switch s {
	case WithOne:
		return "WithOne"
	case WithTwo:
		return "WithTwo"
	case WithThree:
		return "WithThree"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// MarshalText renders the strategy by name in reports.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
