package sim

import (
	"fmt"
	"math/rand"
)

// NameGenerator produces display labels for new passengers.
// seq is a run-wide counter starting at 1 that makes labels unique.
type NameGenerator interface {
	Name(seq int) string
}

var (
	firstNames = []string{"Dmytro", "Anna", "Mark", "Maria", "Sergiy", "Oleh", "Iryna", "Taras", "Olena", "Nazar"}
	lastNames  = []string{"Shevchenko", "Koval", "Melnyk", "Bondar", "Tkachenko", "Ivanenko", "Petrenko", "Savchenko"}
)

// RandomNames picks a first and last name and appends "#seq".
type RandomNames struct {
	rng *rand.Rand
}

// NewRandomNames creates a RandomNames drawing from rng.
func NewRandomNames(rng *rand.Rand) *RandomNames {
	return &RandomNames{rng: rng}
}

func (n *RandomNames) Name(seq int) string {
	first := firstNames[n.rng.Intn(len(firstNames))]
	last := lastNames[n.rng.Intn(len(lastNames))]
	return fmt.Sprintf("%s %s #%d", first, last, seq)
}
