// Package naming produces cosmetic names for languages the user left unnamed.
package naming

import (
	"math/rand/v2"
)

var (
	prefixes = []string{"Ara", "Bel", "Cor", "Dra", "Eli", "Fara", "Gyl", "Hara", "Ith", "Jora"}
	middles  = []string{"la", "ri", "ma", "ne", "sa", "lo", "na", "ro", "vi", "re"}
	suffixes = []string{"nion", "veth", "sira", "thar", "lune", "vash", "riel", "dora", "mora", "this"}
)

// Generator builds names as prefix + middle + suffix.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator uses rng when given, otherwise an unseeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate returns a fresh name such as "Aralanion".
func (g *Generator) Generate() string {
	return pick(g.rng, prefixes) + pick(g.rng, middles) + pick(g.rng, suffixes)
}

func pick(rng *rand.Rand, parts []string) string {
	return parts[rng.IntN(len(parts))]
}
