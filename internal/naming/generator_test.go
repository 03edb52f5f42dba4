package naming

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitName(t *testing.T, name string) (string, string, string) {
	t.Helper()
	for _, p := range prefixes {
		rest, ok := strings.CutPrefix(name, p)
		if !ok {
			continue
		}
		for _, m := range middles {
			tail, ok := strings.CutPrefix(rest, m)
			if !ok {
				continue
			}
			for _, s := range suffixes {
				if tail == s {
					return p, m, s
				}
			}
		}
	}
	t.Fatalf("name %q is not prefix+middle+suffix", name)
	return "", "", ""
}

func TestGenerateUsesWordParts(t *testing.T) {
	g := NewGenerator(nil)
	for i := 0; i < 100; i++ {
		splitName(t, g.Generate())
	}
}

func TestGenerateIsDeterministicWithSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewPCG(7, 11)))
	b := NewGenerator(rand.New(rand.NewPCG(7, 11)))
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerateCoversParts(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	seen := make(map[string]struct{})
	for i := 0; i < 2000; i++ {
		p, _, _ := splitName(t, g.Generate())
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, len(prefixes))
}
