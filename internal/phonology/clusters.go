// Package phonology holds the sound-level helpers used while designing a
// language: consonant cluster enumeration and a rough orthography-to-IPA
// converter.
package phonology

import (
	"sort"

	"github.com/samber/lo"
)

// MaxClusters bounds the number of clusters offered for onset, medial and
// coda selection.
const MaxClusters = 200

// GenerateClusters concatenates every ordered pair of distinct consonants.
// The result is deduplicated, capped at MaxClusters and sorted ascending.
// Enumeration stops as soon as the cap is reached, so with a large inventory
// the clusters kept are those built from the earliest consonants.
func GenerateClusters(consonants []string) []string {
	capacity := min(MaxClusters, len(consonants)*len(consonants))
	seen := make(map[string]struct{}, capacity)
	clusters := make([]string, 0, capacity)

outer:
	for _, first := range consonants {
		for _, second := range consonants {
			if first == second {
				continue
			}
			cluster := first + second
			if _, dup := seen[cluster]; !dup {
				seen[cluster] = struct{}{}
				clusters = append(clusters, cluster)
			}
			if len(clusters) >= MaxClusters {
				break outer
			}
		}
	}

	sort.Strings(clusters)
	return clusters
}

// PositionOptions lists what the wizard offers for a syllable position:
// the single consonants in inventory order followed by the generated clusters.
func PositionOptions(consonants []string) []string {
	singles := lo.Uniq(consonants)
	return append(singles, GenerateClusters(singles)...)
}
