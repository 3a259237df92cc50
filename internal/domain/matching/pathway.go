package matching

import (
	"math/rand/v2"

	"career-guide/internal/domain/catalog"
)

// Chooser picks an index in [0, n) for n > 0.
type Chooser interface {
	Choose(n int) int
}

type ChooserFunc func(n int) int

func (f ChooserFunc) Choose(n int) int { return f(n) }

// RandomChooser picks uniformly at random. It is safe for concurrent use.
type RandomChooser struct{}

func (RandomChooser) Choose(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// GeneratePathway assigns one resource to each gap skill that has any.
// Skills without resources are left out.
func GeneratePathway(gaps []string, resources catalog.Resources, chooser Chooser) map[string]catalog.Resource {
	if chooser == nil {
		chooser = RandomChooser{}
	}

	pathway := make(map[string]catalog.Resource)
	for _, skill := range gaps {
		list := resources[skill]
		if len(list) == 0 {
			continue
		}
		idx := clampInt(chooser.Choose(len(list)), 0, len(list)-1)
		pathway[skill] = list[idx]
	}
	return pathway
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
