package matching

import (
	"math"
	"sort"

	"career-guide/internal/domain/catalog"
)

type CareerMatch struct {
	Title           string                   `json:"title"`
	MatchPercentage float64                  `json:"match_percentage"`
	MatchingSkills  []string                 `json:"matching_skills"`
	MissingSkills   []string                 `json:"missing_skills"`
	Details         catalog.CareerDefinition `json:"details"`
}

// RecommendCareers scores every career by the share of its required skills
// present in extracted. Results are ordered by score, highest first; equal
// scores keep career order.
func RecommendCareers(extracted []string, careers catalog.CareerPaths) []CareerMatch {
	have := make(map[string]struct{}, len(extracted))
	for _, s := range extracted {
		have[s] = struct{}{}
	}

	out := make([]CareerMatch, 0, len(careers))
	for _, c := range careers {
		required := make(map[string]struct{}, len(c.RequiredSkills))
		for _, r := range c.RequiredSkills {
			required[r] = struct{}{}
		}

		matching := make([]string, 0)
		for _, s := range extracted {
			if _, ok := required[s]; ok {
				matching = append(matching, s)
			}
		}

		missing := make([]string, 0)
		for _, r := range c.RequiredSkills {
			if _, ok := have[r]; !ok {
				missing = append(missing, r)
			}
		}

		out = append(out, CareerMatch{
			Title:           c.Name,
			MatchPercentage: matchPercentage(len(matching), len(c.RequiredSkills)),
			MatchingSkills:  matching,
			MissingSkills:   missing,
			Details:         c,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

func matchPercentage(matched, required int) float64 {
	if required <= 0 {
		return 0
	}
	p := 100 * float64(matched) / float64(required)
	if p > 100 {
		p = 100
	}
	return math.Round(p*10) / 10
}

// TopMatches returns at most n leading matches.
func TopMatches(matches []CareerMatch, n int) []CareerMatch {
	if n < 0 {
		n = 0
	}
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}
