package matching

import (
	"context"
	"strings"
)

// Extractor finds catalog skills mentioned in free text. Implementations must
// return a subset of their catalog, in catalog order, without duplicates.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, text string) ([]string, error)
}

// ExtractSkills reports every catalog skill whose lower-cased name occurs in the
// lower-cased text. It does plain substring matching, so short names can hit
// inside unrelated words.
func ExtractSkills(text string, catalog []string) []string {
	lower := strings.ToLower(text)

	out := make([]string, 0)
	seen := make(map[string]struct{}, len(catalog))
	for _, skill := range catalog {
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			seen[skill] = struct{}{}
			out = append(out, skill)
		}
	}
	return out
}

type KeywordExtractor struct {
	catalog []string
}

func NewKeywordExtractor(catalog []string) *KeywordExtractor {
	c := make([]string, len(catalog))
	copy(c, catalog)
	return &KeywordExtractor{catalog: c}
}

func (e *KeywordExtractor) Name() string { return "keyword" }

func (e *KeywordExtractor) Extract(_ context.Context, text string) ([]string, error) {
	if e == nil {
		return []string{}, nil
	}
	return ExtractSkills(text, e.catalog), nil
}

// RestrictToCatalog maps candidate names onto catalog spelling case-insensitively
// and returns the hits in catalog order. Unknown candidates are dropped.
func RestrictToCatalog(candidates []string, catalog []string) []string {
	want := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		want[c] = struct{}{}
	}

	out := make([]string, 0, len(want))
	seen := make(map[string]struct{}, len(want))
	for _, skill := range catalog {
		key := strings.ToLower(skill)
		if _, ok := want[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}
