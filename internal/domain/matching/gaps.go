package matching

// FindGaps returns the catalog skills absent from extracted, in catalog order.
func FindGaps(extracted []string, catalog []string) []string {
	have := make(map[string]struct{}, len(extracted))
	for _, s := range extracted {
		have[s] = struct{}{}
	}

	out := make([]string, 0, len(catalog))
	seen := make(map[string]struct{}, len(catalog))
	for _, s := range catalog {
		if _, ok := have[s]; ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
