package metrics

// InnerJoin joins left and right rows on equal keys with relational inner
// join semantics: one output row per matching pair (fan-out on multiple
// right matches), unmatched rows on either side dropped. Rows with an empty
// key never match. Output preserves left order, then right order within a
// left row's matches.
func InnerJoin[L, R, J any](
	left []L,
	right []R,
	leftKey func(L) string,
	rightKey func(R) string,
	merge func(L, R) J,
) []J {
	index := make(map[string][]R, len(right))
	for _, r := range right {
		k := rightKey(r)
		if k == "" {
			continue
		}
		index[k] = append(index[k], r)
	}

	var joined []J
	for _, l := range left {
		k := leftKey(l)
		if k == "" {
			continue
		}
		for _, r := range index[k] {
			joined = append(joined, merge(l, r))
		}
	}
	return joined
}
