package search

// Hamming counts the letter positions where a and b differ. Unequal lengths
// contribute the length difference on top of the compared prefix.
//
// As an A* heuristic it is admissible and consistent under uniform 1.0 edge
// costs: every differing position needs at least one substitution, and one
// substitution changes the count by at most one. Rare-word penalties break
// admissibility (the estimate stays the same while true remaining cost may
// be cheaper via a detour); see WithoutHeuristic.
//
// Complexity: O(min(len(a), len(b))).
func Hamming(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	d := len(a) + len(b) - 2*n
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}
