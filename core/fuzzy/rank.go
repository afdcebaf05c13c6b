package fuzzy

import "sort"

// Candidate is a keyed title to rank against a query.
type Candidate struct {
	Key   string
	Title string
}

// Ranked is a Candidate with its distance from the query attached.
type Ranked struct {
	Candidate
	Distance int
}

// Rank scores every candidate against query and returns them ordered by
// ascending distance. Candidates with equal distance keep their input order.
func Rank(query string, candidates []Candidate) []Ranked {
	ranked := make([]Ranked, len(candidates))
	for i, c := range candidates {
		ranked[i] = Ranked{Candidate: c, Distance: Distance(query, c.Title)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}

// Best returns the closest candidate, or false when there are none.
func Best(query string, candidates []Candidate) (Ranked, bool) {
	ranked := Rank(query, candidates)
	if len(ranked) == 0 {
		return Ranked{}, false
	}
	return ranked[0], true
}
