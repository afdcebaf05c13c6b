package fuzzy

// Costs holds the per-operation weights of a Levenshtein transformation from a
// source string into a target string.
type Costs struct {
	// Insert is charged for each character added from the target.
	Insert int
	// Delete is charged for each character dropped from the source.
	Delete int
	// Substitute is charged when a source character is replaced by a different target character.
	Substitute int
}

// DefaultCosts is the classic unit-cost Levenshtein distance.
var DefaultCosts = Costs{Insert: 1, Delete: 1, Substitute: 1}

// queryCosts turns a candidate title into the query. Inserting the query's
// extra characters is free.
var queryCosts = Costs{Insert: 0, Delete: 1, Substitute: 1}

// Weighted returns the minimal cost of transforming source into target.
// The comparison is rune based and case sensitive.
func Weighted(source, target string, costs Costs) int {
	s := []rune(source)
	t := []rune(target)

	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := 1; j <= len(t); j++ {
		prev[j] = prev[j-1] + costs.Insert
	}

	for i := 1; i <= len(s); i++ {
		curr[0] = prev[0] + costs.Delete
		for j := 1; j <= len(t); j++ {
			insert := curr[j-1] + costs.Insert
			del := prev[j] + costs.Delete
			sub := prev[j-1]
			if s[i-1] != t[j-1] {
				sub += costs.Substitute
			}
			curr[j] = min(insert, del, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(t)]
}

// Distance scores how far candidate is from query. Zero means every character
// of candidate appears, in order, inside query.
func Distance(query, candidate string) int {
	return Weighted(candidate, query, queryCosts)
}
