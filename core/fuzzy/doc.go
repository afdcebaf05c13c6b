// Package fuzzy ranks candidate titles against a noisy query string.
//
// The distance used here is a weighted Levenshtein distance in which characters
// that appear only in the query are free. Filenames routinely carry prefixes,
// suffixes, dates and extensions around the lecture title they transcribe, so
// "algebra-lecture-3.mp4" is only two edits away from "Lecture 3": the capital
// L and the space. Characters of the candidate title that cannot be matched in
// the query cost one each, whether they are dropped or substituted.
//
// # Usage
//
//	d := fuzzy.Distance("algebra-lecture-3.mp4", "Lecture 3") // 2
//
//	ranked := fuzzy.Rank(filename, []fuzzy.Candidate{
//	    {Key: "v1", Title: "Lecture 1"},
//	    {Key: "v3", Title: "Lecture 3"},
//	})
//	best := ranked[0]
package fuzzy
