package curriculum

import (
	"video-id-finder/core/fuzzy"
	"video-id-finder/core/reconcile"
)

// minFuzzyDistance is the floor for title matches.
const minFuzzyDistance = 1

// SegmentResolver picks the segment a file transcribes within its curriculum.
type SegmentResolver struct{}

// NewSegmentResolver creates a new segment resolver.
func NewSegmentResolver() *SegmentResolver {
	return &SegmentResolver{}
}

// ResolveSegment returns the segment carrying segmentID with distance 0 when a
// hint is given. Without a hint it returns the segment whose title is closest
// to filename; ties go to the first segment in traversal order. A title match
// never scores below 1 so distance 0 always means an id match.
func (r *SegmentResolver) ResolveSegment(curriculum *reconcile.Curriculum, filename, segmentID string) (reconcile.SegmentMatch, reconcile.Reason, bool) {
	segments := curriculum.FlatSegments()

	if segmentID != "" {
		for _, s := range segments {
			if s.SegmentID == segmentID {
				return reconcile.SegmentMatch{Segment: s, Distance: 0}, reconcile.ReasonNone, true
			}
		}
		return reconcile.SegmentMatch{}, reconcile.ReasonUnknownSegment, false
	}

	candidates := make([]fuzzy.Candidate, len(segments))
	for i, s := range segments {
		candidates[i] = fuzzy.Candidate{Key: s.SegmentID, Title: s.Title}
	}

	best, ok := fuzzy.Best(filename, candidates)
	if !ok {
		return reconcile.SegmentMatch{}, reconcile.ReasonNoSegments, false
	}

	return reconcile.SegmentMatch{
		Segment:  reconcile.Segment{SegmentID: best.Key, Title: best.Title},
		Distance: max(best.Distance, minFuzzyDistance),
	}, reconcile.ReasonNone, true
}
