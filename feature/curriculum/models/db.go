package models

import (
	"sort"

	"video-id-finder/core/reconcile"
)

// Course represents the 'courses' table of the curriculum store.
type Course struct {
	ID         uint            `gorm:"column:id;primaryKey"`
	Identifier string          `gorm:"column:nid;size:64;index"`
	Title      string          `gorm:"column:title;size:255"`
	Segments   []CourseSegment `gorm:"foreignKey:CourseID"`
}

// TableName overrides the table name for Course.
func (Course) TableName() string {
	return "courses"
}

// CourseSegment represents the 'course_segments' table.
// GroupIndex is the day (or other grouping) the segment belongs to and
// Position its order within that group.
type CourseSegment struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	CourseID   uint   `gorm:"column:course_id;index"`
	GroupIndex int    `gorm:"column:group_index"`
	Position   int    `gorm:"column:position"`
	SegmentID  string `gorm:"column:segment_id;size:64"`
	Title      string `gorm:"column:title;size:255"`
}

// TableName overrides the table name for CourseSegment.
func (CourseSegment) TableName() string {
	return "course_segments"
}

// ToCurriculum converts the stored course into the grouped, ordered shape
// used by the resolvers. Empty group indexes are not kept.
func (c Course) ToCurriculum() reconcile.Curriculum {
	segments := make([]CourseSegment, len(c.Segments))
	copy(segments, c.Segments)
	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].GroupIndex != segments[j].GroupIndex {
			return segments[i].GroupIndex < segments[j].GroupIndex
		}
		return segments[i].Position < segments[j].Position
	})

	groups := [][]reconcile.Segment{}
	for i, s := range segments {
		if i == 0 || s.GroupIndex != segments[i-1].GroupIndex {
			groups = append(groups, []reconcile.Segment{})
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], reconcile.Segment{
			SegmentID: s.SegmentID,
			Title:     s.Title,
		})
	}

	return reconcile.Curriculum{
		Identifier: c.Identifier,
		Title:      c.Title,
		Segments:   groups,
	}
}
