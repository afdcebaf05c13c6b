package reconcile

import "time"

// Batch is a named group of files in the transcription vendor's registry.
type Batch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FileRecord is one transcribed media file.
type FileRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BatchID string `json:"batch_id"`
}

// Segment is one addressable video of a curriculum.
type Segment struct {
	SegmentID string `json:"segment_id"`
	Title     string `json:"title"`
}

// Curriculum is a course with its segments grouped (usually by day).
// Both the groups and the segments inside them are ordered.
type Curriculum struct {
	Identifier string      `json:"identifier"`
	Title      string      `json:"title"`
	Segments   [][]Segment `json:"segments"`
}

// FlatSegments returns every segment in group, then position, order.
func (c *Curriculum) FlatSegments() []Segment {
	var flat []Segment
	for _, group := range c.Segments {
		flat = append(flat, group...)
	}
	return flat
}

// FileAttributes is what the attribute-lookup service knows about a filename.
// SegmentID is empty when the service does not know the segment.
type FileAttributes struct {
	Filename         string `json:"filename"`
	CourseIdentifier string `json:"course"`
	SegmentID        string `json:"segment,omitempty"`
}

// MatchSource tells which phase resolved a file's curriculum.
type MatchSource string

const (
	// SourceNone means no curriculum was resolved.
	SourceNone MatchSource = ""
	// SourceAttributes means the attribute-lookup service named the curriculum.
	SourceAttributes MatchSource = "attributes"
	// SourceBatchTitle means the batch name matched exactly one curriculum title.
	SourceBatchTitle MatchSource = "batch_title"
)

// Reason explains a per-file outcome that did not produce a row.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonNoAttributes        Reason = "no_attributes"
	ReasonAmbiguousAttributes Reason = "ambiguous_attributes"
	ReasonUnknownCourse       Reason = "unknown_course"
	ReasonNoTitleMatch        Reason = "no_title_match"
	ReasonAmbiguousTitle      Reason = "ambiguous_title"
	ReasonUnknownSegment      Reason = "unknown_segment"
	ReasonNoSegments          Reason = "no_segments"
)

// Resolution is the result of resolving a file's curriculum.
// Curriculum is nil when neither phase succeeded.
type Resolution struct {
	Curriculum *Curriculum
	// SegmentID is the authoritative segment hint, empty when unknown.
	SegmentID string
	Source    MatchSource
	// AttributeReason records why the attribute phase did not resolve, if it didn't.
	AttributeReason Reason
	// TitleReason records why the batch-title phase did not resolve, if it ran and failed.
	TitleReason Reason
}

// Resolved reports whether a curriculum was found.
func (r Resolution) Resolved() bool {
	return r.Curriculum != nil
}

// SegmentMatch is the segment chosen for a file and its distance.
// Distance 0 is reserved for matches made by segment id.
type SegmentMatch struct {
	Segment
	Distance int `json:"distance"`
}

// Row is one resolved file of the result table.
type Row struct {
	Filename     string `json:"filename"`
	BatchName    string `json:"batch_name"`
	SegmentTitle string `json:"segment_title"`
	FileID       string `json:"file_id"`
	VideoID      string `json:"video_id"`
	Distance     int    `json:"distance"`
}

// Outcome is the per-file result of a run.
type Outcome string

const (
	OutcomeFound             Outcome = "found"
	OutcomeSkipped           Outcome = "skipped"
	OutcomeDuplicate         Outcome = "duplicate"
	OutcomeUnresolvedSegment Outcome = "unresolved_segment"
)

// Unresolved describes a file that produced no row.
type Unresolved struct {
	FileID    string  `json:"file_id"`
	Filename  string  `json:"filename"`
	BatchName string  `json:"batch_name"`
	Outcome   Outcome `json:"outcome"`
	Reason    Reason  `json:"reason"`
}

// Tallies are the run-scoped outcome counters.
type Tallies struct {
	// Found counts rows added to the table.
	Found int `json:"found"`

	// Skipped counts files whose curriculum could not be resolved.
	Skipped int `json:"skipped"`

	// Duplicates counts resolved files whose id was already in the table.
	Duplicates int `json:"duplicates"`

	// UnresolvedSegments counts files with a curriculum but no matching segment.
	UnresolvedSegments int `json:"unresolved_segments"`

	// AmbiguousAttributes counts files for which the attribute service returned several records.
	AmbiguousAttributes int `json:"ambiguous_attributes"`

	// AmbiguousTitles counts files whose batch name matched several curricula.
	AmbiguousTitles int `json:"ambiguous_titles"`

	// Indeterminate counts rows whose distance exceeds the threshold. Set by BuildReport.
	Indeterminate int `json:"indeterminate"`
}

// Result is the raw output of one engine run.
type Result struct {
	RunID      string       `json:"run_id"`
	Rows       []Row        `json:"rows"`
	Tallies    Tallies      `json:"tallies"`
	Unresolved []Unresolved `json:"unresolved"`
	Pages      int          `json:"pages"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// Report partitions a run's rows by the acceptance threshold.
type Report struct {
	RunID         string       `json:"run_id"`
	Threshold     int          `json:"threshold"`
	Accepted      []Row        `json:"accepted"`
	Indeterminate []Row        `json:"indeterminate"`
	Unresolved    []Unresolved `json:"unresolved"`
	Tallies       Tallies      `json:"tallies"`
	Pages         int          `json:"pages"`
	StartedAt     time.Time    `json:"started_at"`
	FinishedAt    time.Time    `json:"finished_at"`
}
