// Package curriculum resolves which curriculum, and which video within it, a
// transcribed file belongs to.
//
// # Curriculum resolution
//
// Resolver tries two phases, first success wins:
//   - Attributes: the attribute service is asked about the filename. Exactly one
//     record names the course (and possibly the segment). Zero or several records
//     fall through.
//   - Batch title: curricula whose title contains the batch name, ignoring case.
//     Only a single match is accepted; zero or several leave the file unresolved.
//
// Lookup errors are never swallowed: they abort the whole run.
//
// # Segment resolution
//
// SegmentResolver returns the segment named by the attribute hint with distance 0,
// or else the segment whose title is nearest to the filename by fuzzy.Distance.
//
// # Store
//
// Store reads courses and their segments with GORM from the 'courses' and
// 'course_segments' tables (see models). VerifySchema checks the tables before a
// run; Migrate creates them for local setups.
package curriculum
