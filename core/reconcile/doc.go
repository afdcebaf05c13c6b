// Package reconcile maps transcribed vendor files to the curriculum videos they
// transcribe.
//
// A run streams the vendor's file registry page by page, resolves each file's
// curriculum and segment through pluggable collaborators, deduplicates by file
// id and tallies every outcome. The resulting table is then partitioned by a
// confidence threshold into accepted and indeterminate rows.
//
// # Architecture
//
// 1. Engine: single-threaded state machine over one run. It loads all batches
//    eagerly, then requests file pages until an empty page ends the stream.
//    Files are processed strictly in order, one at a time.
//
// 2. Collaborators: BatchLister and FilePager (transcription vendor),
//    CurriculumResolver and SegmentResolver (see feature/curriculum).
//
// 3. Report: BuildReport partitions rows by distance and WriteCSV emits the
//    accepted (file_id, video_id) table.
//
// # Failure model
//
// Errors marked ErrTransport, ErrStore or ErrIntegrity abort the run and no
// partial result is returned. Files whose curriculum or segment cannot be
// resolved, and repeated file ids, are normal outcomes: they are counted in
// Tallies and listed in Result.Unresolved.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Batches:   vendor,
//	    Files:     vendor,
//	    Curricula: curriculum.NewResolver(attributes, store, logger),
//	    Segments:  curriculum.NewSegmentResolver(),
//	}
//
//	result, err := reconcile.NewEngine(spec, logger).Run(ctx)
//	if err != nil {
//	    return err
//	}
//	report := reconcile.BuildReport(result, reconcile.DefaultThreshold)
//	err = report.WriteCSV(os.Stdout)
package reconcile
