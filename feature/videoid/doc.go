// Package videoid exposes reconciliation runs to the CLI and the HTTP server.
//
// A Service builds a fresh reconcile.Engine for every run, partitions the
// result with the configured threshold and keeps the newest report in memory.
// Concurrent triggers share one in-flight run. When archival is enabled each
// report is also written to object storage:
//
//	reports/<run_id>/accepted.csv     file_id,video_id table
//	reports/<run_id>/diagnostics.json full report with tallies and unresolved files
//
// # Routes
//
//	POST /videoids/runs                     run now, returns the report
//	GET  /videoids/runs                     archived run ids
//	GET  /videoids/runs/latest              newest report
//	GET  /videoids/runs/latest/accepted.csv newest accepted table
//	GET  /videoids/runs/:id/accepted.csv    archived accepted table
package videoid
