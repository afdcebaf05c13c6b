// Package integrity provides preflight health checks for reconciliation runs.
//
// Reconciliation is all-or-nothing: one unreachable service or missing column
// aborts the whole run. These checks surface such problems before a run is
// triggered.
//
// # Checks Provided
//
//   - Schema: the curriculum tables carry every column the store reads.
//   - Archive: the report bucket exists (and can be created with fix).
//   - Upstream: the transcription vendor and the attribute service answer.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks, 503 when any fails.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
//   - GET /integrity/upstream : Checks that the remote services answer.
package integrity
