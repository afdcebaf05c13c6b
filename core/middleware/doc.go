// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: API key validation of the X-API-Key header, built on fiber keyauth.
//   - rayid: assigns every request a RayID, stored in the context and echoed
//     in the X-Ray-ID response header for tracing.
//
// Register rayid first so every later log line can carry the id.
package middleware
