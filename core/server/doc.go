// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port and the API key that protects the
// /videoids routes. An empty key disables authentication, which is only meant
// for local runs.
package server
