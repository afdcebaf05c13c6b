// Package config provides configuration management for the video id finder.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file through godotenv. Defaults come from the `default` struct tags of each
// section, and nested keys map to upper-case variables joined by underscores
// (reconcile.threshold is RECONCILE_THRESHOLD).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: curriculum database driver and connection details
//   - Storage: MinIO/S3 credentials and the report archive bucket
//   - Log: logging level and format
//   - ThreePlay: transcription vendor endpoint, key and paging
//   - CLAPI: file attribute service endpoint and token
//   - Reconcile: acceptance threshold and page guard
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reconcile.Threshold)
package config
