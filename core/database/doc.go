// Package database opens the curriculum store connection and inspects its schema.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and
// tests) connections from the application's configuration.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies connection pool and
// timeout settings and pings the database before returning.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for both dialects. The curriculum
// feature uses it to verify the tables it reads before a run starts.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.GetTableColumns(db, "courses")
package database
