package checks

import (
	"fmt"
	"sort"

	"video-id-finder/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of a curriculum schema check.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists what one table lacks.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies that every table in required carries its columns.
// Inspection failures are recorded in the report rather than returned.
func CheckSchema(db *gorm.DB, required map[string][]string) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport, len(required)),
		Errors:  []string{},
	}

	tables := make([]string, 0, len(required))
	for table := range required {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, required[table])
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("failed to inspect table %s: %v", table, err))
			report.Tables[table] = TableReport{MissingColumns: []string{}, Status: "error"}
			report.Matched = false
			continue
		}

		tr := TableReport{MissingColumns: []string{}, Status: "ok"}
		if len(missing) > 0 {
			tr.MissingColumns = missing
			tr.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tr
	}

	return report, nil
}
