package cmd

import (
	"fmt"

	"video-id-finder/core/config"
	"video-id-finder/core/database"
	"video-id-finder/core/logger"
	"video-id-finder/feature/curriculum"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the curriculum tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the curriculum tables",
	Long:  `Creates or updates the courses and course_segments tables in the configured database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := curriculum.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate curriculum tables: %w", err)
		}

		l.Info("Curriculum tables are up to date", zap.String("driver", cfg.Database.Driver), zap.String("database", cfg.Database.Name))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
