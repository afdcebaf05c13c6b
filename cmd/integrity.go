package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"video-id-finder/core/config"
	"video-id-finder/core/database"
	"video-id-finder/core/logger"
	"video-id-finder/core/storage"
	"video-id-finder/feature/integrity"

	"github.com/spf13/cobra"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that a reconciliation run can succeed",
	Long: `Checks the curriculum schema, the report archive bucket and the remote
services a run depends on. Exits with status 1 when any check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the curriculum tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// archiveCmd represents the integrity archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Check (and optionally create) the report archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// upstreamCmd represents the integrity upstream command
var upstreamCmd = &cobra.Command{
	Use:   "upstream",
	Short: "Check the transcription vendor and the attribute service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, archiveCmd, upstreamCmd)

	archiveCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when it is missing")
}

func runIntegrityChecks(ctx context.Context, doSchema, doArchive, doUpstream bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	deps := integrity.Deps{Bucket: cfg.Storage.Bucket, Region: cfg.Storage.Region}

	if doSchema {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		deps.DB = db
	}

	if doArchive {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		deps.Storage = client
	}

	if doUpstream {
		remote, err := buildClients(cfg)
		if err != nil {
			return err
		}
		deps.Batches = remote.vendor
		deps.Attributes = remote.attributes
	}

	svc := integrity.NewService(deps, logg)

	if doArchive && fixFlag {
		if err := svc.FixArchive(ctx); err != nil {
			return err
		}
	}

	report := svc.CheckAll(ctx)
	printIntegrityReport(report)

	if !report.Healthy {
		return fmt.Errorf("integrity check failed")
	}
	logg.Info("Integrity check passed")
	return nil
}

func printIntegrityReport(report *integrity.Report) {
	rows := [][]string{}

	if report.Schema != nil {
		tables := make([]string, 0, len(report.Schema.Tables))
		for name := range report.Schema.Tables {
			tables = append(tables, name)
		}
		sort.Strings(tables)
		for _, name := range tables {
			tr := report.Schema.Tables[name]
			detail := "-"
			if len(tr.MissingColumns) > 0 {
				detail = fmt.Sprintf("missing %v", tr.MissingColumns)
			}
			rows = append(rows, []string{"schema", name, tr.Status, detail})
		}
	}

	if report.Archive != nil {
		status := "ok"
		if !report.Archive.BucketExists {
			status = "missing"
		}
		rows = append(rows, []string{"archive", report.Archive.Bucket, status, strconv.Itoa(report.Archive.ArchivedRuns) + " objects"})
	}

	for _, u := range report.Upstream {
		status := "ok"
		if !u.Reachable {
			status = "error"
		}
		rows = append(rows, []string{"upstream", u.Name, status, u.Detail})
	}

	names := make([]string, 0, len(report.Errors))
	for name := range report.Errors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []string{name, "-", "error", report.Errors[name]})
	}

	fmt.Fprintln(os.Stderr, renderTable([]string{"Check", "Target", "Status", "Detail"}, rows, nil))
}
