package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"video-id-finder/core/config"
	"video-id-finder/core/logger"
	"video-id-finder/core/reconcile"
	"video-id-finder/feature/videoid"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runOutput    string
	runThreshold int
	runArchive   bool
	runQuiet     bool
)

// runCmd performs one reconciliation and prints the accepted table.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Match transcribed files to curriculum video ids",
	Long: `Walks every file of the transcription vendor, finds the curriculum and
segment each file belongs to, and prints the accepted file_id,video_id table.

Rows whose title distance exceeds the threshold are reported as indeterminate
on stderr together with the tallies and every file that could not be placed.

Examples:
  # Print the table to stdout
  run

  # Write to a file with a stricter threshold
  run --output ids.csv --threshold 1

  # Also archive the report to object storage
  run --archive`,
	RunE: runReconcile,
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Write the accepted table to this file instead of stdout")
	runCmd.Flags().IntVar(&runThreshold, "threshold", reconcile.DefaultThreshold, "Maximum distance accepted into the table (overrides RECONCILE_THRESHOLD)")
	runCmd.Flags().BoolVar(&runArchive, "archive", false, "Upload the report to object storage (also enabled by STORAGE_ENABLED)")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Skip the diagnostics tables on stderr")

	RootCmd.AddCommand(runCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	threshold := cfg.Reconcile.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = runThreshold
	}
	if threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d", threshold)
	}

	db, err := connectCurriculum(cfg)
	if err != nil {
		return err
	}

	remote, err := buildClients(cfg)
	if err != nil {
		return err
	}
	spec := buildSpec(cfg, db, remote, l)

	store, err := buildStorage(ctx, cfg, runArchive || cfg.Storage.Enabled)
	if err != nil {
		return err
	}
	archive := buildArchive(store, cfg)

	l.Info("Starting reconciliation", zap.Int("threshold", threshold), zap.Bool("archive", archive != nil))

	report, err := videoid.NewService(spec, threshold, archive, l).Run(ctx)
	if err != nil {
		return err
	}

	if err := writeAccepted(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	logDiagnostics(l, report)
	if !runQuiet {
		printDiagnostics(cmd.ErrOrStderr(), report)
	}
	return nil
}

func writeAccepted(stdout io.Writer, report *reconcile.Report) error {
	if runOutput == "" {
		return report.WriteCSV(stdout)
	}

	f, err := os.Create(runOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return f.Close()
}

// logDiagnostics prints the run summary using logger.
func logDiagnostics(l *zap.Logger, report *reconcile.Report) {
	t := report.Tallies
	l.Info("Reconciliation report",
		zap.String("run_id", report.RunID),
		zap.Int("pages", report.Pages),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
		zap.Int("accepted", len(report.Accepted)),
		zap.Int("found", t.Found),
		zap.Int("indeterminate", t.Indeterminate),
		zap.Int("skipped", t.Skipped),
		zap.Int("duplicates", t.Duplicates),
		zap.Int("unresolved_segments", t.UnresolvedSegments),
		zap.Int("ambiguous_attributes", t.AmbiguousAttributes),
		zap.Int("ambiguous_titles", t.AmbiguousTitles),
	)
}

func printDiagnostics(w io.Writer, report *reconcile.Report) {
	fmt.Fprintln(w, talliesTable(report.Tallies))
	if len(report.Indeterminate) > 0 {
		fmt.Fprintf(w, "\nIndeterminate rows (distance > %d)\n", report.Threshold)
		fmt.Fprintln(w, indeterminateTable(report.Indeterminate))
	}
	if len(report.Unresolved) > 0 {
		fmt.Fprintln(w, "\nUnresolved files")
		fmt.Fprintln(w, unresolvedTable(report.Unresolved))
	}
}
