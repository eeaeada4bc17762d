package cmd

import (
	"context"
	"fmt"

	"mosb-portal/core/config"
	"mosb-portal/core/database"
	"mosb-portal/core/logger"
	"mosb-portal/core/reconcile"
	"mosb-portal/feature/matching"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reconcileCmd reconciles one LPO against inbound receipts from the terminal.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <lpoNumber>",
	Short: "Reconcile one LPO against inbound receipts",
	Long: `Builds the reconciliation report for a Local Purchase Order:
expected lines against summed inbound receipts, each line classified
MATCH, MISSING, or EXCESS.

Examples:
  # Reconcile a single LPO
  mosb-portal reconcile LPO-2024-000123`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	lpoNumber := matching.NormalizeLpoNumber(args[0])
	l.Info("Reconciling LPO", zap.String("lpo_number", lpoNumber))

	report, err := reconcile.Reconcile(ctx, matching.NewStore(db), lpoNumber)
	if err != nil {
		return fmt.Errorf("failed to reconcile: %w", err)
	}
	if report == nil {
		return fmt.Errorf("lpo %s not found", lpoNumber)
	}

	printReport(l, report)
	return nil
}

// printReport prints a formatted reconciliation report using logger.
func printReport(l *zap.Logger, report *reconcile.Report) {
	matched, missing, excess := 0, 0, 0
	for _, line := range report.Lines {
		switch line.Status {
		case reconcile.StatusMatch:
			matched++
		case reconcile.StatusMissing:
			missing++
		case reconcile.StatusExcess:
			excess++
		}
	}

	l.Info("Reconciliation report",
		zap.String("lpo_number", report.OrderID),
		zap.Int("lines", len(report.Lines)),
		zap.Int("matched", matched),
		zap.Int("missing", missing),
		zap.Int("excess", excess),
	)

	for _, line := range report.Lines {
		l.Info("Line",
			zap.String("item_code", line.ItemCode),
			zap.String("item_name", line.ItemName),
			zap.Int("ordered", line.OrderedQuantity),
			zap.Int("received", line.ReceivedQuantity),
			zap.Int("difference", line.Difference),
			zap.String("status", string(line.Status)),
		)
	}
}
