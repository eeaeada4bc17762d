package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mosb-portal/core/config"
	"mosb-portal/core/database"
	"mosb-portal/core/logger"
	"mosb-portal/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for history commands
	historyLimit  int
	historyOutput string
	historyYes    bool
)

// historyCmd is the parent command for scan history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the scan history log",
	Long:  `Exports the scan history log as CSV or clears it.`,
}

// historyExportCmd writes the recent scan history as CSV.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recent scan history as CSV",
	Long: `Writes the scan history log in CSV format.

Examples:
  # Print the 10 most recent scans
  mosb-portal history export

  # Export the whole log to a file
  mosb-portal history export --limit 0 -o scans.csv`,
	RunE: runHistoryExport,
}

// historyClearCmd wipes the scan history log.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the scan history log",
	Long: `Deletes every entry in the persisted scan history log.

Examples:
  # Clear with interactive confirmation
  mosb-portal history clear

  # Clear with auto-confirm (non-interactive)
  mosb-portal history clear --yes`,
	RunE: runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyExportCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of entries to export (0 for the whole log)")
	historyExportCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Write CSV to a file instead of stdout")
	historyClearCmd.Flags().BoolVar(&historyYes, "yes", false, "Auto-confirm the destructive action (non-interactive)")

	RootCmd.AddCommand(historyCmd)
}

// openHistoryStore connects to the database and loads the persisted log.
func openHistoryStore() (*history.Store, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	medium, err := history.NewGormMedium(db)
	if err != nil {
		return nil, nil, err
	}

	store, err := history.NewStore(medium, cfg.History.MaxSize)
	if err != nil {
		return nil, nil, err
	}
	return store, l, nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, l, err := openHistoryStore()
	if err != nil {
		return err
	}

	entries := store.Recent(historyLimit)
	l.Info("Exporting scan history", zap.Int("entries", len(entries)))

	out := os.Stdout
	if historyOutput != "" {
		f, err := os.Create(historyOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return history.WriteCSV(out, entries)
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, l, err := openHistoryStore()
	if err != nil {
		return err
	}

	if store.Len() == 0 {
		l.Info("Scan history is already empty")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	l.Info("Scan history cleared")
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if historyYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
