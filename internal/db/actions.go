package db

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/wordlist-builder/internal/common"
	dbpkg "github.com/dtnitsch/wordlist-builder/pkg/db"
	"github.com/urfave/cli/v2"
)

func openLedger(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	// Reading history needs no opt-in, so fall back to the default ledger.
	path := common.StringOption(c, "db", cfg.DB)
	if path == "" {
		path = dbpkg.DefaultDBName
	}
	database, err := dbpkg.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// RunsAction lists recent runs.
func RunsAction(c *cli.Context) error {
	database, err := openLedger(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	// Print table header
	fmt.Fprintf(w, "%-6s %-20s %-8s %-8s %-8s %-30s\n",
		"ID", "Created", "Pipeline", "Status", "Entries", "Input")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, r := range runs {
		fmt.Fprintf(w, "%-6d %-20s %-8s %-8s %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Pipeline,
			r.Status,
			r.EntryCount,
			r.InputPath,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'wordlist-builder runs show <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := openLedger(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}
	outputs, err := database.GetRunOutputs(runID)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Run %d\n", run.RunID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "UUID:        %s\n", run.UUID)
	fmt.Fprintf(w, "Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	if run.FinishedAt != nil {
		fmt.Fprintf(w, "Finished:    %s\n", run.FinishedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(w, "Pipeline:    %s\n", run.Pipeline)
	fmt.Fprintf(w, "Status:      %s\n", run.Status)
	fmt.Fprintf(w, "Input:       %s\n", run.InputPath)
	fmt.Fprintf(w, "Input hash:  %s\n", run.InputHash)
	fmt.Fprintf(w, "Entries:     %d\n", run.EntryCount)
	if run.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:       %s\n", run.ErrorMessage)
	}

	if len(outputs) > 0 {
		fmt.Fprintf(w, "\nOutputs (%d):\n", len(outputs))
		fmt.Fprintln(w, strings.Repeat("-", 60))
		for i, o := range outputs {
			fmt.Fprintf(w, "%2d. %s\n", i+1, o.FilePath)
			fmt.Fprintf(w, "    Lines: %d | Size: %d bytes | SHA256: %.12s\n", o.LineCount, o.SizeBytes, o.ContentHash)
		}
	}

	return nil
}
