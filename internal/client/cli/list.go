package cli

import (
	"context"
	"fmt"
	"log"
)

// List prints the report ledger, most recent first.
func (a *App) List(ctx context.Context) error {
	reports, err := a.reports.List(ctx)
	if err != nil {
		log.Printf("error listing reports: %v", err)
		return err
	}

	if len(reports) == 0 {
		fmt.Println("No reports yet. Use 'report' to file your first one.")
		return nil
	}

	for _, r := range reports {
		fmt.Printf("%s  [%s]  %s  (%s, +%d)\n", r.Date, r.Status, r.Title, r.Category, r.Cashback)
	}
	return nil
}

// Stats prints the dashboard aggregates. Solved-dependent numbers stay zero
// until a backend process transitions reports out of "verified".
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.reports.Stats(ctx)
	if err != nil {
		log.Printf("error computing stats: %v", err)
		return err
	}

	fmt.Printf("Reports submitted: %d\n", stats.TotalReports)
	fmt.Printf("Issues solved:     %d\n", stats.SolvedReports)
	fmt.Printf("Solved cashback:   %d\n", stats.SolvedCashback)
	fmt.Printf("Certificates:      %d\n", stats.SolvedReports)
	return nil
}
