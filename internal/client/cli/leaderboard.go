package cli

import (
	"context"
	"fmt"
)

// Leaderboard prints the fastest solves.
func (a *App) Leaderboard(ctx context.Context) error {
	entries, err := a.cases.Leaderboard(ctx)
	if err != nil {
		printlnFn("Could not load leaderboard:", err.Error())
		return err
	}

	for i, e := range entries {
		printlnFn(fmt.Sprintf("%2d. %-20s %-30s %s", i+1, e.Username, e.CaseTitle, e.TimeToSolve))
	}
	return nil
}
