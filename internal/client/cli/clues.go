package cli

import (
	"context"
	"errors"
	"fmt"

	"casefile/internal/client/api"
)

// UnlockClue spends points to reveal one clue. The backend is the authority
// on affordability; an insufficient balance comes back as a regular API
// error with the backend's message.
func (a *App) UnlockClue(ctx context.Context, clueID string) error {
	clue, err := a.cases.UnlockClue(ctx, clueID)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			printlnFn("Unlock rejected:", apiErr.Message)
		} else {
			printlnFn("Unlock failed:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Unlocked %s: %s", clue.Title, clue.Content))
	printlnFn("Point balance changed; run 'refresh' to update your profile.")
	return nil
}
