package cli

import (
	"context"
	"fmt"
	"os"

	"casefile/internal/client/api"
	"casefile/internal/client/models"
)

// loadDraft reads and validates an admin case draft from a JSON file.
func loadDraft(path string) (*models.CaseUpsertRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return api.DecodeCaseDraft(f)
}

// AdminCreate publishes a new case from a draft file.
func (a *App) AdminCreate(ctx context.Context, file string) error {
	draft, err := loadDraft(file)
	if err != nil {
		printlnFn("Bad draft:", err.Error())
		return err
	}

	id, err := a.admin.CreateCase(ctx, *draft)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Created case %s", id))
	return nil
}

// AdminUpdate replaces an existing case with the contents of a draft file.
func (a *App) AdminUpdate(ctx context.Context, caseID, file string) error {
	draft, err := loadDraft(file)
	if err != nil {
		printlnFn("Bad draft:", err.Error())
		return err
	}

	id, err := a.admin.UpdateCase(ctx, caseID, *draft)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Updated case %s", id))
	return nil
}

// AdminDelete removes a case after an interactive confirmation.
func (a *App) AdminDelete(ctx context.Context, caseID string) error {
	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete case %s? Type the id to confirm", caseID), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != caseID {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.admin.DeleteCase(ctx, caseID); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}

	printlnFn("Deleted.")
	return nil
}
