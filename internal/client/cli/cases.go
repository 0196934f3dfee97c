package cli

import (
	"context"
	"fmt"
	"os"

	"casefile/internal/client/models"
)

// Cases lists the case catalogue.
func (a *App) Cases(ctx context.Context) error {
	cases, err := a.cases.ListCases(ctx)
	if err != nil {
		printlnFn("Could not list cases:", err.Error())
		return err
	}

	for _, c := range cases {
		solved := " "
		if c.IsSolved {
			solved = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %-10s %s  %s", solved, c.DifficultyLevel, c.ID, c.Title))
	}
	return nil
}

// CaseDetail shows the narrative and the clue board for one case.
func (a *App) CaseDetail(ctx context.Context, caseID string) error {
	d, err := a.cases.CaseDetail(ctx, caseID)
	if err != nil {
		printlnFn("Could not load case:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s (%s)", d.Title, d.DifficultyLevel))
	printlnFn(d.FullNarrative)
	printlnFn(fmt.Sprintf("Points: %d  Clues found: %d/%d", d.UserPoints, d.CluesFoundCount, len(d.Clues)))

	for _, clue := range d.Clues {
		if clue.IsUnlocked {
			printlnFn(fmt.Sprintf("  %s  %s: %s", clue.ID, clue.Title, clue.Content))
		} else {
			printlnFn(fmt.Sprintf("  %s  %s [locked, %d pts]", clue.ID, clue.Title, clue.UnlockCost))
		}
	}

	if d.HasBeenSolved && d.Solution != nil {
		printlnFn("Solved. Answer:", d.Solution.CorrectAnswer)
	}
	return nil
}

// Progress shows the server-side investigation progress of one case.
func (a *App) Progress(ctx context.Context, caseID string) error {
	p, err := a.cases.Progress(ctx, caseID)
	if err != nil {
		printlnFn("Could not load progress:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Clues unlocked: %d  Suspects viewed: %d/%d  Evidence viewed: %d/%d",
		p.UnlockedCluesCount, p.ViewedSuspectsCount, p.TotalSuspects, p.ViewedEvidenceCount, p.TotalEvidence))
	if p.IsSaved && p.LastSavedAt != nil {
		printlnFn("Last saved:", *p.LastSavedAt)
	}
	return nil
}

// SaveProgress prompts for a progress payload and optional notes, then saves
// them server-side.
func (a *App) SaveProgress(ctx context.Context, caseID string) error {
	progressData, err := getSimpleText(a.reader, "Progress data (JSON)", os.Stdout)
	if err != nil {
		return err
	}

	noteText, err := getMultiline(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}
	var notes *string
	if noteText != "" {
		notes = &noteText
	}

	resp, err := a.cases.SaveProgress(ctx, caseID, progressData, notes)
	if err != nil {
		printlnFn("Save failed:", err.Error())
		return err
	}

	if resp.IsSuccess {
		printlnFn("Saved at", resp.SavedAt)
	} else {
		printlnFn("Save rejected:", resp.Message)
	}
	return nil
}

// SubmitAnswer prompts for a free-text accusation and submits it.
func (a *App) SubmitAnswer(ctx context.Context, caseID string) error {
	answer, err := getSimpleText(a.reader, "Who did it, and how?", os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.cases.SubmitAnswer(ctx, caseID, answer)
	if err != nil {
		printlnFn("Submission failed:", err.Error())
		return err
	}

	if resp.IsCorrect {
		printlnFn(fmt.Sprintf("Correct! +%d points", resp.ScoreEarned))
		if resp.DetailedSolution != nil {
			printlnFn(*resp.DetailedSolution)
		}
	} else {
		printlnFn("Not quite:", resp.Message)
	}
	return nil
}

// SubmitInference walks through the structured accusation form.
func (a *App) SubmitInference(ctx context.Context, caseID string) error {
	suspect, err := getSimpleText(a.reader, "Suspected perpetrator", os.Stdout)
	if err != nil {
		return err
	}
	reasoning, err := getMultiline(a.reader, "Reasoning", os.Stdout)
	if err != nil {
		return err
	}
	alias, err := getSimpleText(a.reader, "Alias used (optional)", os.Stdout)
	if err != nil {
		return err
	}
	extra, err := getSimpleText(a.reader, "Additional notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	var aliasPtr, extraPtr *string
	if alias != "" {
		aliasPtr = &alias
	}
	if extra != "" {
		extraPtr = &extra
	}

	resp, err := a.cases.SubmitInference(ctx, caseID, models.SubmitInferenceRequest{
		SuspectedPerpetrator:  suspect,
		PerpetrationReasoning: reasoning,
		AliasUsed:             aliasPtr,
		AdditionalNotes:       extraPtr,
	})
	if err != nil {
		printlnFn("Submission failed:", err.Error())
		return err
	}

	if resp.IsCorrect {
		printlnFn(fmt.Sprintf("Correct! +%d points", resp.PointsEarned))
	} else {
		printlnFn("Inference recorded:", resp.InferenceStatus)
	}
	return nil
}
