// Package services contains the application services for the casefile CLI:
// thin intent-to-API translation over the backend client. Sentinel errors
// from the api package pass through untouched so the session layer can
// route on them.
package services

import (
	"context"

	"casefile/internal/client/api"
	"casefile/internal/client/models"
)

// CaseService exposes the investigation operations of the backend.
type CaseService interface {
	ListCases(ctx context.Context) ([]models.CaseListItem, error)
	CaseDetail(ctx context.Context, caseID string) (*models.CaseDetail, error)
	Progress(ctx context.Context, caseID string) (*models.CaseProgress, error)
	SaveProgress(ctx context.Context, caseID, progressData string, notes *string) (*models.SaveProgressResponse, error)
	SubmitAnswer(ctx context.Context, caseID, answer string) (*models.SubmitAnswerResponse, error)
	SubmitInference(ctx context.Context, caseID string, req models.SubmitInferenceRequest) (*models.SubmitInferenceResponse, error)
	Suspects(ctx context.Context, caseID string) ([]models.Suspect, error)
	SuspectDetail(ctx context.Context, suspectID string) (*models.SuspectDetail, error)
	UnlockClue(ctx context.Context, clueID string) (*models.Clue, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type caseService struct {
	client api.Client
}

// NewCaseService binds the service to the given API client.
func NewCaseService(client api.Client) CaseService {
	return &caseService{client: client}
}

func (s *caseService) ListCases(ctx context.Context) ([]models.CaseListItem, error) {
	return s.client.ListCases(ctx)
}

func (s *caseService) CaseDetail(ctx context.Context, caseID string) (*models.CaseDetail, error) {
	return s.client.GetCaseDetail(ctx, caseID)
}

func (s *caseService) Progress(ctx context.Context, caseID string) (*models.CaseProgress, error) {
	return s.client.GetCaseProgress(ctx, caseID)
}

func (s *caseService) SaveProgress(ctx context.Context, caseID, progressData string, notes *string) (*models.SaveProgressResponse, error) {
	return s.client.SaveProgress(ctx, caseID, models.SaveProgressRequest{
		ProgressData: progressData,
		NotesData:    notes,
	})
}

func (s *caseService) SubmitAnswer(ctx context.Context, caseID, answer string) (*models.SubmitAnswerResponse, error) {
	return s.client.SubmitAnswer(ctx, models.SubmitAnswerRequest{
		CaseID:          caseID,
		SubmittedAnswer: answer,
	})
}

func (s *caseService) SubmitInference(ctx context.Context, caseID string, req models.SubmitInferenceRequest) (*models.SubmitInferenceResponse, error) {
	return s.client.SubmitInference(ctx, caseID, req)
}

func (s *caseService) Suspects(ctx context.Context, caseID string) ([]models.Suspect, error) {
	return s.client.ListSuspects(ctx, caseID)
}

func (s *caseService) SuspectDetail(ctx context.Context, suspectID string) (*models.SuspectDetail, error) {
	return s.client.GetSuspectDetail(ctx, suspectID)
}

func (s *caseService) UnlockClue(ctx context.Context, clueID string) (*models.Clue, error) {
	return s.client.UnlockClue(ctx, clueID)
}

func (s *caseService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.client.GetLeaderboard(ctx)
}
