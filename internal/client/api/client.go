// Package api implements the typed REST client for the detective case
// backend. One method per endpoint, explicit request/response structs, and a
// single place where the bearer token is attached.
package api

import (
	"context"

	"casefile/internal/client/models"
)

// Client is the backend surface consumed by the session controller, the
// game services, and the REPL. Implementations must map failures onto the
// package sentinels (ErrUnauthorized, ErrUnavailable, ErrTimeout) or
// *APIError so callers can route on error kind with errors.Is/As.
type Client interface {
	// Auth. Neither call attaches a bearer header.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)

	// Profile.
	GetProfile(ctx context.Context) (*models.UserProfile, error)

	// Cases.
	ListCases(ctx context.Context) ([]models.CaseListItem, error)
	GetCaseDetail(ctx context.Context, caseID string) (*models.CaseDetail, error)
	GetCaseProgress(ctx context.Context, caseID string) (*models.CaseProgress, error)
	SaveProgress(ctx context.Context, caseID string, req models.SaveProgressRequest) (*models.SaveProgressResponse, error)
	SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error)
	SubmitInference(ctx context.Context, caseID string, req models.SubmitInferenceRequest) (*models.SubmitInferenceResponse, error)

	// Suspects.
	ListSuspects(ctx context.Context, caseID string) ([]models.Suspect, error)
	GetSuspectDetail(ctx context.Context, suspectID string) (*models.SuspectDetail, error)

	// Clues.
	UnlockClue(ctx context.Context, clueID string) (*models.Clue, error)

	// Leaderboard.
	GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)

	// Admin case management.
	CreateCase(ctx context.Context, req models.CaseUpsertRequest) (string, error)
	UpdateCase(ctx context.Context, caseID string, req models.CaseUpsertRequest) (string, error)
	DeleteCase(ctx context.Context, caseID string) error
}
