package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casefile/internal/client/api"
	"casefile/internal/client/models"
)

// recordingClient captures the requests the services build.
type recordingClient struct {
	api.Client // panics on anything not overridden below

	lastSaveCaseID string
	lastSaveReq    models.SaveProgressRequest
	lastAnswerReq  models.SubmitAnswerRequest
	lastDraft      models.CaseUpsertRequest

	unlockErr error
}

func (r *recordingClient) SaveProgress(ctx context.Context, caseID string, req models.SaveProgressRequest) (*models.SaveProgressResponse, error) {
	r.lastSaveCaseID = caseID
	r.lastSaveReq = req
	return &models.SaveProgressResponse{IsSuccess: true}, nil
}

func (r *recordingClient) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	r.lastAnswerReq = req
	return &models.SubmitAnswerResponse{IsCorrect: true, ScoreEarned: 50}, nil
}

func (r *recordingClient) UnlockClue(ctx context.Context, clueID string) (*models.Clue, error) {
	if r.unlockErr != nil {
		return nil, r.unlockErr
	}
	return &models.Clue{ID: clueID, IsUnlocked: true}, nil
}

func (r *recordingClient) CreateCase(ctx context.Context, req models.CaseUpsertRequest) (string, error) {
	r.lastDraft = req
	return "case-new", nil
}

func TestSaveProgress_BuildsRequest(t *testing.T) {
	rc := &recordingClient{}
	s := NewCaseService(rc)

	notes := "the butler was in the kitchen"
	resp, err := s.SaveProgress(context.Background(), "case-1", `{"clues":2}`, &notes)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, "case-1", rc.lastSaveCaseID)
	assert.Equal(t, `{"clues":2}`, rc.lastSaveReq.ProgressData)
	require.NotNil(t, rc.lastSaveReq.NotesData)
	assert.Equal(t, notes, *rc.lastSaveReq.NotesData)
}

func TestSubmitAnswer_BuildsRequest(t *testing.T) {
	rc := &recordingClient{}
	s := NewCaseService(rc)

	resp, err := s.SubmitAnswer(context.Background(), "case-2", "the gardener")
	require.NoError(t, err)
	assert.True(t, resp.IsCorrect)
	assert.Equal(t, models.SubmitAnswerRequest{CaseID: "case-2", SubmittedAnswer: "the gardener"}, rc.lastAnswerReq)
}

func TestUnlockClue_PassesSentinelsThrough(t *testing.T) {
	rc := &recordingClient{unlockErr: api.ErrUnauthorized}
	s := NewCaseService(rc)

	_, err := s.UnlockClue(context.Background(), "clue-1")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestAdminCreateCase_ForwardsDraft(t *testing.T) {
	rc := &recordingClient{}
	s := NewAdminService(rc)

	id, err := s.CreateCase(context.Background(), models.CaseUpsertRequest{Title: "The Vanishing Act"})
	require.NoError(t, err)
	assert.Equal(t, "case-new", id)
	assert.Equal(t, "The Vanishing Act", rc.lastDraft.Title)
}
