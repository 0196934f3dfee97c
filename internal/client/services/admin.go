package services

import (
	"context"

	"casefile/internal/client/api"
	"casefile/internal/client/models"
)

// AdminService covers case management. Authorization lives server-side; the
// REPL only hides the affordance from non-admin profiles.
type AdminService interface {
	CreateCase(ctx context.Context, draft models.CaseUpsertRequest) (string, error)
	UpdateCase(ctx context.Context, caseID string, draft models.CaseUpsertRequest) (string, error)
	DeleteCase(ctx context.Context, caseID string) error
}

type adminService struct {
	client api.Client
}

func NewAdminService(client api.Client) AdminService {
	return &adminService{client: client}
}

func (s *adminService) CreateCase(ctx context.Context, draft models.CaseUpsertRequest) (string, error) {
	return s.client.CreateCase(ctx, draft)
}

func (s *adminService) UpdateCase(ctx context.Context, caseID string, draft models.CaseUpsertRequest) (string, error) {
	return s.client.UpdateCase(ctx, caseID, draft)
}

func (s *adminService) DeleteCase(ctx context.Context, caseID string) error {
	return s.client.DeleteCase(ctx, caseID)
}
