package service

import (
	"context"
	"fmt"
	"strings"

	"estates/internal/model"
	"estates/internal/repository"

	"github.com/google/uuid"
)

// Dashboard roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// AdminService covers the remaining dashboard surface: user records,
// the activity log and the analytics summary.
type AdminService struct {
	repo *repository.PostgresRepository
}

// NewAdminService creates a new admin service
func NewAdminService(repo *repository.PostgresRepository) *AdminService {
	return &AdminService{repo: repo}
}

// CreateUser stores a dashboard user record
func (s *AdminService) CreateUser(ctx context.Context, req model.UserRequest) (*model.User, error) {
	switch req.Role {
	case RoleAdmin, RoleEditor, RoleViewer:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	user := &model.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Role:  req.Role,
	}
	if user.Name == "" || user.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all dashboard users
func (s *AdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// DeleteUser removes a dashboard user
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	found, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// ListActivity returns the most recent activity entries
func (s *AdminService) ListActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListActivity(ctx, limit)
}

// AnalyticsSummary aggregates the dashboard counters
func (s *AdminService) AnalyticsSummary(ctx context.Context) (*model.AnalyticsSummary, error) {
	return s.repo.AnalyticsSummary(ctx)
}
