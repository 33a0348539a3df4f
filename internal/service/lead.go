package service

import (
	"context"
	"fmt"
	"strings"

	"estates/internal/model"
	"estates/internal/repository"

	"github.com/google/uuid"
)

// LeadService captures and manages sales leads and contact messages.
type LeadService struct {
	repo *repository.PostgresRepository
}

// NewLeadService creates a new lead service
func NewLeadService(repo *repository.PostgresRepository) *LeadService {
	return &LeadService{repo: repo}
}

// CreateLead validates and stores a lead. Name plus at least one
// contact channel are required; everything else is optional.
func (s *LeadService) CreateLead(ctx context.Context, req model.LeadRequest) (*model.Lead, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: an email or phone number is required", ErrInvalidInput)
	}

	source := req.Source
	if source == "" {
		source = "website"
	}

	lead := &model.Lead{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Source:     source,
		PropertyID: req.PropertyID,
		Message:    req.Message,
		Status:     model.LeadStatusNew,
	}
	if err := s.repo.CreateLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// ListLeads returns leads, optionally filtered by status
func (s *LeadService) ListLeads(ctx context.Context, status string) ([]model.Lead, error) {
	return s.repo.ListLeads(ctx, status)
}

// UpdateLeadStatus moves a lead along new -> contacted -> closed
func (s *LeadService) UpdateLeadStatus(ctx context.Context, id, status string) error {
	switch status {
	case model.LeadStatusNew, model.LeadStatusContacted, model.LeadStatusClosed:
	default:
		return fmt.Errorf("%w: unknown lead status %q", ErrInvalidInput, status)
	}
	found, err := s.repo.UpdateLeadStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// CreateContactMessage stores a contact-form submission
func (s *LeadService) CreateContactMessage(ctx context.Context, req model.ContactMessageRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: req.Subject,
		Body:    req.Body,
	}
	if msg.Name == "" || msg.Email == "" || strings.TrimSpace(msg.Body) == "" {
		return nil, fmt.Errorf("%w: name, email and body are required", ErrInvalidInput)
	}
	if err := s.repo.CreateContactMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListContactMessages returns contact messages, newest first
func (s *LeadService) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.ListContactMessages(ctx)
}
