package service

import (
	"context"
	"fmt"

	"estates/internal/contracts"
	"estates/internal/model"
	"estates/internal/repository"
)

// ContentService serves and edits the CMS content blocks the public
// pages render.
type ContentService struct {
	repo *repository.PostgresRepository
}

// NewContentService creates a new content service
func NewContentService(repo *repository.PostgresRepository) *ContentService {
	return &ContentService{repo: repo}
}

// Get returns the content block stored under key, or ErrNotFound.
func (s *ContentService) Get(ctx context.Context, key string) (*model.ContentBlock, error) {
	block, err := s.repo.GetContentBlock(ctx, key)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, ErrNotFound
	}
	return block, nil
}

// Upsert validates the payload against the content-block schema and
// stores it under key.
func (s *ContentService) Upsert(ctx context.Context, key string, payload model.JSONMap) (*model.ContentBlock, error) {
	if err := contracts.ValidateContentBlock(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	block := &model.ContentBlock{Key: key, Payload: payload}
	if err := s.repo.UpsertContentBlock(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}
