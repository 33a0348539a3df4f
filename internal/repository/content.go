package repository

import (
	"context"
	"database/sql"
	"fmt"

	"estates/internal/model"
)

// GetContentBlock retrieves a CMS content block by key
func (r *PostgresRepository) GetContentBlock(ctx context.Context, key string) (*model.ContentBlock, error) {
	var block model.ContentBlock
	q := "SELECT key, payload, updated_at FROM content_blocks WHERE key = $1"
	err := r.db.GetContext(ctx, &block, q, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content block: %w", err)
	}
	return &block, nil
}

// UpsertContentBlock creates or replaces a CMS content block
func (r *PostgresRepository) UpsertContentBlock(ctx context.Context, block *model.ContentBlock) error {
	q := `
		INSERT INTO content_blocks (key, payload, updated_at)
		VALUES (:key, :payload, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`
	if _, err := r.db.NamedExecContext(ctx, q, block); err != nil {
		return fmt.Errorf("failed to upsert content block: %w", err)
	}
	return nil
}

// CreateUser stores a dashboard user record
func (r *PostgresRepository) CreateUser(ctx context.Context, user *model.User) error {
	q := `
		INSERT INTO users (id, name, email, role)
		VALUES (:id, :name, :email, :role)`
	if _, err := r.db.NamedExecContext(ctx, q, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListUsers returns all dashboard users
func (r *PostgresRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	q := "SELECT id, name, email, role, created_at FROM users ORDER BY created_at ASC"
	if err := r.db.SelectContext(ctx, &users, q); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a dashboard user; returns false when the id does
// not exist.
func (r *PostgresRepository) DeleteUser(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
