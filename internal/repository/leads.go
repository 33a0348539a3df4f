package repository

import (
	"context"
	"fmt"

	"estates/internal/model"
)

// CreateLead stores a captured lead
func (r *PostgresRepository) CreateLead(ctx context.Context, lead *model.Lead) error {
	q := `
		INSERT INTO leads (id, name, email, phone, source, property_id, message, status)
		VALUES (:id, :name, :email, :phone, :source, :property_id, :message, :status)`
	if _, err := r.db.NamedExecContext(ctx, q, lead); err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// ListLeads returns leads newest first, optionally filtered by status
func (r *PostgresRepository) ListLeads(ctx context.Context, status string) ([]model.Lead, error) {
	leads := []model.Lead{}
	q := `
		SELECT id, name, email, phone, source, property_id, message, status, created_at
		FROM leads`
	args := []interface{}{}
	if status != "" && status != "all" {
		q += " WHERE status = $1"
		args = append(args, status)
	}
	q += " ORDER BY created_at DESC"
	if err := r.db.SelectContext(ctx, &leads, q, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}
	return leads, nil
}

// UpdateLeadStatus moves a lead along its lifecycle; returns false when
// the id does not exist.
func (r *PostgresRepository) UpdateLeadStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE leads SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return false, fmt.Errorf("failed to update lead status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// CreateContactMessage stores a contact-form submission
func (r *PostgresRepository) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	q := `
		INSERT INTO contact_messages (id, name, email, subject, body)
		VALUES (:id, :name, :email, :subject, :body)`
	if _, err := r.db.NamedExecContext(ctx, q, msg); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns contact messages newest first
func (r *PostgresRepository) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	messages := []model.ContactMessage{}
	q := `
		SELECT id, name, email, subject, body, created_at
		FROM contact_messages
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &messages, q); err != nil {
		return nil, fmt.Errorf("failed to fetch contact messages: %w", err)
	}
	return messages, nil
}
