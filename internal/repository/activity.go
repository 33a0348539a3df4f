package repository

import (
	"context"
	"fmt"

	"estates/internal/model"
)

// RecordActivity appends a dashboard mutation to the activity log
func (r *PostgresRepository) RecordActivity(ctx context.Context, entry *model.ActivityEntry) error {
	q := `
		INSERT INTO activity_log (id, actor, action, entity, entity_id)
		VALUES (:id, :actor, :action, :entity, :entity_id)`
	if _, err := r.db.NamedExecContext(ctx, q, entry); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListActivity returns the most recent activity entries
func (r *PostgresRepository) ListActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	entries := []model.ActivityEntry{}
	q := `
		SELECT id, actor, action, entity, entity_id, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1`
	if err := r.db.SelectContext(ctx, &entries, q, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch activity log: %w", err)
	}
	return entries, nil
}

type countRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

// AnalyticsSummary aggregates the dashboard counters in one pass
func (r *PostgresRepository) AnalyticsSummary(ctx context.Context) (*model.AnalyticsSummary, error) {
	summary := &model.AnalyticsSummary{
		ByStatus:      map[string]int{},
		ByType:        map[string]int{},
		LeadsByStatus: map[string]int{},
	}

	if err := r.db.GetContext(ctx, &summary.TotalProperties,
		"SELECT COUNT(*) FROM properties"); err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}
	if err := r.db.GetContext(ctx, &summary.FeaturedCount,
		"SELECT COUNT(*) FROM properties WHERE is_featured = true"); err != nil {
		return nil, fmt.Errorf("failed to count featured properties: %w", err)
	}

	grouped := func(q string, into map[string]int) error {
		rows := []countRow{}
		if err := r.db.SelectContext(ctx, &rows, q); err != nil {
			return err
		}
		for _, row := range rows {
			into[row.Key] = row.Count
		}
		return nil
	}

	if err := grouped("SELECT status AS key, COUNT(*) AS count FROM properties GROUP BY status", summary.ByStatus); err != nil {
		return nil, fmt.Errorf("failed to count properties by status: %w", err)
	}
	if err := grouped("SELECT type AS key, COUNT(*) AS count FROM properties GROUP BY type", summary.ByType); err != nil {
		return nil, fmt.Errorf("failed to count properties by type: %w", err)
	}
	if err := grouped("SELECT status AS key, COUNT(*) AS count FROM leads GROUP BY status", summary.LeadsByStatus); err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}
	for _, n := range summary.LeadsByStatus {
		summary.TotalLeads += n
	}

	if err := r.db.GetContext(ctx, &summary.TotalMessages,
		"SELECT COUNT(*) FROM contact_messages"); err != nil {
		return nil, fmt.Errorf("failed to count contact messages: %w", err)
	}

	return summary, nil
}
