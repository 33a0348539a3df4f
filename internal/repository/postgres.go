package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"estates/internal/model"
	"estates/internal/query"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

const propertyColumns = `
	id, title, location, type, status, price_value, price_label,
	beds, baths, sqft_value, sqft_label, is_featured, cover_image,
	gallery, description, features, seq, created_at, updated_at`

// ListProperties applies the filter criteria against the stored
// catalog. The WHERE/ORDER BY assembly mirrors query.Criteria.Matches
// and query.Apply clause for clause; seq keeps insertion order as the
// default ordering and as the tie-break, so repeated queries are
// deterministic.
func (r *PostgresRepository) ListProperties(ctx context.Context, c query.Criteria) ([]model.Property, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	addClause := func(clause string, value interface{}) {
		whereClauses = append(whereClauses, fmt.Sprintf(clause, argIndex))
		args = append(args, value)
		argIndex++
	}

	if c.Search != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("(title ILIKE $%d OR location ILIKE $%d)", argIndex, argIndex+1))
		pattern := "%" + c.Search + "%"
		args = append(args, pattern, pattern)
		argIndex += 2
	}
	if c.Type != "" && c.Type != "all" {
		addClause("type = $%d", c.Type)
	}
	if c.Location != "" && c.Location != "all" {
		addClause("location = $%d", c.Location)
	}
	if c.Status != "" && c.Status != "all" {
		addClause("status = $%d", c.Status)
	}
	if c.MinBeds != nil {
		addClause("beds >= $%d", *c.MinBeds)
	}
	if c.PriceMin != nil {
		addClause("price_value >= $%d", *c.PriceMin)
	}
	if c.PriceMax != nil {
		addClause("price_value <= $%d", *c.PriceMax)
	}
	if c.Featured {
		whereClauses = append(whereClauses, "is_featured = true")
	}
	if c.Exclude != "" {
		addClause("id <> $%d", c.Exclude)
	}

	orderBy := "seq ASC"
	switch c.Sort {
	case query.SortPriceLow:
		orderBy = "price_value ASC, seq ASC"
	case query.SortPriceHigh:
		orderBy = "price_value DESC, seq ASC"
	case query.SortBeds:
		orderBy = "beds DESC, seq ASC"
	case query.SortSqft:
		orderBy = "sqft_value DESC, seq ASC"
	}

	limitClause := ""
	if c.Limit > 0 {
		limitClause = fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, c.Limit)
	}

	selectQuery := fmt.Sprintf(
		"SELECT %s FROM properties WHERE %s ORDER BY %s%s",
		propertyColumns, strings.Join(whereClauses, " AND "), orderBy, limitClause,
	)

	properties := []model.Property{}
	if err := r.db.SelectContext(ctx, &properties, selectQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return properties, nil
}

// GetProperty retrieves a single property by its ID
func (r *PostgresRepository) GetProperty(ctx context.Context, id string) (*model.Property, error) {
	var p model.Property
	q := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1", propertyColumns)
	err := r.db.GetContext(ctx, &p, q, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &p, nil
}

// CreateProperty inserts a new catalog record
func (r *PostgresRepository) CreateProperty(ctx context.Context, p *model.Property) error {
	q := `
		INSERT INTO properties (
			id, title, location, type, status, price_value, price_label,
			beds, baths, sqft_value, sqft_label, is_featured, cover_image,
			gallery, description, features
		) VALUES (
			:id, :title, :location, :type, :status, :price_value, :price_label,
			:beds, :baths, :sqft_value, :sqft_label, :is_featured, :cover_image,
			:gallery, :description, :features
		)`
	if _, err := r.db.NamedExecContext(ctx, q, p); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// UpdateProperty replaces a catalog record; returns false when the id
// does not exist.
func (r *PostgresRepository) UpdateProperty(ctx context.Context, p *model.Property) (bool, error) {
	q := `
		UPDATE properties SET
			title = :title, location = :location, type = :type, status = :status,
			price_value = :price_value, price_label = :price_label,
			beds = :beds, baths = :baths, sqft_value = :sqft_value, sqft_label = :sqft_label,
			is_featured = :is_featured, cover_image = :cover_image,
			gallery = :gallery, description = :description, features = :features,
			updated_at = NOW()
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, q, p)
	if err != nil {
		return false, fmt.Errorf("failed to update property: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// DeleteProperty removes a catalog record; returns false when the id
// does not exist.
func (r *PostgresRepository) DeleteProperty(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete property: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
