package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const table = "clients"

var selectColumns = []string{
	"id", "name", "house_address", "register_address",
	"first_contact", "next_follow", "notes", "created_at", "updated_at",
}

// searchColumns are matched by a free-text search.
var searchColumns = []string{"name", "house_address", "register_address", "notes"}

// ListOptions controls filtering for Repository.List.
type ListOptions struct {
	// Search keeps rows where any search column contains this text.
	// Matching is case-sensitive and literal. Empty = all.
	Search string
	// FollowUp keeps rows whose next_follow equals this day. Zero = all.
	FollowUp Date
}

// Store is the persistence the Service depends on.
type Store interface {
	Insert(ctx context.Context, c *Client) (*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context, opts ListOptions) ([]*Client, error)
	CountFollowUps(ctx context.Context, day Date) (int, error)
}

// Repository provides CRUD operations for clients over SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a client repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert adds a new client and returns it with its generated ID.
func (r *Repository) Insert(ctx context.Context, c *Client) (*Client, error) {
	query, args, err := sq.Insert(table).
		Columns("name", "house_address", "register_address", "first_contact", "next_follow", "notes").
		Values(c.Name, c.HouseAddress, c.RegisterAddress, c.FirstContact, c.NextFollow, c.Notes).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inserting client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID returns a client by its ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Client, error) {
	query, args, err := sq.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	c, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying client %d: %w", id, err)
	}

	return c, nil
}

// Update writes every editable column of c. first_contact is never written.
func (r *Repository) Update(ctx context.Context, c *Client) error {
	query, args, err := sq.Update(table).
		SetMap(map[string]interface{}{
			"name":             c.Name,
			"house_address":    c.HouseAddress,
			"register_address": c.RegisterAddress,
			"next_follow":      c.NextFollow,
			"notes":            c.Notes,
			"updated_at":       sq.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	return expectAffected(result, c.ID)
}

// Delete removes a client by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	return expectAffected(result, id)
}

// List returns clients in ID order, optionally filtered.
func (r *Repository) List(ctx context.Context, opts ListOptions) (clients []*Client, err error) {
	b := sq.Select(selectColumns...).From(table).OrderBy("id")

	if opts.Search != "" {
		// % and _ in the term act as LIKE wildcards. Case sensitivity
		// comes from the connection's case_sensitive_like pragma.
		pattern := "%" + opts.Search + "%"
		var match sq.Or
		for _, col := range searchColumns {
			match = append(match, sq.Like{col: pattern})
		}
		b = b.Where(match)
	}

	if !opts.FollowUp.IsZero() {
		b = b.Where(sq.Eq{"next_follow": opts.FollowUp.String()})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}

	return clients, nil
}

// CountFollowUps returns how many clients are due for follow-up on day.
func (r *Repository) CountFollowUps(ctx context.Context, day Date) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"next_follow": day.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting follow-ups: %w", err)
	}
	return n, nil
}

// expectAffected maps a zero-row write to ErrNotFound.
func expectAffected(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	return nil
}
