// Package credentials provides the PostgreSQL-backed repository for stored
// credential records.
package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements credential storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new credential record with a generated id.
func (r *PostgresRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {

	cred.ID = uuid.NewString()

	query :=
		`INSERT INTO credentials (id, user_id, title, username, secret_enc, url, category, strength)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		cred.ID, cred.UserID, cred.Title, cred.Username, cred.Secret,
		cred.URL, cred.Category, cred.Strength).Scan(&cred.CreatedAt, &cred.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

// SelectByUser returns all records owned by userID, most recently created
// first. An empty result is not an error.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Credential, error) {
	query :=
		`SELECT id, user_id, title, username, secret_enc, url, category, strength, created_at, updated_at
		 FROM credentials
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Credential
	for rows.Next() {
		var item models.Credential
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Username, &item.Secret,
			&item.URL, &item.Category, &item.Strength, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByIDAndUser fetches one record scoped to its owner. A record owned by a
// different user yields common.ErrorNotFound, same as an absent one.
func (r *PostgresRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.Credential, error) {
	query :=
		`SELECT id, user_id, title, username, secret_enc, url, category, strength, created_at, updated_at
		 FROM credentials
		 WHERE id = $1 AND user_id = $2
		 `

	item := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&item.ID, &item.UserID, &item.Title, &item.Username, &item.Secret,
		&item.URL, &item.Category, &item.Strength, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// Update rewrites the mutable fields of a record scoped to its owner and
// refreshes updated_at. A zero-row update is common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	query :=
		`UPDATE credentials
		 SET title = $1, username = $2, secret_enc = $3, url = $4, category = $5, strength = $6, updated_at = now()
		 WHERE id = $7 AND user_id = $8
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		cred.Title, cred.Username, cred.Secret, cred.URL, cred.Category, cred.Strength,
		cred.ID, cred.UserID).Scan(&cred.CreatedAt, &cred.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

// Delete removes a record scoped to its owner. Deleting zero rows is
// reported as common.ErrorNotFound, never as silent success.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM credentials WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
