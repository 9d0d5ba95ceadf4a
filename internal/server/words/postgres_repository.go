package words

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ivanosipov/wordvault/internal/common"
	"github.com/ivanosipov/wordvault/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, word *Word) (*Word, error) {

	query :=
		`INSERT INTO words (user_id, word, position)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		word.UserID, word.Text, word.Position).Scan(&word.ID, &word.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return word, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Word, error) {

	query :=
		`SELECT id, user_id, word, position, created_at FROM words
		 WHERE user_id = $1
		 ORDER BY position, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Word, 0)
	for rows.Next() {
		word := &Word{}
		if err := rows.Scan(&word.ID, &word.UserID, &word.Text, &word.Position, &word.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) UpdatePositions(ctx context.Context, userID string, updates []PositionUpdate) error {

	if len(updates) == 0 {
		return nil
	}

	query :=
		`UPDATE words SET position = $1
		 WHERE id = $2 AND user_id = $3
		 `

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, u := range updates {
			if _, err := tx.ExecContext(ctx, query, u.Position, u.ID, userID); err != nil {
				return fmt.Errorf("error performing sql request: %w", err)
			}
		}
		return nil
	})
}

func (r *PostgresRepository) DeleteByPosition(ctx context.Context, userID string, position int64) error {

	// The subquery pins the earliest-inserted entry at the position so
	// exactly one row goes away even when positions are duplicated.
	query :=
		`DELETE FROM words
		 WHERE id = (
		     SELECT id FROM words
		     WHERE user_id = $1 AND position = $2
		     ORDER BY id
		     LIMIT 1
		 )
		 `

	res, err := r.db.ExecContext(ctx, query, userID, position)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
