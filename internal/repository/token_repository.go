package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"blogapp/internal/models"
)

type tokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Save(ctx context.Context, token *models.RefreshToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO refresh_tokens (token, user_id, created_at, expires_at)
		VALUES (:token, :user_id, :created_at, :expires_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении refresh token: %w", err)
	}

	return nil
}

func (r *tokenRepository) Get(ctx context.Context, token string) (*models.RefreshToken, error) {
	var record models.RefreshToken

	query := `SELECT * FROM refresh_tokens WHERE token = $1`

	err := r.db.GetContext(ctx, &record, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("refresh token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении refresh token: %w", err)
	}

	return &record, nil
}

func (r *tokenRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM refresh_tokens WHERE token = $1`

	result, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("ошибка при удалении refresh token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("refresh token: %w", ErrNotFound)
	}

	return nil
}

// DeleteExpired подчищает просроченные записи, вызывается при каждом
// обновлении токенов, чтобы таблица не росла бесконечно.
func (r *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expires_at <= $1`

	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("ошибка при удалении просроченных refresh token: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	return deleted, nil
}
