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

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	PostID   int    `json:"postId"`
	Name     string `json:"name"`
	Comments string `json:"comments"`
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	if comment.Date.IsZero() {
		comment.Date = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO comments (comment_id, post_id, name, comments, date)
		VALUES (%s, $1, $2, $3, $4)
		RETURNING comment_id
	`, nextIDExpr("comments", "comment_id"))

	err := r.db.GetContext(ctx, &comment.CommentID, query,
		comment.PostID, comment.Name, comment.Comments, comment.Date)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID int) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE comment_id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %d: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID int) ([]models.Comment, error) {
	comments := []models.Comment{}

	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY date DESC`

	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев поста %d: %w", postID, err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID int) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий с ID %d: %w", commentID, ErrNotFound)
	}

	return nil
}
