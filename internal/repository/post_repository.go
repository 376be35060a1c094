package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"blogapp/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Username    string `json:"username"`
	Categories  string `json:"categories"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO posts (post_id, title, description, picture, username, categories, created_at)
		VALUES (%s, $1, $2, $3, $4, $5, $6)
		RETURNING post_id
	`, nextIDExpr("posts", "post_id"))

	err := r.db.GetContext(ctx, &post.PostID, query,
		post.Title, post.Description, post.Picture, post.Username, post.Categories, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context, category string) ([]models.Post, error) {
	posts := []models.Post{}

	// "All" и пустая строка означают отсутствие фильтра
	if category == "" || category == "All" {
		query := `SELECT * FROM posts ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &posts, query); err != nil {
			return nil, fmt.Errorf("ошибка при получении постов: %w", err)
		}
		return posts, nil
	}

	query := `SELECT * FROM posts WHERE categories = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &posts, query, category); err != nil {
		return nil, fmt.Errorf("ошибка при получении постов категории %s: %w", category, err)
	}

	return posts, nil
}

// Update перезаписывает только переданные поля (частичное обновление).
func (r *PostRepositoryImpl) Update(ctx context.Context, postID int, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	setParts := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	i := 1

	for _, column := range []string{"title", "description", "picture", "username", "categories"} {
		if value, ok := fields[column]; ok {
			setParts = append(setParts, fmt.Sprintf("%s = $%d", column, i))
			args = append(args, value)
			i++
		}
	}

	if len(setParts) == 0 {
		return nil
	}

	args = append(args, postID)
	query := fmt.Sprintf(`UPDATE posts SET %s WHERE post_id = $%d`, strings.Join(setParts, ", "), i)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	// комментарии поста намеренно не удаляются: они остаются доступными
	// по postId и после удаления поста
	return nil
}
