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

type FileRepositoryImpl struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) *FileRepositoryImpl {
	return &FileRepositoryImpl{db: db}
}

func (r *FileRepositoryImpl) Create(ctx context.Context, file *models.File) error {
	if file.UploadedAt.IsZero() {
		file.UploadedAt = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO files (file_id, filename, original_name, content_type, size, uploaded_at)
		VALUES (%s, $1, $2, $3, $4, $5)
		RETURNING file_id
	`, nextIDExpr("files", "file_id"))

	err := r.db.GetContext(ctx, &file.FileID, query,
		file.Filename, file.OriginalName, file.ContentType, file.Size, file.UploadedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("файл %s: %w", file.Filename, ErrDuplicate)
		}
		return fmt.Errorf("ошибка при сохранении метаданных файла: %w", err)
	}

	return nil
}

func (r *FileRepositoryImpl) GetByFilename(ctx context.Context, filename string) (*models.File, error) {
	var file models.File

	query := `SELECT * FROM files WHERE filename = $1`

	err := r.db.GetContext(ctx, &file, query, filename)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("файл %s: %w", filename, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении метаданных файла: %w", err)
	}

	return &file, nil
}
