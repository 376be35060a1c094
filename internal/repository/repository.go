package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"blogapp/internal/models"
)

// Сквозные ошибки хранилища, по ним обработчики выбирают HTTP-статус.
var (
	ErrNotFound  = errors.New("запись не найдена")
	ErrDuplicate = errors.New("запись уже существует")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int) (*models.User, error)
	GetUserByUserName(ctx context.Context, userName string) (*models.User, error)
	VerifyPassword(ctx context.Context, userName, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int) (*models.Post, error)
	GetAll(ctx context.Context, category string) ([]models.Post, error)
	Update(ctx context.Context, postID int, fields map[string]interface{}) error
	Delete(ctx context.Context, postID int) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int) ([]models.Comment, error)
	Delete(ctx context.Context, commentID int) error
}

type TokenRepository interface {
	Save(ctx context.Context, token *models.RefreshToken) error
	Get(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByFilename(ctx context.Context, filename string) (*models.File, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Token   TokenRepository
	File    FileRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Token:   NewTokenRepository(db),
		File:    NewFileRepository(db),
	}
}
