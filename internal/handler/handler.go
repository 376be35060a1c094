package handlers

import (
	"github.com/go-playground/validator/v10"

	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/repository"
	"blogapp/internal/service"
	"blogapp/internal/storage"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	PostRepo       repository.PostRepository
	CommentService service.CommentService
	CommentRepo    repository.CommentRepository
	FileService    service.FileService
	DB             *database.DB
	Storage        storage.Storage
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, storage storage.Storage, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PostService:    service.Post,
		PostRepo:       repo.Post,
		CommentService: service.Comment,
		CommentRepo:    repo.Comment,
		FileService:    service.File,
		DB:             db,
		Storage:        storage,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
