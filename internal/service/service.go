package service

import (
	"errors"

	"blogapp/internal/config"
	"blogapp/internal/repository"
	"blogapp/internal/storage"
)

// Ошибки уровня сервисов, обработчики переводят их в HTTP-статусы.
var (
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrInvalidToken       = errors.New("недействительный токен")
	ErrForbidden          = errors.New("доступ запрещен")
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	File    FileService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, rep.Token, cfg),
		Post:    NewPostService(rep.Post),
		Comment: NewCommentService(rep.Comment),
		File:    NewFileService(rep.File, storage),
	}
}
