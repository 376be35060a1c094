package service

import (
	"context"

	"blogapp/internal/models"
	"blogapp/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int, actor string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// CreateComment не проверяет существование поста: ссылка postId не
// является внешним ключом, комментарий переживает удаление поста.
func (c *commentService) CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   req.PostID,
		Name:     req.Name,
		Comments: req.Comments,
	}

	err := c.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment удаляет комментарий только его автора.
func (c *commentService) DeleteComment(ctx context.Context, commentID int, actor string) error {
	comment, err := c.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.Name != actor {
		return ErrForbidden
	}

	return c.commentRepo.Delete(ctx, commentID)
}
