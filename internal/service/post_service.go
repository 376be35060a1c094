package service

import (
	"context"

	"blogapp/internal/models"
	"blogapp/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, postID int, fields map[string]interface{}, actor string) error
	DeletePost(ctx context.Context, postID int, actor string) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:       req.Title,
		Description: req.Description,
		Picture:     req.Picture,
		Username:    req.Username,
		Categories:  req.Categories,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost перезаписывает только переданные поля. Менять пост может
// только его владелец, владелец сравнивается с личностью из токена.
func (p *postService) UpdatePost(ctx context.Context, postID int, fields map[string]interface{}, actor string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.Username != actor {
		return ErrForbidden
	}

	// владельца поста сменить нельзя
	delete(fields, "username")

	return p.postRepo.Update(ctx, postID, fields)
}

// DeletePost удаляет пост владельца. Комментарии поста не каскадируются
// и остаются доступными по postId.
func (p *postService) DeletePost(ctx context.Context, postID int, actor string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.Username != actor {
		return ErrForbidden
	}

	return p.postRepo.Delete(ctx, postID)
}
