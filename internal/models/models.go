package models

import (
	"time"
)

type User struct {
	UserID       int       `json:"userId" db:"user_id"`
	UserName     string    `json:"user_name" db:"user_name"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID      int       `json:"postId" db:"post_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Picture     string    `json:"picture" db:"picture"`
	Username    string    `json:"username" db:"username"`
	Categories  string    `json:"categories" db:"categories"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID int       `json:"commentId" db:"comment_id"`
	PostID    int       `json:"postId" db:"post_id"`
	Name      string    `json:"name" db:"name"`
	Comments  string    `json:"comments" db:"comments"`
	Date      time.Time `json:"date" db:"date"`
}

type RefreshToken struct {
	Token     string    `json:"token" db:"token"`
	UserID    int       `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
}

type File struct {
	FileID       int       `json:"id" db:"file_id"`
	Filename     string    `json:"filename" db:"filename"`
	OriginalName string    `json:"originalName" db:"original_name"`
	ContentType  string    `json:"contentType" db:"content_type"`
	Size         int64     `json:"size" db:"size"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`
}
