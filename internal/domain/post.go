package domain

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// ErrPostNotFound is returned when the targeted row does not exist. The
// handler layer maps it to 404; every other gateway failure maps to 500.
var ErrPostNotFound = errors.New("post not found")

// ErrInvalidPost is returned when a create/update payload is missing a
// required field that slipped past request binding.
var ErrInvalidPost = errors.New("invalid post")

// Post is a row of the blogpost relation. Tags and Images are stored as
// Postgres text[] columns and are never null: an absent list is an empty one.
type Post struct {
	PostID    uint           `json:"post_id" gorm:"column:post_id;primaryKey"`
	AuthorID  uint           `json:"author_id" gorm:"column:author_id;index"`
	Title     string         `json:"title" gorm:"type:text;not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	Images    pq.StringArray `json:"images" gorm:"type:text[]"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Post) TableName() string { return "blogpost" }

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,min=1,max=200"`
	Content  string   `json:"content" binding:"required"`
	AuthorID uint     `json:"author_id" binding:"required"`
	Tags     []string `json:"tags,omitempty"`
	Images   []string `json:"images,omitempty"`
}

// UpdatePostRequest replaces the four mutable fields wholesale. Omitted tag
// and image lists are treated as empty, matching the defaulting of Create.
type UpdatePostRequest struct {
	Title   string   `json:"title" binding:"required,min=1,max=200"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// PostRepository is the persistence gateway over the blogpost relation.
// Update and Delete complete in a single round trip: the database returns
// the affected row, and a zero-row result surfaces as ErrPostNotFound.
type PostRepository interface {
	Create(post *Post) error
	GetByID(id uint) (*Post, error)
	GetAll() ([]*Post, error)
	Update(post *Post) error
	Delete(id uint) (*Post, error)
}

type PostService interface {
	CreatePost(req CreatePostRequest) (*Post, error)
	GetPost(id uint) (*Post, error)
	ListPosts() ([]*Post, error)
	UpdatePost(id uint, req UpdatePostRequest) (*Post, error)
	DeletePost(id uint) (*Post, error)
}
