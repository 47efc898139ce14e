package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rekha718/blogapp/internal/domain"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository with the given GORM DB instance.
func NewPostRepository(db *gorm.DB) domain.PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post into the database. The database assigns post_id;
// created_at and updated_at are stamped here.
func (r *postRepository) Create(post *domain.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its ID from the database.
func (r *postRepository) GetByID(id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetAll returns every post in insertion order.
func (r *postRepository) GetAll() ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.Order("post_id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update replaces the mutable columns of an existing post and refreshes
// updated_at, in one round trip: the RETURNING clause hydrates post with the
// full row after the update. A target row that no longer exists surfaces as
// ErrPostNotFound.
func (r *postRepository) Update(post *domain.Post) error {
	result := r.db.Model(post).Clauses(clause.Returning{}).Updates(map[string]interface{}{
		"title":      post.Title,
		"content":    post.Content,
		"tags":       post.Tags,
		"images":     post.Images,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// Delete removes a post by its ID and returns the removed row via RETURNING.
// Deleting a row that does not exist is reported as ErrPostNotFound rather
// than a silent no-op.
func (r *postRepository) Delete(id uint) (*domain.Post, error) {
	var post domain.Post
	result := r.db.Clauses(clause.Returning{}).Delete(&post, id)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrPostNotFound
	}
	return &post, nil
}
