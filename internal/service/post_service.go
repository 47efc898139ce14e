package service

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Rekha718/blogapp/internal/domain"
)

type postService struct {
	repo     domain.PostRepository
	sanitize *bluemonday.Policy
}

// NewPostService creates a new PostService with the given repository.
func NewPostService(repo domain.PostRepository) domain.PostService {
	return &postService{repo: repo, sanitize: bluemonday.UGCPolicy()}
}

// CreatePost creates a new blog post. The caller supplies title, content and
// author; the gateway assigns post_id and timestamps. Tag and image lists
// default to empty, never null.
func (s *postService) CreatePost(req domain.CreatePostRequest) (*domain.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" || req.AuthorID == 0 {
		return nil, domain.ErrInvalidPost
	}
	post := &domain.Post{
		Title:    req.Title,
		Content:  s.sanitize.Sanitize(req.Content),
		AuthorID: req.AuthorID,
		Tags:     nonNull(req.Tags),
		Images:   nonNull(req.Images),
	}
	if err := s.repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPost retrieves a post by its ID.
func (s *postService) GetPost(id uint) (*domain.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns every stored post.
func (s *postService) ListPosts() ([]*domain.Post, error) {
	posts, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	return posts, nil
}

// UpdatePost replaces the four mutable fields of an existing post in a single
// gateway call. post_id, author_id and created_at stay untouched; updated_at
// is refreshed by the gateway, which hands back the full row after the update.
// Fields omitted from the request become empty, matching Create.
func (s *postService) UpdatePost(id uint, req domain.UpdatePostRequest) (*domain.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, domain.ErrInvalidPost
	}
	post := &domain.Post{
		PostID:  id,
		Title:   req.Title,
		Content: s.sanitize.Sanitize(req.Content),
		Tags:    nonNull(req.Tags),
		Images:  nonNull(req.Images),
	}
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost hard-deletes a post and returns the removed row so the transport
// can report what was affected. The gateway hands the row back from the
// delete itself; no prior read is needed.
func (s *postService) DeletePost(id uint) (*domain.Post, error) {
	post, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func nonNull(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
