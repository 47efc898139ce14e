package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rekha718/blogapp/internal/apiclient"
	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/logger"
)

// BlogHandler renders the blog views. Every backend call runs under the
// incoming request's context, so a navigation the browser abandons cancels
// the in-flight fetch instead of applying a stale response.
type BlogHandler struct {
	api      *apiclient.Client
	sessions *SessionManager
	log      *logger.Logger
}

func NewBlogHandler(api *apiclient.Client, sessions *SessionManager, log *logger.Logger) *BlogHandler {
	return &BlogHandler{api: api, sessions: sessions, log: log}
}

// List handles GET /blog.
func (h *BlogHandler) List(c *gin.Context) {
	session := h.sessions.Current(c)
	posts, err := h.api.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Errorf("failed to fetch posts: %v", err)
		c.HTML(http.StatusOK, "blog-list.html", gin.H{
			"session": session,
			"posts":   []domain.Post{},
			"error":   "Failed to load posts. Please try again.",
		})
		return
	}
	c.HTML(http.StatusOK, "blog-list.html", gin.H{
		"session": session,
		"posts":   posts,
	})
}

// Article handles GET /blog/:id, the viewing state of the detail view.
func (h *BlogHandler) Article(c *gin.Context) {
	session := h.sessions.Current(c)
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	post, err := h.api.GetPost(c.Request.Context(), id)
	if err != nil {
		h.renderFetchError(c, err)
		return
	}
	c.HTML(http.StatusOK, "blog-article.html", gin.H{
		"session": session,
		"post":    post,
		"canEdit": session != nil && (session.User.ID == post.AuthorID || session.User.IsAdmin()),
	})
}

// EditOrNew handles GET /blog-post and GET /blog-edit/:id. Editing an existing
// post loads the current server state into the draft.
func (h *BlogHandler) EditOrNew(c *gin.Context) {
	session := h.sessions.Current(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	draft := Draft{}
	if idParam := c.Param("id"); idParam != "" {
		id, ok := h.parseID(c)
		if !ok {
			return
		}
		post, err := h.api.GetPost(c.Request.Context(), id)
		if err != nil {
			h.renderFetchError(c, err)
			return
		}
		draft = DraftFromPost(post)
	}
	c.HTML(http.StatusOK, "blog-edit.html", gin.H{
		"session": session,
		"draft":   draft,
	})
}

// Save handles POST /blog-post, the saving state. Success moves the draft to
// server truth and redirects to the detail view; failure re-renders the form
// with the draft retained and the error surfaced.
func (h *BlogHandler) Save(c *gin.Context) {
	session := h.sessions.Current(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	draft := Draft{
		ID:      c.PostForm("articleNumber"),
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Tags:    c.PostForm("tags"),
		Images:  c.PostForm("images"),
	}
	if draft.Title == "" || draft.Content == "" {
		h.renderEditError(c, session, draft, "Title and content are required")
		return
	}

	post, err := h.save(c.Request.Context(), session, draft)
	if err != nil {
		h.log.Errorf("failed to save post: %v", err)
		h.renderEditError(c, session, draft, saveErrorMessage(err))
		return
	}
	c.Redirect(http.StatusFound, "/blog/"+uintString(post.PostID))
}

func (h *BlogHandler) save(ctx context.Context, session *domain.Session, draft Draft) (*domain.Post, error) {
	tags := SplitList(draft.Tags)
	images := SplitList(draft.Images)
	if draft.ID == "" {
		return h.api.CreatePost(ctx, domain.CreatePostRequest{
			Title:    draft.Title,
			Content:  draft.Content,
			AuthorID: session.User.ID,
			Tags:     tags,
			Images:   images,
		})
	}
	id, err := strconv.ParseUint(draft.ID, 10, 64)
	if err != nil {
		return nil, errors.New("invalid post id")
	}
	return h.api.UpdatePost(ctx, uint(id), domain.UpdatePostRequest{
		Title:   draft.Title,
		Content: draft.Content,
		Tags:    tags,
		Images:  images,
	})
}

// Remove handles POST /blog-remove/:id.
func (h *BlogHandler) Remove(c *gin.Context) {
	session := h.sessions.Current(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.api.DeletePost(c.Request.Context(), id); err != nil {
		h.log.Errorf("failed to delete post %d: %v", id, err)
		h.renderFetchError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/blog")
}

func (h *BlogHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"message": "Post not found"})
		return 0, false
	}
	return uint(id), true
}

func (h *BlogHandler) renderFetchError(c *gin.Context, err error) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"message": "Post not found"})
		return
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong. Please try again."})
}

func (h *BlogHandler) renderEditError(c *gin.Context, session *domain.Session, draft Draft, message string) {
	c.HTML(http.StatusOK, "blog-edit.html", gin.H{
		"session": session,
		"draft":   draft,
		"error":   message,
	})
}

func saveErrorMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Failed to save post. Please try again."
}
