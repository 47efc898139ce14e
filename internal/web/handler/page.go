package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rekha718/blogapp/internal/apiclient"
	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/logger"
)

// PageHandler renders the profile and admin views. Both are read-only
// compositions over the post list; the admin numbers are derived on render.
type PageHandler struct {
	api      *apiclient.Client
	sessions *SessionManager
	log      *logger.Logger
}

func NewPageHandler(api *apiclient.Client, sessions *SessionManager, log *logger.Logger) *PageHandler {
	return &PageHandler{api: api, sessions: sessions, log: log}
}

// Index handles GET /.
func (h *PageHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/blog")
}

// Profile handles GET /profile.
func (h *PageHandler) Profile(c *gin.Context) {
	session := h.sessions.Current(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	posts, err := h.api.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Errorf("failed to fetch posts for profile: %v", err)
	}
	mine := []domain.Post{}
	for _, post := range posts {
		if post.AuthorID == session.User.ID {
			mine = append(mine, post)
		}
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"session": session,
		"user":    session.User,
		"posts":   mine,
	})
}

// Admin handles GET /admin.
func (h *PageHandler) Admin(c *gin.Context) {
	session := h.sessions.Current(c)
	if session == nil || !session.User.IsAdmin() {
		c.Redirect(http.StatusFound, "/blog")
		return
	}
	posts, err := h.api.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Errorf("failed to fetch posts for admin: %v", err)
		c.HTML(http.StatusOK, "admin.html", gin.H{
			"session":     session,
			"error":       "Failed to load dashboard data.",
			"totalPosts":  0,
			"totalUsers":  0,
			"totalTags":   0,
			"recentPosts": []domain.Post{},
		})
		return
	}
	authors := map[uint]struct{}{}
	tags := map[string]struct{}{}
	for _, post := range posts {
		authors[post.AuthorID] = struct{}{}
		for _, tag := range post.Tags {
			tags[tag] = struct{}{}
		}
	}
	recent := posts
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"session":     session,
		"totalPosts":  len(posts),
		"totalUsers":  len(authors),
		"totalTags":   len(tags),
		"recentPosts": recent,
	})
}
