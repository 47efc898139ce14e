package handler

import (
	"strconv"
	"strings"

	"github.com/Rekha718/blogapp/internal/domain"
)

// Draft is the locally-held, possibly-unsaved copy of a post being edited.
// Tag and image lists are edited as comma-delimited strings and split back
// into sequences on save; split and join must round-trip.
type Draft struct {
	ID      string
	Title   string
	Content string
	Tags    string
	Images  string
}

// DraftFromPost loads current server state into a draft for editing.
func DraftFromPost(post *domain.Post) Draft {
	return Draft{
		ID:      uintString(post.PostID),
		Title:   post.Title,
		Content: post.Content,
		Tags:    JoinList(post.Tags),
		Images:  JoinList(post.Images),
	}
}

// SplitList splits a comma-delimited draft field into a sequence, trimming
// whitespace and dropping blanks.
func SplitList(input string) []string {
	out := []string{}
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList renders a sequence as the comma-delimited form SplitList parses.
func JoinList(values []string) string {
	return strings.Join(values, ", ")
}

func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
