package newsportal

import (
	"encoding/json"
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/document"
)

type Category struct {
	db.Category
}

type News struct {
	db.News
	Category *Category

	// Rendered is set for a single article only.
	Rendered *document.Rendered
}

// NewsInput is what the editor submits. Content is the editor document, an
// empty value stores no content.
type NewsInput struct {
	CategoryID  *int
	Title       string
	Summary     *string
	Content     json.RawMessage
	ImageURL    *string
	Author      string
	IsPublished bool
	ScheduledAt *time.Time
}

type NewsFilter struct {
	CategoryID    *int
	IncludeDrafts bool
	Page          int
	PageSize      int
}

func (f NewsFilter) db() db.NewsFilter {
	return db.NewsFilter{
		CategoryID:    f.CategoryID,
		PublishedOnly: !f.IncludeDrafts,
		Page:          f.Page,
		PageSize:      f.PageSize,
	}
}

// PublishResult lists what one scheduled publish run published.
type PublishResult struct {
	Count  int
	Titles []string
}
