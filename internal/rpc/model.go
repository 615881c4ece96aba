package rpc

import (
	"encoding/json"
	"time"

	"github.com/daniilsolovey/news-cms/internal/embed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

type NewsFilter struct {
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//includeDrafts list drafts and scheduled news too
	IncludeDrafts bool `json:"includeDrafts,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

func (f NewsFilter) ToModel() newsportal.NewsFilter {
	filter := newsportal.NewsFilter{
		CategoryID:    f.CategoryID,
		IncludeDrafts: f.IncludeDrafts,
		Page:          1,
		PageSize:      10,
	}
	if f.Page != nil {
		filter.Page = *f.Page
	}
	if f.PageSize != nil {
		filter.PageSize = *f.PageSize
	}

	return filter
}

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	OrderNumber int    `json:"orderNumber"`
}

type NewsSummary struct {
	NewsID      int        `json:"newsId"`
	CategoryID  *int       `json:"categoryId"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	IsPublished bool       `json:"isPublished"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	PublishedAt *time.Time `json:"publishedAt"`
	Category    *Category  `json:"category,omitempty"`
}

type News struct {
	NewsSummary
	Content json.RawMessage `json:"content,omitempty"`
	HTML    string          `json:"html"`
	Scripts []string        `json:"scripts"`
}

type PublishResult struct {
	Count     int      `json:"count"`
	Published []string `json:"published"`
}

type EmbedNode struct {
	Type   string      `json:"type"`
	Attrs  embed.Attrs `json:"attrs"`
	HTML   string      `json:"html"`
	Script string      `json:"script,omitempty"`
}
