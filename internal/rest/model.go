package rest

import (
	"encoding/json"
	"time"

	"github.com/daniilsolovey/news-cms/internal/document"
	"github.com/daniilsolovey/news-cms/internal/embed"
)

type Category struct {
	CategoryID  int     `json:"categoryId"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	OrderNumber int     `json:"orderNumber"`
}

type NewsSummary struct {
	NewsID      int        `json:"newsId"`
	CategoryID  *int       `json:"categoryId"`
	Title       string     `json:"title"`
	Summary     *string    `json:"summary,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Author      string     `json:"author"`
	IsPublished bool       `json:"isPublished"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Category    *Category  `json:"category,omitempty"`
}

type News struct {
	NewsSummary
	Content json.RawMessage `json:"content,omitempty" swaggertype:"object"`
	HTML    string          `json:"html"`
	Scripts []string        `json:"scripts"`
}

type NewsRequest struct {
	CategoryID *int `query:"categoryId"`
	Page       *int `query:"page"`
	PageSize   *int `query:"pageSize"`
}

type NewsCountRequest struct {
	CategoryID *int `query:"categoryId"`
}

// NewsInput is the body of the create and update endpoints.
type NewsInput struct {
	CategoryID  *int            `json:"categoryId"`
	Title       string          `json:"title"`
	Summary     *string         `json:"summary"`
	Content     json.RawMessage `json:"content" swaggertype:"object"`
	ImageURL    *string         `json:"imageUrl"`
	Author      string          `json:"author"`
	IsPublished bool            `json:"isPublished"`
	ScheduledAt *time.Time      `json:"scheduledAt"`
}

// ScheduleRequest clears the schedule when ScheduledAt is null.
type ScheduleRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt"`
}

type PublishResponse struct {
	Message   string   `json:"message"`
	Count     int      `json:"count"`
	Published []string `json:"published"`
}

type EmbedResolveRequest struct {
	URL string `json:"url"`
}

type EmbedResolveResponse struct {
	Type   string      `json:"type"`
	Attrs  embed.Attrs `json:"attrs"`
	HTML   string      `json:"html"`
	Script string      `json:"script,omitempty"`
}

type EmbedParseRequest struct {
	HTML string `json:"html"`
}

type EmbedParseResponse struct {
	Document *document.Node `json:"document"`
	HTML     string         `json:"html"`
	Scripts  []string       `json:"scripts"`
}

type EmbedProvidersResponse struct {
	Types []string `json:"types"`
}
