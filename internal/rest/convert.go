package rest

import (
	"encoding/json"

	"github.com/daniilsolovey/news-cms/internal/document"
	"github.com/daniilsolovey/news-cms/internal/embed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNewsSummary(n newsportal.News) NewsSummary {
	summary := NewsSummary{
		NewsID:      n.ID,
		CategoryID:  n.CategoryID,
		Title:       n.Title,
		Summary:     n.Summary,
		ImageURL:    n.ImageURL,
		Author:      n.Author,
		IsPublished: n.IsPublished,
		ScheduledAt: n.ScheduledAt,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}

	if n.Category != nil {
		category := NewCategory(*n.Category)
		summary.Category = &category
	}

	return summary
}

func NewNews(n newsportal.News) News {
	news := News{
		NewsSummary: NewNewsSummary(n),
		Scripts:     []string{},
	}

	if n.Content != nil {
		news.Content = json.RawMessage(*n.Content)
	}
	if n.Rendered != nil {
		news.HTML = n.Rendered.HTML
		news.Scripts = n.Rendered.Scripts
	}

	return news
}

func NewNewsSummaries(list newsportal.NewsList) []NewsSummary {
	return Map(list, NewNewsSummary)
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		ImageURL:    c.ImageURL,
		OrderNumber: c.OrderNumber,
	}
}

func NewCategories(list newsportal.Categories) []Category {
	return Map(list, NewCategory)
}

func (in NewsInput) ToNewsportal() newsportal.NewsInput {
	return newsportal.NewsInput{
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Summary:     in.Summary,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		Author:      in.Author,
		IsPublished: in.IsPublished,
		ScheduledAt: in.ScheduledAt,
	}
}

func NewEmbedResolveResponse(n embed.Node, f embed.Fragment) EmbedResolveResponse {
	return EmbedResolveResponse{
		Type:   n.Type,
		Attrs:  n.Attrs,
		HTML:   string(f.HTML),
		Script: f.Script,
	}
}

func NewEmbedParseResponse(doc *document.Node, rendered document.Rendered) EmbedParseResponse {
	return EmbedParseResponse{
		Document: doc,
		HTML:     rendered.HTML,
		Scripts:  rendered.Scripts,
	}
}
