package rpc

import (
	"encoding/json"

	"github.com/daniilsolovey/news-cms/internal/embed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

func NewNewsSummary(n newsportal.News) NewsSummary {
	summary := NewsSummary{
		NewsID:      n.ID,
		CategoryID:  n.CategoryID,
		Title:       n.Title,
		Author:      n.Author,
		IsPublished: n.IsPublished,
		ScheduledAt: n.ScheduledAt,
		PublishedAt: n.PublishedAt,
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
	out := make([]NewsSummary, len(list))
	for i := range list {
		out[i] = NewNewsSummary(list[i])
	}

	return out
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		OrderNumber: c.OrderNumber,
	}
}

func NewCategories(list newsportal.Categories) []Category {
	out := make([]Category, len(list))
	for i := range list {
		out[i] = NewCategory(list[i])
	}

	return out
}

func NewPublishResult(r newsportal.PublishResult) PublishResult {
	published := r.Titles
	if published == nil {
		published = []string{}
	}

	return PublishResult{Count: r.Count, Published: published}
}

func NewEmbedNode(n embed.Node, f embed.Fragment) EmbedNode {
	return EmbedNode{
		Type:   n.Type,
		Attrs:  n.Attrs,
		HTML:   string(f.HTML),
		Script: f.Script,
	}
}
