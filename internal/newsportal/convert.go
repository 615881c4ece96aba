package newsportal

import "github.com/daniilsolovey/news-cms/internal/db"

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewNews(n *db.News) News {
	news := News{News: *n}
	news.News.Category = nil

	if n.Category != nil {
		category := NewCategory(n.Category)
		news.Category = &category
	}

	return news
}

// NewNewsSummary is NewNews without the document content, used for lists.
func NewNewsSummary(n *db.News) News {
	summary := NewNews(n)
	summary.Content = nil

	return summary
}
