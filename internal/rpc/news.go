package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/embed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

//go:generate zenrpc

// Manager is the part of newsportal.Manager the RPC services use.
type Manager interface {
	NewsByFilter(ctx context.Context, filter newsportal.NewsFilter) (newsportal.NewsList, error)
	NewsCount(ctx context.Context, filter newsportal.NewsFilter) (int, error)
	NewsByID(ctx context.Context, newsID int, includeDrafts bool) (*newsportal.News, error)
	PublishScheduled(ctx context.Context) (newsportal.PublishResult, error)
	Categories(ctx context.Context) (newsportal.Categories, error)
	ResolveEmbed(rawURL string) (embed.Node, embed.Fragment, error)
	EmbedTypes() []string
}

// NewsService provides RPC methods for news operations.
type NewsService struct {
	zenrpc.Service
	manager Manager
}

func NewNewsService(manager Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List retrieves news with optional filtering by categoryId, with pagination.
// Returns NewsSummary (without content).
//
//zenrpc:filter news filter
//zenrpc:return list of news summaries
//zenrpc:400 invalid pagination
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, filter NewsFilter) ([]NewsSummary, error) {
	model := filter.ToModel()
	if model.Page < 1 || model.PageSize < 1 || model.PageSize > 100 {
		return nil, zenrpc.NewStringError(400, "invalid pagination")
	}

	list, err := s.manager.NewsByFilter(ctx, model)
	if err != nil {
		return nil, err
	}

	return NewNewsSummaries(list), nil
}

// Count returns the count of published news matching the optional categoryId filter.
//
//zenrpc:categoryId optional category filter
//zenrpc:return count of news items
//zenrpc:500 internal server error
func (s *NewsService) Count(ctx context.Context, categoryID *int) (int, error) {
	return s.manager.NewsCount(ctx, newsportal.NewsFilter{CategoryID: categoryID})
}

// ByID retrieves a single news with its document and rendered HTML.
//
//zenrpc:id news numeric ID
//zenrpc:includeDrafts return drafts and scheduled news too
//zenrpc:return news with full content
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) ByID(ctx context.Context, id int, includeDrafts bool) (*News, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	n, err := s.manager.NewsByID(ctx, id, includeDrafts)
	if err != nil {
		return nil, err
	} else if n == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	news := NewNews(*n)
	return &news, nil
}

// Categories retrieves all categories ordered by orderNumber.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *NewsService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

// PublishScheduled publishes every draft whose scheduledAt has passed.
//
//zenrpc:return count and titles of the published news
//zenrpc:500 internal server error
func (s *NewsService) PublishScheduled(ctx context.Context) (PublishResult, error) {
	result, err := s.manager.PublishScheduled(ctx)
	if err != nil {
		return PublishResult{}, err
	}

	return NewPublishResult(result), nil
}

// EmbedService resolves pasted URLs for the editor.
type EmbedService struct {
	zenrpc.Service
	manager Manager
}

func NewEmbedService(manager Manager) *EmbedService {
	return &EmbedService{manager: manager}
}

// Resolve returns the embed node for a pasted URL with its preview.
//
//zenrpc:url pasted URL
//zenrpc:return embed node
//zenrpc:422 unsupported url
//zenrpc:500 internal server error
func (s *EmbedService) Resolve(url string) (*EmbedNode, error) {
	node, fragment, err := s.manager.ResolveEmbed(url)
	if errors.Is(err, embed.ErrUnsupportedURL) {
		return nil, zenrpc.NewStringError(422, "unsupported url")
	} else if err != nil {
		return nil, err
	}

	result := NewEmbedNode(node, fragment)
	return &result, nil
}

// Types lists the supported node types in resolve order.
//
//zenrpc:return node types
func (s *EmbedService) Types() []string {
	return s.manager.EmbedTypes()
}
