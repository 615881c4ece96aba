package newsportal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/document"
)

// MaxTitleLength matches the news.title column.
const MaxTitleLength = 255

// MaxAuthorLength matches the news.author column.
const MaxAuthorLength = 128

var (
	ErrNotFound         = errors.New("news not found")
	ErrAlreadyPublished = errors.New("news already published")
	ErrInvalidInput     = errors.New("invalid input")
)

type Repository interface {
	News(ctx context.Context, filter db.NewsFilter) ([]db.News, error)
	NewsCount(ctx context.Context, filter db.NewsFilter) (int, error)
	NewsByID(ctx context.Context, newsID int, publishedOnly bool) (*db.News, error)
	AddNews(ctx context.Context, news *db.News) (*db.News, error)
	UpdateNews(ctx context.Context, news *db.News) (bool, error)
	SetSchedule(ctx context.Context, newsID int, at *time.Time, now time.Time) (bool, error)
	DeleteNews(ctx context.Context, newsID int) (bool, error)
	PublishDue(ctx context.Context, now time.Time) ([]db.News, error)
	Categories(ctx context.Context) ([]db.Category, error)
}

type Manager struct {
	db       Repository
	renderer *document.Renderer
	metrics  *Metrics
	now      func() time.Time
}

func NewNewsManager(repo Repository, renderer *document.Renderer, metrics *Metrics) *Manager {
	return &Manager{
		db:       repo,
		renderer: renderer,
		metrics:  metrics,
		now:      time.Now,
	}
}

// NewsByFilter returns a page of news summaries (without content). Drafts
// are left out unless filter.IncludeDrafts is set.
func (u *Manager) NewsByFilter(ctx context.Context, filter NewsFilter) (NewsList, error) {
	dbNews, err := u.db.News(ctx, filter.db())
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	return NewNewsList(dbNews), nil
}

func (u *Manager) NewsCount(ctx context.Context, filter NewsFilter) (int, error) {
	count, err := u.db.NewsCount(ctx, filter.db())
	if err != nil {
		return 0, fmt.Errorf("db get news count: %w", err)
	}

	return count, nil
}

// NewsByID returns the article with its content rendered to HTML, nil when
// it does not exist or is a draft while includeDrafts is false.
func (u *Manager) NewsByID(ctx context.Context, newsID int, includeDrafts bool) (*News, error) {
	dbNews, err := u.db.NewsByID(ctx, newsID, !includeDrafts)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	news := NewNews(dbNews)
	news.Rendered = u.render(dbNews.Content)

	return &news, nil
}

func (u *Manager) CreateNews(ctx context.Context, in NewsInput) (*News, error) {
	content, err := u.validate(in)
	if err != nil {
		return nil, err
	}

	now := u.now()
	dbNews := &db.News{
		CreatedAt: now,
	}
	apply(dbNews, in, content)

	if in.IsPublished {
		dbNews.IsPublished = true
		dbNews.PublishedAt = &now
	} else {
		dbNews.ScheduledAt = in.ScheduledAt
	}

	created, err := u.db.AddNews(ctx, dbNews)
	if err != nil {
		return nil, fmt.Errorf("db add news: %w", err)
	}
	u.metrics.ArticleChanges.WithLabelValues("create").Inc()

	news := NewNews(created)
	return &news, nil
}

// UpdateNews replaces the editable fields of a news. A published news stays
// published: it keeps its publishedAt and can not be turned back into a
// draft. Publishing a draft clears its schedule.
func (u *Manager) UpdateNews(ctx context.Context, newsID int, in NewsInput) (*News, error) {
	content, err := u.validate(in)
	if err != nil {
		return nil, err
	}

	current, err := u.db.NewsByID(ctx, newsID, false)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if current == nil {
		return nil, ErrNotFound
	}

	if current.IsPublished && !in.IsPublished {
		return nil, ErrAlreadyPublished
	}

	now := u.now()
	updated := *current
	updated.Category = nil
	updated.UpdatedAt = &now
	apply(&updated, in, content)

	switch {
	case current.IsPublished:
		updated.ScheduledAt = nil
	case in.IsPublished:
		updated.IsPublished = true
		updated.PublishedAt = &now
		updated.ScheduledAt = nil
	default:
		updated.ScheduledAt = in.ScheduledAt
	}

	ok, err := u.db.UpdateNews(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("db update news: %w", err)
	} else if !ok {
		return nil, u.conflict(ctx, newsID)
	}
	u.metrics.ArticleChanges.WithLabelValues("update").Inc()

	// the joined category still holds unless the news moved to another one
	if sameCategory(current.CategoryID, updated.CategoryID) {
		updated.Category = current.Category
	}

	news := NewNews(&updated)
	return &news, nil
}

// ScheduleNews sets the time a draft gets published at, or clears it when
// at is nil. A time in the past publishes the draft on the next run.
func (u *Manager) ScheduleNews(ctx context.Context, newsID int, at *time.Time) (*News, error) {
	ok, err := u.db.SetSchedule(ctx, newsID, at, u.now())
	if err != nil {
		return nil, fmt.Errorf("db schedule news: %w", err)
	} else if !ok {
		return nil, u.conflict(ctx, newsID)
	}
	u.metrics.ArticleChanges.WithLabelValues("schedule").Inc()

	return u.NewsByID(ctx, newsID, true)
}

func (u *Manager) DeleteNews(ctx context.Context, newsID int) error {
	ok, err := u.db.DeleteNews(ctx, newsID)
	if err != nil {
		return fmt.Errorf("db delete news: %w", err)
	} else if !ok {
		return ErrNotFound
	}
	u.metrics.ArticleChanges.WithLabelValues("delete").Inc()

	return nil
}

// PublishScheduled publishes every draft whose scheduledAt has passed.
func (u *Manager) PublishScheduled(ctx context.Context) (PublishResult, error) {
	dbNews, err := u.db.PublishDue(ctx, u.now())
	if err != nil {
		u.metrics.PublishRuns.WithLabelValues(resultError).Inc()
		return PublishResult{}, fmt.Errorf("db publish due news: %w", err)
	}

	published := NewNewsList(dbNews)
	u.metrics.PublishRuns.WithLabelValues(resultSuccess).Inc()
	u.metrics.Published.Add(float64(len(published)))

	return PublishResult{
		Count:  len(published),
		Titles: published.Titles(),
	}, nil
}

func (u *Manager) Categories(ctx context.Context) (Categories, error) {
	list, err := u.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// conflict tells a missing news from a published one after a guarded write
// touched no rows.
func (u *Manager) conflict(ctx context.Context, newsID int) error {
	current, err := u.db.NewsByID(ctx, newsID, false)
	if err != nil {
		return fmt.Errorf("db get news by id: %w", err)
	} else if current == nil {
		return ErrNotFound
	}

	return ErrAlreadyPublished
}

// validate checks the input and returns the canonical document JSON, nil
// when the input carries no content.
func (u *Manager) validate(in NewsInput) (*string, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: title is longer than %d characters", ErrInvalidInput, MaxTitleLength)
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Author)) > MaxAuthorLength {
		return nil, fmt.Errorf("%w: author is longer than %d characters", ErrInvalidInput, MaxAuthorLength)
	}
	if in.IsPublished && in.ScheduledAt != nil {
		return nil, fmt.Errorf("%w: published news can not be scheduled", ErrInvalidInput)
	}

	raw := strings.TrimSpace(string(in.Content))
	if raw == "" || raw == "null" {
		return nil, nil
	}

	doc, err := document.Parse([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := u.renderer.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	data, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	content := string(data)

	return &content, nil
}

func (u *Manager) render(content *string) *document.Rendered {
	doc := document.Empty()
	if content != nil {
		parsed, err := document.Parse([]byte(*content))
		if err == nil {
			doc = parsed
		}
	}

	rendered := u.renderer.Render(doc)
	return &rendered
}

func sameCategory(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func apply(n *db.News, in NewsInput, content *string) {
	n.CategoryID = in.CategoryID
	n.Title = strings.TrimSpace(in.Title)
	n.Summary = in.Summary
	n.Content = content
	n.ImageURL = in.ImageURL
	n.Author = strings.TrimSpace(in.Author)
}
