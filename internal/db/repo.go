package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type NewsFilter struct {
	CategoryID    *int
	PublishedOnly bool
	Page          int
	PageSize      int
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}

	return nil
}

// News returns one page of news with their category. Published news are
// sorted by publishedAt DESC, the editor listing by createdAt DESC.
func (r *Repository) News(ctx context.Context, filter NewsFilter) ([]News, error) {
	if filter.Page < 1 || filter.PageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			filter.Page, filter.PageSize,
		)
	}

	offset := (filter.Page - 1) * filter.PageSize

	news := []News{}
	query := r.db.ModelContext(ctx, &news).
		Relation(Columns.News.Category)
	query = applyNewsFilter(query, filter)

	if filter.PublishedOnly {
		query = query.OrderExpr(`"t"."published_at" DESC`)
	} else {
		query = query.OrderExpr(`"t"."created_at" DESC`)
	}

	err := query.
		OrderExpr(`"t"."id" DESC`).
		Limit(filter.PageSize).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsCount(ctx context.Context, filter NewsFilter) (int, error) {
	query := r.db.ModelContext(ctx, (*News)(nil))
	query = applyNewsFilter(query, filter)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

// NewsByID returns nil when the news does not exist, or is not published
// while publishedOnly is set.
func (r *Repository) NewsByID(ctx context.Context, newsID int, publishedOnly bool) (*News, error) {
	news := &News{}
	query := r.db.ModelContext(ctx, news).
		Relation(Columns.News.Category).
		Where(`"t".? = ?`, pg.Ident(Columns.News.ID), newsID)
	if publishedOnly {
		query = query.Where(`"t".? = TRUE`, pg.Ident(Columns.News.IsPublished))
	}

	err := query.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

func (r *Repository) AddNews(ctx context.Context, news *News) (*News, error) {
	_, err := r.db.ModelContext(ctx, news).
		ExcludeColumn(Columns.News.ID).
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}

	return news, nil
}

// UpdateNews writes every column except createdAt. A row that has been
// published meanwhile is never written back as unpublished, in which case
// false is returned just like for a missing row.
func (r *Repository) UpdateNews(ctx context.Context, news *News) (bool, error) {
	query := r.db.ModelContext(ctx, news).
		WherePK().
		ExcludeColumn(Columns.News.CreatedAt)
	if !news.IsPublished {
		query = query.Where(`"t".? = FALSE`, pg.Ident(Columns.News.IsPublished))
	}

	res, err := query.Update()
	if err != nil {
		return false, fmt.Errorf("failed to update news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// SetSchedule sets or clears scheduledAt of an unpublished news.
func (r *Repository) SetSchedule(ctx context.Context, newsID int, at *time.Time, now time.Time) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`? = ?`, pg.Ident(Columns.News.ScheduledAt), at).
		Set(`? = ?`, pg.Ident(Columns.News.UpdatedAt), now).
		Where(`"t".? = ?`, pg.Ident(Columns.News.ID), newsID).
		Where(`"t".? = FALSE`, pg.Ident(Columns.News.IsPublished)).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to schedule news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteNews(ctx context.Context, newsID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &News{ID: newsID}).
		WherePK().
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// PublishDue publishes every unpublished news whose scheduledAt is not after
// now, in one statement, and returns their ids and titles.
func (r *Repository) PublishDue(ctx context.Context, now time.Time) ([]News, error) {
	published := []News{}
	_, err := r.db.QueryContext(ctx, &published, `
		UPDATE "news"
		SET "is_published" = TRUE,
			"scheduled_at" = NULL,
			"published_at" = ?0,
			"updated_at"   = ?0
		WHERE "is_published" = FALSE
			AND "scheduled_at" IS NOT NULL
			AND "scheduled_at" <= ?0
		RETURNING "id", "title"`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to publish scheduled news: %w", err)
	}

	return published, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	categories := []Category{}
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`? ASC`, pg.Ident(Columns.Category.OrderNumber)).
		OrderExpr(`? ASC`, pg.Ident(Columns.Category.ID)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func applyNewsFilter(query *orm.Query, filter NewsFilter) *orm.Query {
	if filter.PublishedOnly {
		query = query.Where(`"t".? = TRUE`, pg.Ident(Columns.News.IsPublished))
	}
	if filter.CategoryID != nil {
		query = query.Where(`"t".? = ?`, pg.Ident(Columns.News.CategoryID), *filter.CategoryID)
	}

	return query
}
