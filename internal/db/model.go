// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Title, Slug, ImageURL, OrderNumber string
	}
	News struct {
		ID, CategoryID, Title, Summary, Content, ImageURL, Author, IsPublished, ScheduledAt, PublishedAt, CreatedAt, UpdatedAt string

		Category string
	}
}{
	Category: struct {
		ID, Title, Slug, ImageURL, OrderNumber string
	}{
		ID:          "id",
		Title:       "title",
		Slug:        "slug",
		ImageURL:    "image_url",
		OrderNumber: "order_number",
	},
	News: struct {
		ID, CategoryID, Title, Summary, Content, ImageURL, Author, IsPublished, ScheduledAt, PublishedAt, CreatedAt, UpdatedAt string

		Category string
	}{
		ID:          "id",
		CategoryID:  "category_id",
		Title:       "title",
		Summary:     "summary",
		Content:     "content",
		ImageURL:    "image_url",
		Author:      "author",
		IsPublished: "is_published",
		ScheduledAt: "scheduled_at",
		PublishedAt: "published_at",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",

		Category: "Category",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int     `pg:"id,pk"`
	Title       string  `pg:"title,use_zero"`
	Slug        string  `pg:"slug,use_zero"`
	ImageURL    *string `pg:"image_url"`
	OrderNumber int     `pg:"order_number,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID          int        `pg:"id,pk"`
	CategoryID  *int       `pg:"category_id"`
	Title       string     `pg:"title,use_zero"`
	Summary     *string    `pg:"summary"`
	Content     *string    `pg:"content"`
	ImageURL    *string    `pg:"image_url"`
	Author      string     `pg:"author,use_zero"`
	IsPublished bool       `pg:"is_published,use_zero"`
	ScheduledAt *time.Time `pg:"scheduled_at"`
	PublishedAt *time.Time `pg:"published_at"`
	CreatedAt   time.Time  `pg:"created_at,use_zero"`
	UpdatedAt   *time.Time `pg:"updated_at"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
}
