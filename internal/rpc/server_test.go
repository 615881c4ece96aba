package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/document"
	"github.com/daniilsolovey/news-cms/internal/embed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

type stubManager struct {
	err        error
	lastFilter newsportal.NewsFilter
}

func (s *stubManager) NewsByFilter(_ context.Context, filter newsportal.NewsFilter) (newsportal.NewsList, error) {
	s.lastFilter = filter
	return newsportal.NewsList{{News: db.News{ID: 1, Title: "First", IsPublished: true}}}, s.err
}

func (s *stubManager) NewsCount(_ context.Context, filter newsportal.NewsFilter) (int, error) {
	s.lastFilter = filter
	return 3, s.err
}

func (s *stubManager) NewsByID(_ context.Context, newsID int, includeDrafts bool) (*newsportal.News, error) {
	if s.err != nil || newsID != 1 {
		return nil, s.err
	}

	published := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	return &newsportal.News{
		News:     db.News{ID: 1, Title: "First", IsPublished: true, PublishedAt: &published},
		Rendered: &document.Rendered{HTML: "<p>x</p>", Scripts: []string{}},
	}, nil
}

func (s *stubManager) PublishScheduled(context.Context) (newsportal.PublishResult, error) {
	return newsportal.PublishResult{Count: 1, Titles: []string{"Due"}}, s.err
}

func (s *stubManager) Categories(context.Context) (newsportal.Categories, error) {
	return newsportal.Categories{{Category: db.Category{ID: 1, Title: "Tech", Slug: "tech"}}}, s.err
}

func (s *stubManager) ResolveEmbed(rawURL string) (embed.Node, embed.Fragment, error) {
	registry := embed.Default()
	node, err := registry.Resolve(rawURL)
	if err != nil {
		return embed.Node{}, embed.Fragment{}, err
	}
	fragment, err := registry.Render(node)

	return node, fragment, err
}

func (s *stubManager) EmbedTypes() []string {
	return []string{"youtube"}
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func call(t *testing.T, uc Manager, method string, params any) rpcResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), uc)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestNewsService(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		uc := &stubManager{}
		resp := call(t, uc, "news.list", map[string]any{"filter": map[string]any{"categoryId": 2, "includeDrafts": true}})
		require.Nil(t, resp.Error)

		var list []NewsSummary
		require.NoError(t, json.Unmarshal(resp.Result, &list))
		require.Len(t, list, 1)
		assert.Equal(t, "First", list[0].Title)
		assert.True(t, uc.lastFilter.IncludeDrafts)
		assert.Equal(t, 1, uc.lastFilter.Page)
		assert.Equal(t, 10, uc.lastFilter.PageSize)
	})

	t.Run("ListInvalidPagination", func(t *testing.T) {
		resp := call(t, &stubManager{}, "news.list", map[string]any{"filter": map[string]any{"pageSize": 1000}})
		require.NotNil(t, resp.Error)
		assert.Equal(t, 400, resp.Error.Code)
	})

	t.Run("Count", func(t *testing.T) {
		resp := call(t, &stubManager{}, "news.count", map[string]any{})
		require.Nil(t, resp.Error)
		assert.Equal(t, "3", string(resp.Result))
	})

	t.Run("ByID", func(t *testing.T) {
		resp := call(t, &stubManager{}, "news.byid", map[string]any{"id": 1})
		require.Nil(t, resp.Error)

		var news News
		require.NoError(t, json.Unmarshal(resp.Result, &news))
		assert.Equal(t, "<p>x</p>", news.HTML)
	})

	t.Run("ByIDNotFound", func(t *testing.T) {
		resp := call(t, &stubManager{}, "news.byid", map[string]any{"id": 2})
		require.NotNil(t, resp.Error)
		assert.Equal(t, 404, resp.Error.Code)
	})

	t.Run("ByIDInvalid", func(t *testing.T) {
		resp := call(t, &stubManager{}, "news.byid", map[string]any{"id": 0})
		require.NotNil(t, resp.Error)
		assert.Equal(t, 400, resp.Error.Code)
	})

	t.Run("PublishScheduled", func(t *testing.T) {
		resp := call(t, &stubManager{}, "news.publishscheduled", nil)
		require.Nil(t, resp.Error)
		assert.JSONEq(t, `{"count":1,"published":["Due"]}`, string(resp.Result))
	})

	t.Run("InternalError", func(t *testing.T) {
		resp := call(t, &stubManager{err: errors.New("db down")}, "news.categories", nil)
		require.NotNil(t, resp.Error)
	})
}

func TestEmbedService(t *testing.T) {
	t.Run("Resolve", func(t *testing.T) {
		resp := call(t, &stubManager{}, "embed.resolve", map[string]any{"url": "https://youtu.be/dQw4w9WgXcQ"})
		require.Nil(t, resp.Error)

		var node EmbedNode
		require.NoError(t, json.Unmarshal(resp.Result, &node))
		assert.Equal(t, "youtube", node.Type)
		assert.Equal(t, "dQw4w9WgXcQ", node.Attrs["videoId"])
	})

	t.Run("Unsupported", func(t *testing.T) {
		resp := call(t, &stubManager{}, "embed.resolve", []string{"https://example.com/"})
		require.NotNil(t, resp.Error)
		assert.Equal(t, 422, resp.Error.Code)
	})

	t.Run("Types", func(t *testing.T) {
		resp := call(t, &stubManager{}, "embed.types", nil)
		require.Nil(t, resp.Error)
		assert.JSONEq(t, `["youtube"]`, string(resp.Result))
	})
}
