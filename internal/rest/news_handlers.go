package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/daniilsolovey/news-cms/internal/document"
	"github.com/daniilsolovey/news-cms/internal/embed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type NewsManager interface {
	NewsByFilter(ctx context.Context, filter newsportal.NewsFilter) (newsportal.NewsList, error)
	NewsCount(ctx context.Context, filter newsportal.NewsFilter) (int, error)
	NewsByID(ctx context.Context, newsID int, includeDrafts bool) (*newsportal.News, error)
	CreateNews(ctx context.Context, in newsportal.NewsInput) (*newsportal.News, error)
	UpdateNews(ctx context.Context, newsID int, in newsportal.NewsInput) (*newsportal.News, error)
	ScheduleNews(ctx context.Context, newsID int, at *time.Time) (*newsportal.News, error)
	DeleteNews(ctx context.Context, newsID int) error
	PublishScheduled(ctx context.Context) (newsportal.PublishResult, error)
	Categories(ctx context.Context) (newsportal.Categories, error)
	ResolveEmbed(rawURL string) (embed.Node, embed.Fragment, error)
	ParseEmbeds(html string) (*document.Node, document.Rendered, error)
	EmbedTypes() []string
}

type Options struct {
	// PublishToken protects the publish function when set.
	PublishToken string
	AllowOrigins []string
	Gatherer     prometheus.Gatherer
}

type NewsHandler struct {
	uc   NewsManager
	log  *slog.Logger
	opts Options
}

func NewNewsHandler(uc NewsManager, log *slog.Logger, opts Options) *NewsHandler {
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	return &NewsHandler{
		uc:   uc,
		log:  log,
		opts: opts,
	}
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message,
		"requestId", c.Response().Header().Get(echo.HeaderXRequestID))
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleManagerError maps newsportal errors to status codes.
func (h *NewsHandler) handleManagerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, newsportal.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "news not found")
	case errors.Is(err, newsportal.ErrAlreadyPublished):
		return h.handleError(c, err, http.StatusConflict, "news already published")
	case errors.Is(err, newsportal.ErrInvalidInput):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// News handles GET /api/v1/news
// @Summary Get published news
// @Description Returns NewsSummary (without content) sorted by publishedAt DESC, with optional categoryId filter and pagination
// @Tags news
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {array} rest.NewsSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *NewsHandler) News(c echo.Context) error {
	return h.news(c, false)
}

// AdminNews handles GET /api/v1/admin/news
// @Summary Get news for the editor
// @Description Same as /api/v1/news with drafts and scheduled news included, sorted by createdAt DESC
// @Tags admin
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {array} rest.NewsSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/news [get]
func (h *NewsHandler) AdminNews(c echo.Context) error {
	return h.news(c, true)
}

func (h *NewsHandler) news(c echo.Context, includeDrafts bool) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	filter := newsportal.NewsFilter{
		CategoryID:    req.CategoryID,
		IncludeDrafts: includeDrafts,
		Page:          defaultPage,
		PageSize:      defaultPageSize,
	}
	if req.Page != nil {
		filter.Page = *req.Page
	}
	if req.PageSize != nil {
		filter.PageSize = *req.PageSize
	}
	if filter.Page < 1 || filter.PageSize < 1 || filter.PageSize > maxPageSize {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid pagination")
	}

	list, err := h.uc.NewsByFilter(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNewsSummaries(list))
}

// NewsCount handles GET /api/v1/count
// @Summary Get published news count
// @Description Returns the count of published news matching the optional categoryId filter
// @Tags news
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Success 200 {integer} int
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/count [get]
func (h *NewsHandler) NewsCount(c echo.Context) error {
	var req NewsCountRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	count, err := h.uc.NewsCount(c.Request().Context(), newsportal.NewsFilter{CategoryID: req.CategoryID})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, count)
}

// NewsByID handles GET /api/v1/news/:id
// @Summary Get published news by ID
// @Description Returns a single published news with its editor document, the rendered HTML and the platform scripts the embeds need
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [get]
func (h *NewsHandler) NewsByID(c echo.Context) error {
	return h.newsByID(c, false)
}

// AdminNewsByID handles GET /api/v1/admin/news/:id
// @Summary Get any news by ID
// @Description Same as /api/v1/news/{id} for drafts and scheduled news too
// @Tags admin
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [get]
func (h *NewsHandler) AdminNewsByID(c echo.Context) error {
	return h.newsByID(c, true)
}

func (h *NewsHandler) newsByID(c echo.Context, includeDrafts bool) error {
	id, err := newsID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	news, err := h.uc.NewsByID(c.Request().Context(), id, includeDrafts)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if news == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories ordered by orderNumber
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *NewsHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// CreateNews handles POST /api/v1/admin/news
// @Summary Create news
// @Description Creates a draft, a scheduled or a published news. Content is the editor document; every embed in it must be valid
// @Tags admin
// @Accept json
// @Produce json
// @Param news body rest.NewsInput true "News"
// @Success 201 {object} rest.News
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/admin/news [post]
func (h *NewsHandler) CreateNews(c echo.Context) error {
	var in NewsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.uc.CreateNews(c.Request().Context(), in.ToNewsportal())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewNews(*news))
}

// UpdateNews handles PUT /api/v1/admin/news/:id
// @Summary Update news
// @Description Replaces the news fields. A published news can not be turned back into a draft
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param news body rest.NewsInput true "News"
// @Success 200 {object} rest.News
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [put]
func (h *NewsHandler) UpdateNews(c echo.Context) error {
	id, err := newsID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var in NewsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.uc.UpdateNews(c.Request().Context(), id, in.ToNewsportal())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// ScheduleNews handles PUT /api/v1/admin/news/:id/schedule
// @Summary Schedule news
// @Description Sets the time a draft is published at, null clears it
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param schedule body rest.ScheduleRequest true "Schedule"
// @Success 200 {object} rest.News
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/v1/admin/news/{id}/schedule [put]
func (h *NewsHandler) ScheduleNews(c echo.Context) error {
	id, err := newsID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.uc.ScheduleNews(c.Request().Context(), id, req.ScheduledAt)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// DeleteNews handles DELETE /api/v1/admin/news/:id
// @Summary Delete news
// @Tags admin
// @Param id path int true "News ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c echo.Context) error {
	id, err := newsID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteNews(c.Request().Context(), id); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func newsID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, errors.New("id must be positive")
	}

	return id, nil
}
