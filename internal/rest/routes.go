package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	newsPath       = "/news"
	newsByIDPath   = "/news/:id"
	schedulePath   = "/news/:id/schedule"
	countPath      = "/count"
	categoriesPath = "/categories"
	adminPrefix    = "/admin"
	embedsPrefix   = "/embeds"

	publishPath = "/functions/v1/publish-scheduled"

	// Service paths
	healthPath     = "/health"
	metricsPath    = "/metrics"
	swaggerDocPath = "/swagger/doc.json"
)

// RegisterRoutes builds the echo engine with every route and middleware.
func (h *NewsHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(h.requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		// the publish function answers its own preflight
		Skipper:      func(c echo.Context) bool { return c.Path() == publishPath },
		AllowOrigins: h.allowOrigins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	h.registerAPIRoutes(e)
	h.registerServiceRoutes(e)

	return e
}

func (h *NewsHandler) registerAPIRoutes(e *echo.Echo) {
	e.Match([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, publishPath, h.PublishScheduled)

	api := e.Group(apiV1Prefix)
	api.GET(newsPath, h.News)
	api.GET(countPath, h.NewsCount)
	api.GET(newsByIDPath, h.NewsByID)
	api.GET(categoriesPath, h.Categories)

	admin := api.Group(adminPrefix)
	admin.GET(newsPath, h.AdminNews)
	admin.GET(newsByIDPath, h.AdminNewsByID)
	admin.POST(newsPath, h.CreateNews)
	admin.PUT(newsByIDPath, h.UpdateNews)
	admin.DELETE(newsByIDPath, h.DeleteNews)
	admin.PUT(schedulePath, h.ScheduleNews)

	embeds := api.Group(embedsPrefix)
	embeds.POST("/resolve", h.ResolveEmbed)
	embeds.POST("/parse", h.ParseEmbeds)
	embeds.GET("/providers", h.EmbedProviders)
}

func (h *NewsHandler) registerServiceRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(h.opts.Gatherer, promhttp.HandlerOpts{})))
	e.GET(swaggerDocPath, h.SwaggerDoc)
}

// Health handles GET /health
// @Summary Health check
// @Tags service
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *NewsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NewsHandler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api documentation is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}

func (h *NewsHandler) allowOrigins() []string {
	if len(h.opts.AllowOrigins) == 0 {
		return []string{"*"}
	}

	return h.opts.AllowOrigins
}

func (h *NewsHandler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}
