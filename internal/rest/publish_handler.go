package rest

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const publishAllowHeaders = "authorization, x-client-info, apikey, content-type"

// PublishScheduled handles /functions/v1/publish-scheduled
// @Summary Publish scheduled news
// @Description Publishes every draft whose scheduledAt has passed and lists their titles. OPTIONS answers the CORS preflight
// @Tags functions
// @Produce json
// @Param Authorization header string false "Bearer token, required when configured"
// @Success 200 {object} rest.PublishResponse
// @Failure 401,500 {object} map[string]string
// @Router /functions/v1/publish-scheduled [post]
func (h *NewsHandler) PublishScheduled(c echo.Context) error {
	header := c.Response().Header()
	header.Set(echo.HeaderAccessControlAllowOrigin, "*")
	header.Set(echo.HeaderAccessControlAllowHeaders, publishAllowHeaders)

	if c.Request().Method == http.MethodOptions {
		return c.String(http.StatusOK, "ok")
	}

	if !h.publishAuthorized(c) {
		return h.handleError(c, nil, http.StatusUnauthorized, "unauthorized")
	}

	result, err := h.uc.PublishScheduled(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	h.log.Info("scheduled news published", "count", result.Count)

	return c.JSON(http.StatusOK, PublishResponse{
		Message:   fmt.Sprintf("Published %d scheduled news", result.Count),
		Count:     result.Count,
		Published: result.Titles,
	})
}

func (h *NewsHandler) publishAuthorized(c echo.Context) bool {
	if h.opts.PublishToken == "" {
		return true
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.opts.PublishToken)) == 1
}
