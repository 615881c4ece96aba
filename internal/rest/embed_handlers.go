package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/internal/embed"
)

// ResolveEmbed handles POST /api/v1/embeds/resolve
// @Summary Resolve a pasted URL
// @Description Returns the embed node the editor inserts for the URL and its rendered preview
// @Tags embeds
// @Accept json
// @Produce json
// @Param request body rest.EmbedResolveRequest true "URL"
// @Success 200 {object} rest.EmbedResolveResponse
// @Failure 400,422,500 {object} map[string]string
// @Router /api/v1/embeds/resolve [post]
func (h *NewsHandler) ResolveEmbed(c echo.Context) error {
	var req EmbedResolveRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	node, fragment, err := h.uc.ResolveEmbed(req.URL)
	if errors.Is(err, embed.ErrUnsupportedURL) {
		return h.handleError(c, err, http.StatusUnprocessableEntity, "unsupported url")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewEmbedResolveResponse(node, fragment))
}

// ParseEmbeds handles POST /api/v1/embeds/parse
// @Summary Import embeds from HTML
// @Description Finds the embeds in pasted HTML and returns them as an editor document
// @Tags embeds
// @Accept json
// @Produce json
// @Param request body rest.EmbedParseRequest true "HTML"
// @Success 200 {object} rest.EmbedParseResponse
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/embeds/parse [post]
func (h *NewsHandler) ParseEmbeds(c echo.Context) error {
	var req EmbedParseRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	doc, rendered, err := h.uc.ParseEmbeds(req.HTML)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewEmbedParseResponse(doc, rendered))
}

// EmbedProviders handles GET /api/v1/embeds/providers
// @Summary List embed types
// @Tags embeds
// @Produce json
// @Success 200 {object} rest.EmbedProvidersResponse
// @Router /api/v1/embeds/providers [get]
func (h *NewsHandler) EmbedProviders(c echo.Context) error {
	return c.JSON(http.StatusOK, EmbedProvidersResponse{Types: h.uc.EmbedTypes()})
}
