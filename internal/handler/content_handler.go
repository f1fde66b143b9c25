package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/danielasalgadov/zona-de-riego/internal/content"
)

// Serves the static bilingual content blob loaded at startup.
type ContentHandler struct {
	content *content.Content
}

func NewContentHandler(c *content.Content) *ContentHandler {
	return &ContentHandler{content: c}
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/content", h.get)
}

func (h *ContentHandler) get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content)
}
