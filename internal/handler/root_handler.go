package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIMessage is the banner returned by the API root.
const APIMessage = "Chatkhil Government Technical School and College API"

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Root)
	g.GET("/", h.Root)
}

// Root returns the API banner.
// @Summary API root
// @Tags meta
// @Produce json
// @Success 200 {object} messageResponse
// @Router / [get]
func (h *RootHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: APIMessage})
}
