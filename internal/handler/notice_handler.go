package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cgtsc/website/internal/model"
	"cgtsc/website/internal/service"
)

type NoticeHandler struct {
	service service.NoticeService
}

func NewNoticeHandler(service service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

func (h *NoticeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notices", h.List)
	g.POST("/notices/refresh", h.Refresh)
}

// List returns the current notices.
// @Summary List notices
// @Description Latest notices in source order, at most ten
// @Tags notices
// @Produce json
// @Success 200 {array} model.Notice
// @Failure 500 {object} errorResponse
// @Router /notices [get]
func (h *NoticeHandler) List(c echo.Context) error {
	notices, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if notices == nil {
		notices = []model.Notice{}
	}
	return c.JSON(http.StatusOK, notices)
}

// Refresh re-reads the notice source.
// @Summary Refresh notices
// @Description Fetch the notice source now and replace the stored notices
// @Tags notices
// @Success 204 "No Content"
// @Failure 502 {object} errorResponse
// @Router /notices/refresh [post]
func (h *NoticeHandler) Refresh(c echo.Context) error {
	if err := h.service.Refresh(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
