package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cgtsc/website/internal/model"
	"cgtsc/website/internal/service"
)

type StatusHandler struct {
	service service.StatusService
}

type statusCheckRequest struct {
	ClientName string `json:"client_name"`
}

type statusCheckResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}

func NewStatusHandler(service service.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

func (h *StatusHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/status", h.Create)
	g.GET("/status", h.List)
}

// Create records a status check.
// @Summary Create a status check
// @Tags status
// @Accept json
// @Produce json
// @Param check body statusCheckRequest true "Status check"
// @Success 200 {object} statusCheckResponse
// @Failure 400 {object} errorResponse
// @Router /status [post]
func (h *StatusHandler) Create(c echo.Context) error {
	var req statusCheckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	check, err := h.service.Create(c.Request().Context(), req.ClientName)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toStatusCheckResponse(check))
}

// List returns recorded status checks, oldest first.
// @Summary List status checks
// @Tags status
// @Produce json
// @Success 200 {array} statusCheckResponse
// @Router /status [get]
func (h *StatusHandler) List(c echo.Context) error {
	checks, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]statusCheckResponse, 0, len(checks))
	for _, check := range checks {
		response = append(response, toStatusCheckResponse(check))
	}
	return c.JSON(http.StatusOK, response)
}

func toStatusCheckResponse(check model.StatusCheck) statusCheckResponse {
	return statusCheckResponse{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
