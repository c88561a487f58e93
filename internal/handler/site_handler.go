package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cgtsc/website/internal/i18n"
	"cgtsc/website/internal/site"
	"cgtsc/website/internal/web"
)

// SiteHandler serves the public page. The page renders with its notices
// loading; the notices partial performs the page's one backend request.
type SiteHandler struct {
	table  i18n.Table
	loader site.NoticeLoader
}

func NewSiteHandler(table i18n.Table, loader site.NoticeLoader) *SiteHandler {
	return &SiteHandler{table: table, loader: loader}
}

func (h *SiteHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Page)
	e.GET("/partials/notices", h.Notices)
	e.GET("/healthz", h.Healthz)
}

// Page renders the full document. A language switch from the page is an htmx
// request and gets only the #app fragment; the notices panel inside it is
// preserved client side, so switching never repeats the notice request.
func (h *SiteHandler) Page(c echo.Context) error {
	lang := i18n.FromQuery(c.QueryParam("lang"))
	name := web.PageTemplate
	if isHTMXRequest(c.Request()) {
		name = web.AppTemplate
	}
	return c.Render(http.StatusOK, name, web.NewPageData(lang, h.table.For(lang)))
}

func (h *SiteHandler) Notices(c echo.Context) error {
	lang := i18n.FromQuery(c.QueryParam("lang"))
	page := site.NewPage(lang)
	defer page.Close()

	site.LoadNotices(c.Request().Context(), h.loader, page)

	name := web.NoticesTemplate
	if c.QueryParam("frame") != "" {
		name = web.NoticesFrameTemplate
	}
	return c.Render(http.StatusOK, name, web.NewNoticesData(page.Snapshot(), h.table.For(lang)))
}

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

func (h *SiteHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
