package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "cgtsc/website/docs"
	"cgtsc/website/internal/handler"
	"cgtsc/website/internal/web"
)

type Handlers struct {
	Root    *handler.RootHandler
	Notices *handler.NoticeHandler
	Status  *handler.StatusHandler
	Site    *handler.SiteHandler
}

func NewRouter(h Handlers, renderer echo.Renderer, corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.StaticFS("/static", web.Static())

	api := e.Group("/api", middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
	}))
	h.Root.RegisterRoutes(api)
	h.Notices.RegisterRoutes(api)
	h.Status.RegisterRoutes(api)

	h.Site.RegisterRoutes(e)

	return e
}
