package server

import (
	"github.com/labstack/echo/v4"
)

// 各ハンドラが自分のルートを登録する
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

func New(handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}
	return e
}

func Start(addr string, handlers ...RouteRegistrar) error {
	return New(handlers...).Start(addr)
}
