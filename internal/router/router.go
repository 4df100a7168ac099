// Package router registers the HTTP routes of the museum site.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velmari/museum-tickets/internal/handler"
	"github.com/velmari/museum-tickets/internal/middleware"
)

// RegisterPublic wires the visitor-facing pages. The cache middleware
// (no-op without Redis) sits only on the listing pages; the booking page
// shows live availability and must not be cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	e.GET("/", p.Home, cache)
	e.GET("/about-us", p.AboutUs, cache)
	e.GET("/about-us/:id", p.AboutUs, cache)
	e.GET("/virtual-exhibition", p.VirtualExhibition, cache)
	e.GET("/poster", p.Poster, cache)
	e.GET("/order", p.OrderPage)
	e.GET("/order/:id", p.OrderPage)
	e.GET("/qr/:token", p.QR)

	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterCheckout wires the order creation endpoint behind the rate
// limiter.
func RegisterCheckout(e *echo.Echo, h *handler.CheckoutHandler, limiter echo.MiddlewareFunc) {
	e.POST("/create-order", h.CreateOrder, limiter)
}

// RegisterAdmin wires the console. Login and logout stay outside the
// session gate; everything else under /admin requires a valid session
// cookie.
func RegisterAdmin(e *echo.Echo, auth *handler.AdminAuthHandler, content *handler.AdminContentHandler, orders *handler.AdminOrderHandler, sessionSecret string) {
	e.GET("/admin/login", auth.LoginForm)
	e.POST("/admin/login", auth.Login)
	e.GET("/admin/logout", auth.Logout)

	g := e.Group("/admin")
	g.Use(middleware.AdminAuth(sessionSecret))
	g.GET("", content.Dashboard)
	g.GET("/content/:category", content.ListContent)
	g.GET("/edit/:category/:id", content.EditForm)
	g.POST("/edit/:category/:id", content.Save)
	g.GET("/delete/:id", content.Delete)
	g.GET("/orders", orders.ListOrders)
}
