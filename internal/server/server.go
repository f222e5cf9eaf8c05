package server

import (
	"context"
	"net/http"

	"jewelry-storefront/internal/gate"
	"jewelry-storefront/internal/handler"
	mw "jewelry-storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	sessionGate    *mw.SessionGate
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	sessionHandler *handler.SessionHandler
	adminHandler   *handler.AdminHandler
	mediaHandler   *handler.MediaHandler
}

func NewServer(
	sessionGate *mw.SessionGate,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	sessionHandler *handler.SessionHandler,
	adminHandler *handler.AdminHandler,
	mediaHandler *handler.MediaHandler,
) *Server {
	e := echo.New()

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		sessionGate:    sessionGate,
		catalogHandler: catalogHandler,
		cartHandler:    cartHandler,
		orderHandler:   orderHandler,
		sessionHandler: sessionHandler,
		adminHandler:   adminHandler,
		mediaHandler:   mediaHandler,
	}

	s.setupRoutes()
	return s
}

// Route capability flags mirror the storefront's navigation metadata:
// requiresAuth guards checkout and account flows, requiresAdmin the
// back-office. Everything else is public.
func (s *Server) setupRoutes() {
	e := s.echo
	g := s.sessionGate

	public := gate.RouteFlags{}
	authed := gate.RouteFlags{RequiresAuth: true}
	admin := gate.RouteFlags{RequiresAuth: true, RequiresAdmin: true}

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, mw.HomePath)
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/login", s.sessionHandler.LoginPage, g.AuthPage())
	e.GET("/register", s.sessionHandler.RegisterPage, g.AuthPage())

	e.GET("/collection", s.catalogHandler.ListProducts, g.Gate(public))
	e.GET("/product/:id", s.catalogHandler.GetProduct, g.Gate(public))

	api := e.Group("/api")

	// guests can fill a cart, identity is picked up when present
	cart := api.Group("/cart", g.Gate(public))
	cart.GET("", s.cartHandler.GetCart)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PATCH("/items/:id", s.cartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", s.cartHandler.RemoveItem)
	cart.DELETE("", s.cartHandler.ClearCart)

	checkout := api.Group("/checkout", g.Gate(authed))
	checkout.PUT("/shipping", s.orderHandler.SaveShippingInfo)
	checkout.GET("/shipping", s.orderHandler.GetShippingInfo)
	checkout.DELETE("/shipping", s.orderHandler.ClearShippingInfo)
	checkout.POST("", s.orderHandler.Checkout)

	orders := api.Group("/orders", g.Gate(authed))
	orders.GET("", s.orderHandler.ListOrders)
	orders.GET("/:id", s.orderHandler.GetOrder)

	account := api.Group("", g.Gate(authed))
	account.GET("/me", s.sessionHandler.Me)
	account.POST("/logout", s.sessionHandler.Logout)

	// -------- admin back-office --------
	adm := e.Group("/admin", g.Gate(admin))
	adm.GET("/products", s.catalogHandler.ListProducts)
	adm.POST("/products", s.adminHandler.CreateProduct)
	adm.PUT("/products/:id", s.adminHandler.UpdateProduct)
	adm.DELETE("/products/:id", s.adminHandler.DeleteProduct)
	adm.GET("/orders", s.adminHandler.ListOrders)
	adm.GET("/users", s.adminHandler.ListUsers)
	adm.PUT("/users/:id/role", s.adminHandler.SetUserRole)
	adm.POST("/media", s.mediaHandler.Upload)
	adm.GET("/media", s.mediaHandler.List)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
