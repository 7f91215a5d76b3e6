package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rosered/backend/internal/handlers"
	"github.com/rosered/backend/internal/metrics"
	mwauth "github.com/rosered/backend/internal/middleware/auth"
	"github.com/rosered/backend/internal/store"
)

type Deps struct {
	Auth           *store.AuthStore
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	BookingHandler *handlers.BookingHandler
	StaffHandler   *handlers.StaffHandler
	CartHandler    *handlers.CartHandler
	SearchHandler  *handlers.SearchHandler
	Gatherer       prometheus.Gatherer
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })
	if d.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(d.Gatherer)))
	}

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.GET("/profile", d.AuthHandler.Profile)
	v1.GET("/search", d.SearchHandler.Search)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/:id/toggle", d.CartHandler.ToggleCart)

	bookings := v1.Group("/bookings", mwauth.RequireLogin(d.Auth))
	bookings.GET("", d.BookingHandler.ListBookings)
	bookings.POST("", d.BookingHandler.CreateBooking)
	bookings.DELETE("/:id", d.BookingHandler.CancelBooking)

	admin := v1.Group("/admin", mwauth.AdminOnly(d.Auth))
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.GET("/staff", d.StaffHandler.ListStaff)
	admin.POST("/staff", d.StaffHandler.CreateStaff)
	admin.PATCH("/staff/:id", d.StaffHandler.PatchStaff)
	admin.DELETE("/staff/:id", d.StaffHandler.DeleteStaff)
}
