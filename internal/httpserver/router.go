package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/ws"
)

type Deps struct {
	AuthHandler           *AuthHandler
	MenuHandler           *MenuHandler
	OrderHandler          *OrderHandler
	TableHandler          *TableHandler
	StaffHandler          *StaffHandler
	VenueHandler          *VenueHandler
	PaymentHandler        *PaymentHandler
	ServiceRequestHandler *ServiceRequestHandler
	Hub                   *ws.Hub
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.GET("/me", d.AuthHandler.Me, d.AuthHandler.RequireUser)

	menu := e.Group("/menu")
	menu.GET("/categories", d.MenuHandler.ListCategories)
	menu.GET("/categories/:id", d.MenuHandler.GetCategory)
	menu.PATCH("/categories/:id", d.MenuHandler.PatchCategory)
	menu.GET("/categories/:id/products", d.MenuHandler.ListCategoryProducts)
	menu.GET("/products", d.MenuHandler.ListProducts)
	menu.POST("/products", d.MenuHandler.CreateProduct)
	menu.GET("/products/search", d.MenuHandler.SearchProducts)
	menu.GET("/products/:id", d.MenuHandler.GetProduct)
	menu.PUT("/products/:id", d.MenuHandler.ReplaceProduct)
	menu.PATCH("/products/:id", d.MenuHandler.PatchProduct)

	orders := e.Group("/orders")
	orders.GET("", d.OrderHandler.List)
	orders.POST("", d.OrderHandler.Create)
	orders.GET("/:id", d.OrderHandler.Get)
	orders.PATCH("/:id", d.OrderHandler.UpdateStatus)
	orders.PATCH("/:id/status", d.OrderHandler.UpdateStatus)
	orders.GET("/:id/bill", d.OrderHandler.Bill)
	orders.PATCH("/:id/tip", d.OrderHandler.SetTip)
	orders.POST("/:id/items", d.OrderHandler.AddItem)
	orders.PATCH("/:orderId/items/:itemId", d.OrderHandler.UpdateItemQuantity)
	orders.DELETE("/:orderId/items/:itemId", d.OrderHandler.RemoveItem)

	tables := e.Group("/tables")
	tables.GET("", d.TableHandler.List)
	tables.GET("/qr/:code", d.TableHandler.GetByQR)
	tables.GET("/:id", d.TableHandler.Get)
	tables.PATCH("/:id/status", d.TableHandler.UpdateStatus)
	tables.POST("/:id/reservations", d.TableHandler.Reserve)
	tables.DELETE("/:id/reservations/:reservationId", d.TableHandler.CancelReservation)

	staff := e.Group("/staff")
	staff.GET("", d.StaffHandler.List)
	staff.POST("", d.StaffHandler.Create)
	staff.GET("/:id", d.StaffHandler.Get)
	staff.PUT("/:id", d.StaffHandler.Update)
	staff.PATCH("/:id/metrics", d.StaffHandler.PatchMetrics)
	staff.POST("/:id/deactivate", d.StaffHandler.Deactivate)

	venues := e.Group("/venues")
	venues.GET("", d.VenueHandler.List)
	venues.GET("/:id", d.VenueHandler.Get)
	venues.PUT("/:id", d.VenueHandler.Update)

	e.POST("/payments", d.PaymentHandler.Pay)
	e.GET("/payments/:id", d.PaymentHandler.Get)

	requests := e.Group("/service-requests")
	requests.POST("", d.ServiceRequestHandler.Create)
	requests.GET("", d.ServiceRequestHandler.List)
	requests.PATCH("/:id/status", d.ServiceRequestHandler.UpdateStatus)

	if d.Hub != nil {
		e.GET("/ws", d.Hub.Handler)
	}
}
