package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"grocerly/internal/auth"
	"grocerly/internal/config"
	"grocerly/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authn *auth.Authenticator,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	itemHandler *handler.ItemHandler,
	categoryHandler *handler.CategoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/session", authHandler.CreateSession)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/items", itemHandler.List)
	api.GET("/categories", categoryHandler.ListNames)
	api.POST("/seed-items", seedHandler.SeedItems)

	// Authenticated routes (session token via cookie or bearer header)
	authed := api.Group("", auth.RequireUser(authn))
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/user/profile", userHandler.GetProfile)
	authed.PUT("/user/profile", userHandler.UpdateProfile)
	authed.GET("/cart", cartHandler.Get)
	authed.PUT("/cart", cartHandler.Update)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.ListMine)
	authed.DELETE("/orders/:id", orderHandler.Delete)

	// Admin routes
	admin := api.Group("/admin", auth.RequireUser(authn), auth.RequireAdmin())
	admin.POST("/items", itemHandler.Create)
	admin.PUT("/items/:id", itemHandler.Update)
	admin.DELETE("/items/:id", itemHandler.Delete)
	admin.GET("/categories", categoryHandler.ListAll)
	admin.POST("/categories", categoryHandler.Create)
	admin.DELETE("/categories/:id", categoryHandler.Delete)
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/confirm", orderHandler.Confirm)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
