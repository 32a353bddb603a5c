package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tripmate/internal/config"
	"tripmate/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	tripHandler *handler.TripHandler,
	inviteHandler *handler.InviteHandler,
	requestHandler *handler.RequestHandler,
	recommendationHandler *handler.RecommendationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/facebook", authHandler.FacebookLogin)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Trip routes
	secured.POST("/trips", tripHandler.CreateTrip)
	secured.GET("/trips", tripHandler.ListMyTrips)
	secured.GET("/trips/:id", tripHandler.GetTrip)

	// Invitation routes
	secured.POST("/invitations", inviteHandler.InviteFriends)
	secured.POST("/redemptions", inviteHandler.RedeemCode)

	// Recommendation request routes
	secured.GET("/requests", requestHandler.ListMyRequests)

	// Recommendation routes
	secured.GET("/trips/:id/recommendations", recommendationHandler.ListForTrip)
	secured.POST("/trips/:id/recommendations", recommendationHandler.Submit)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
