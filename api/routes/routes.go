package routes

import (
	"time"

	"imobia/api/handler"
	"imobia/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo            *echo.Echo
	Auth            *handler.AuthHandler
	Users           *handler.UserHandler
	Customers       *handler.CustomerHandler
	RealEstate      *handler.RealEstateHandler
	CompanySettings *handler.CompanySettingsHandler
	Contact         *handler.ContactHandler
	AuthMiddleware  middleware.AuthMiddleware
	AuthRate        *middleware.RateLimiter
	LoginRate       *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	customers *handler.CustomerHandler,
	realEstate *handler.RealEstateHandler,
	companySettings *handler.CompanySettingsHandler,
	contact *handler.ContactHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:            e,
		Auth:            auth,
		Users:           users,
		Customers:       customers,
		RealEstate:      realEstate,
		CompanySettings: companySettings,
		Contact:         contact,
		AuthMiddleware:  authMiddleware,
		AuthRate:        middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:       middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.GET("/api/health", handler.Health)

	e.POST("/api/auth/sign-up/email", r.Auth.SignUp, r.AuthRate.Middleware())
	e.POST("/api/auth/sign-in/email", r.Auth.SignIn, r.LoginRate.Middleware())
	e.POST("/api/auth/sign-out", r.Auth.SignOut, r.AuthMiddleware.RequireAuth)
	e.GET("/api/auth/get-session", r.Auth.GetSession)

	e.GET("/api/users", r.Users.List, r.AuthMiddleware.RequireAuth)
	e.POST("/api/users", r.Users.Create, r.AuthMiddleware.RequireAuth)
	e.PATCH("/api/users/:id", r.Users.Update, r.AuthMiddleware.RequireAuth)
	e.DELETE("/api/users/:id", r.Users.Delete, r.AuthMiddleware.RequireAuth)

	// The public site reads the company profile for its footer and navbar.
	e.GET("/api/company-settings", r.CompanySettings.Get)
	e.POST("/api/company-settings", r.CompanySettings.Save, r.AuthMiddleware.RequireAuth)

	e.GET("/api/customers", r.Customers.List, r.AuthMiddleware.RequireAuth)
	e.GET("/api/customers/:id", r.Customers.Get, r.AuthMiddleware.RequireAuth)
	e.POST("/api/customers", r.Customers.Create, r.AuthMiddleware.RequireAuth)
	e.PATCH("/api/customers/:id", r.Customers.Update, r.AuthMiddleware.RequireAuth)
	e.DELETE("/api/customers/:id", r.Customers.Delete, r.AuthMiddleware.RequireAuth)

	// next-code is registered before :id so the literal path wins.
	e.GET("/api/real-estate/next-code", r.RealEstate.NextCode, r.AuthMiddleware.RequireAuth)
	e.GET("/api/real-estate", r.RealEstate.List, r.AuthMiddleware.WithSession)
	e.GET("/api/real-estate/:id", r.RealEstate.Get)
	e.POST("/api/real-estate", r.RealEstate.Create, r.AuthMiddleware.RequireAuth)
	e.PATCH("/api/real-estate/:id", r.RealEstate.Update, r.AuthMiddleware.RequireAuth)
	e.DELETE("/api/real-estate/:id", r.RealEstate.Delete, r.AuthMiddleware.RequireAuth)

	e.POST("/api/contact", r.Contact.Send, r.AuthRate.Middleware())
}
