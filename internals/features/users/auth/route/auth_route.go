// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "magangku_backend/internals/features/users/auth/controller"
	"magangku_backend/internals/middlewares"
	authMw "magangku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register) // POST /api/auth/register
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)          // POST /api/auth/login
	auth.Post("/refresh-token", ctrl.RefreshToken)                           // POST /api/auth/refresh-token
	auth.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)             // POST /api/auth/logout
}
