// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "magangku_backend/internals/features/users/user/controller"
)

// UserRoutes — profil sendiri, untuk semua role yang sudah login.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &userController.UserController{DB: db}
	r.Get("/users/me", ctrl.GetMe) // GET /api/users/me
}

// UserAdminRoutes — daftar user (filter ?role=dosen untuk memilih pembimbing).
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &userController.UserController{DB: db}
	r.Get("/users", ctrl.ListUsers) // GET /api/a/users?role=&q=
}
