// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	activityRoute "magangku_backend/internals/features/activity/route"
	magangRoute "magangku_backend/internals/features/internships/magang/route"
	"magangku_backend/internals/features/internships/magang/service"
	authRoute "magangku_backend/internals/features/users/auth/route"
	userRoute "magangku_backend/internals/features/users/user/route"
	ossHelper "magangku_backend/internals/helpers/oss"
	"magangku_backend/internals/middlewares"
	authMw "magangku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh endpoint:
//
//	/api/auth — publik (register/login rate-limited)
//	/api      — semua role login (profil sendiri)
//	/api/a    — admin
//	/api/u    — mahasiswa
//	/api/d    — dosen
func SetupRoutes(app *fiber.App, db *gorm.DB, blob ossHelper.BlobService) {
	app.Use(middlewares.DBMiddleware(db))

	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)

	svc := service.NewLifecycleService(db, blob)

	api := app.Group("/api", authMw.AuthMiddleware(db))
	userRoute.UserRoutes(api, db)

	admin := api.Group("/a", authMw.OnlyRoles(constants.RoleErrorAdmin("manajemen magang"), constants.RoleAdmin))
	magangRoute.InternshipAdminRoutes(admin, db, svc)
	activityRoute.ActivityAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)

	mahasiswa := api.Group("/u", authMw.OnlyRoles(constants.RoleErrorMahasiswa("magang"), constants.RoleMahasiswa))
	magangRoute.InternshipStudentRoutes(mahasiswa, db, svc)

	dosen := api.Group("/d", authMw.OnlyRoles(constants.RoleErrorDosen("bimbingan magang"), constants.RoleDosen))
	magangRoute.SupervisionDosenRoutes(dosen, db, svc)
}
