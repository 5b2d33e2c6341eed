// internals/features/activity/route/activity_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "magangku_backend/internals/features/activity/controller"
)

// ActivityAdminRoutes — audit trail lintas fitur, hanya admin.
func ActivityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &activityController.ActivityController{DB: db}
	r.Get("/activities", ctrl.ListActivities) // GET /api/a/activities?subject_type=&subject_id=&action=
}
