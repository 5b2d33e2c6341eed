// internals/features/internships/magang/route/dosen_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	magangController "magangku_backend/internals/features/internships/magang/controller"
	"magangku_backend/internals/features/internships/magang/service"
)

/*
Dosen routes: bimbingan, presensi, evaluasi akhir.
Mount contoh: SupervisionDosenRoutes(app.Group("/api/d"), db, svc)
*/
func SupervisionDosenRoutes(r fiber.Router, db *gorm.DB, svc *service.LifecycleService) {
	ctrl := magangController.NewSupervisionDosenController(db, svc)

	internships := r.Group("/internships")
	internships.Get("/", ctrl.ListSupervised)                             // GET  /api/d/internships
	internships.Get("/:id/supervisions", ctrl.ListSupervisions)           // GET  /api/d/internships/:id/supervisions
	internships.Post("/:id/supervisions", ctrl.CreateSupervision)         // POST /api/d/internships/:id/supervisions (multipart)
	internships.Post("/:id/final-evaluation", ctrl.RecordFinalEvaluation) // POST /api/d/internships/:id/final-evaluation
	internships.Post("/:id/complete", ctrl.Complete)                      // POST /api/d/internships/:id/complete
	internships.Post("/:id/comments", ctrl.CreateComment)                 // POST /api/d/internships/:id/comments

	r.Post("/attendances", ctrl.RecordAttendance) // POST /api/d/attendances
}
