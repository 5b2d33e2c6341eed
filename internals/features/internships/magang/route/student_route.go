// internals/features/internships/magang/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	magangController "magangku_backend/internals/features/internships/magang/controller"
	"magangku_backend/internals/features/internships/magang/service"
)

/*
Mahasiswa routes: pengajuan sendiri + log harian.
Mount contoh: InternshipStudentRoutes(app.Group("/api/u"), db, svc)
*/
func InternshipStudentRoutes(r fiber.Router, db *gorm.DB, svc *service.LifecycleService) {
	ctrl := magangController.NewInternshipStudentController(db, svc)

	internships := r.Group("/internships")
	internships.Post("/", ctrl.Submit)                                   // POST /api/u/internships (multipart)
	internships.Get("/", ctrl.MyInternships)                             // GET  /api/u/internships
	internships.Get("/:id", ctrl.GetMyInternship)                        // GET  /api/u/internships/:id
	internships.Put("/:id", ctrl.Update)                                 // PUT  /api/u/internships/:id (multipart)
	internships.Post("/:id/activity-reports", ctrl.CreateActivityReport) // POST /api/u/internships/:id/activity-reports
	internships.Post("/:id/comments", ctrl.CreateComment)                // POST /api/u/internships/:id/comments
	internships.Post("/:id/final-report", ctrl.UploadFinalReport)        // POST /api/u/internships/:id/final-report
}
