// internals/features/internships/magang/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	magangController "magangku_backend/internals/features/internships/magang/controller"
	"magangku_backend/internals/features/internships/magang/service"
)

/*
Admin routes: review pengajuan + kontrol lifecycle.
Mount contoh: InternshipAdminRoutes(app.Group("/api/a"), db, svc)
*/
func InternshipAdminRoutes(r fiber.Router, db *gorm.DB, svc *service.LifecycleService) {
	ctrl := magangController.NewInternshipAdminController(db, svc)

	internships := r.Group("/internships")
	internships.Get("/", ctrl.ListInternships)                          // GET    /api/a/internships
	internships.Get("/:id", ctrl.GetInternship)                         // GET    /api/a/internships/:id
	internships.Post("/:id/approve", ctrl.Approve)                      // POST   /api/a/internships/:id/approve
	internships.Post("/:id/reject", ctrl.Reject)                        // POST   /api/a/internships/:id/reject
	internships.Post("/:id/assign-supervisor", ctrl.AssignSupervisor)   // POST   /api/a/internships/:id/assign-supervisor
	internships.Post("/:id/complete", ctrl.Complete)                    // POST   /api/a/internships/:id/complete
	internships.Post("/:id/cancel", ctrl.Cancel)                        // POST   /api/a/internships/:id/cancel
	internships.Post("/:id/approval-letter", ctrl.UploadApprovalLetter) // POST   /api/a/internships/:id/approval-letter
	internships.Delete("/:id", ctrl.DeleteInternship)                   // DELETE /api/a/internships/:id
	internships.Delete("/:id/logs/:log_id", ctrl.DeleteLog)             // DELETE /api/a/internships/:id/logs/:log_id
}
