package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authController "magangku_backend/internals/features/users/auth/controller"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah lewat exp
// tiap 6 jam supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := authController.DeleteExpiredBlacklist(db)
			if err != nil {
				log.Printf("[SCHEDULER] cleanup blacklist gagal: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[SCHEDULER] %d token blacklist kadaluarsa dihapus", n)
			}
		}
	}()
}
