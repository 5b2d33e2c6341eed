// internals/features/internships/magang/service/lifecycle_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	activityModel "magangku_backend/internals/features/activity/model"
	activityService "magangku_backend/internals/features/activity/service"
	dto "magangku_backend/internals/features/internships/magang/dto"
	m "magangku_backend/internals/features/internships/magang/model"
	userModel "magangku_backend/internals/features/users/user/model"
	ossHelper "magangku_backend/internals/helpers/oss"
)

// Actor adalah identitas pemanggil yang sudah terautentikasi.
// Service tetap re-check kepemilikan/role meskipun route sudah di-guard.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool     { return a.Role == constants.RoleAdmin }
func (a Actor) IsDosen() bool     { return a.Role == constants.RoleDosen }
func (a Actor) IsMahasiswa() bool { return a.Role == constants.RoleMahasiswa }

// LifecycleService mengorkestrasi transisi status magang. Setiap operasi mutasi
// berjalan dalam satu transaksi: mutasi row internships + insert log (+ supervision)
// commit bersama atau rollback bersama. File yang sudah terlanjur ter-upload saat
// transaksi rollback dibiarkan sebagai orphan.
type LifecycleService struct {
	DB       *gorm.DB
	Blob     ossHelper.BlobService
	validate *validator.Validate
}

func NewLifecycleService(db *gorm.DB, blob ossHelper.BlobService) *LifecycleService {
	return &LifecycleService{DB: db, Blob: blob, validate: validator.New()}
}

/* =========================================================
   SUBMIT — mahasiswa mengajukan magang
   ========================================================= */

func (s *LifecycleService) Submit(ctx context.Context, actor Actor, req dto.CreateInternshipRequest, coverLetter *multipart.FileHeader) (*m.InternshipModel, error) {
	if !actor.IsMahasiswa() {
		return nil, NewPermissionError("Hanya mahasiswa yang dapat mengajukan magang")
	}

	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationFromValidator(err)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, NewValidationError("internship_end_date", "Tanggal selesai harus setelah tanggal mulai.")
	}
	if coverLetter == nil {
		return nil, NewValidationError("cover_letter", "Surat pengantar wajib dilampirkan.")
	}

	// upload dulu; kalau transaksi DB gagal, file orphan bisa diterima
	coverURL, _, err := s.Blob.UploadDocument(ctx, "cover-letters", coverLetter)
	if err != nil {
		return nil, &StorageError{Op: "upload", Err: err}
	}

	mo := req.ToModel(actor.ID)
	mo.InternshipCoverLetterPath = &coverURL

	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mo).Error; err != nil {
			return err
		}
		if err := s.writeStatusLog(tx, &mo, actor.ID, nil, m.StatusPending, nil, "Pengajuan magang dibuat"); err != nil {
			return err
		}
		return activityService.Record(tx, activityModel.InternshipSubject(mo.InternshipID), &actor.ID,
			"INTERNSHIP_SUBMITTED", map[string]any{"category": string(mo.InternshipCategory)})
	}); err != nil {
		return nil, err
	}
	return &mo, nil
}

/* =========================================================
   UPDATE — edit pengajuan selama masih PENDING
   ========================================================= */

func (s *LifecycleService) UpdatePending(ctx context.Context, actor Actor, internshipID uuid.UUID, req dto.UpdateInternshipRequest, newCoverLetter *multipart.FileHeader) (*m.InternshipModel, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationFromValidator(err)
	}

	var updated m.InternshipModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if mo.InternshipMahasiswaID != actor.ID {
			return NewPermissionError("Pengajuan ini bukan milik Anda")
		}
		if !mo.CanBeEdited() {
			return NewInvalidStateError("Pengajuan hanya bisa diubah selama status %s", m.StatusPending)
		}

		changed := req.Apply(mo)
		if !mo.InternshipEndDate.After(mo.InternshipStartDate) {
			return NewValidationError("internship_end_date", "Tanggal selesai harus setelah tanggal mulai.")
		}

		if newCoverLetter != nil {
			// hapus file lama best-effort; kegagalan hanya di-log (bukan fatal)
			oldURL := mo.InternshipCoverLetterPath
			newURL, _, err := s.Blob.UploadDocument(ctx, "cover-letters", newCoverLetter)
			if err != nil {
				return &StorageError{Op: "upload", Err: err}
			}
			mo.InternshipCoverLetterPath = &newURL
			changed = append(changed, "cover_letter")
			if oldURL != nil {
				if err := s.Blob.DeleteByPublicURL(ctx, *oldURL); err != nil {
					log.Printf("[WARN] hapus surat pengantar lama gagal: %v", err)
				}
			}
		}

		if err := tx.Save(mo).Error; err != nil {
			return err
		}

		// log bertipe STATUS_CHANGE walau status tidak berubah — kontinuitas audit
		meta, err := m.MarshalLogMeta(m.SubmissionUpdateMeta{
			Status:   mo.InternshipStatus,
			Category: mo.InternshipCategory,
			Updated:  changed,
		})
		if err != nil {
			return err
		}
		row := m.InternshipLogModel{
			InternshipLogInternshipID: mo.InternshipID,
			InternshipLogUserID:       actor.ID,
			InternshipLogType:         m.LogStatusChange,
			InternshipLogTitle:        "Pengajuan diperbarui",
			InternshipLogMetadata:     meta,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		updated = *mo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   APPROVE / REJECT — admin, hanya dari PENDING
   ========================================================= */

func (s *LifecycleService) Approve(ctx context.Context, actor Actor, internshipID uuid.UUID, notes *string) (*m.InternshipModel, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError("Hanya admin yang dapat menyetujui pengajuan")
	}

	var updated m.InternshipModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if !mo.CanBeApproved() {
			return NewInvalidStateError("Pengajuan dengan status %s tidak bisa disetujui", mo.InternshipStatus)
		}

		mo.InternshipApprovedBy = &actor.ID
		if notes != nil {
			mo.InternshipNotes = notes
		}
		if err := s.transition(tx, mo, actor, m.StatusApproved, nil, "Pengajuan disetujui"); err != nil {
			return err
		}
		updated = *mo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *LifecycleService) Reject(ctx context.Context, actor Actor, internshipID uuid.UUID, reason string) (*m.InternshipModel, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError("Hanya admin yang dapat menolak pengajuan")
	}
	if reason == "" {
		return nil, NewValidationError("reason", "Alasan penolakan wajib diisi.")
	}

	var updated m.InternshipModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if !mo.CanBeRejected() {
			return NewInvalidStateError("Pengajuan dengan status %s tidak bisa ditolak", mo.InternshipStatus)
		}

		mo.InternshipApprovedBy = &actor.ID
		mo.InternshipRejectionReason = &reason
		if err := s.transition(tx, mo, actor, m.StatusRejected, &reason, "Pengajuan ditolak"); err != nil {
			return err
		}
		updated = *mo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   ASSIGN SUPERVISOR — admin; dua langkah eksplisit
   dalam satu transaksi: set dosen, lalu transisi ONGOING
   ========================================================= */

func (s *LifecycleService) AssignSupervisor(ctx context.Context, actor Actor, internshipID, dosenID uuid.UUID, notes *string) (*m.InternshipModel, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError("Hanya admin yang dapat menugaskan dosen pembimbing")
	}

	var updated m.InternshipModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if !mo.CanAssignSupervisor() {
			return NewInvalidStateError("Dosen hanya bisa ditugaskan pada pengajuan berstatus %s", m.StatusApproved)
		}

		// langkah 1: pastikan dosen valid, set FK
		var dosen userModel.UserModel
		if err := tx.Where("user_id = ? AND user_deleted_at IS NULL", dosenID).First(&dosen).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Dosen tidak ditemukan")
			}
			return err
		}
		if !dosen.HasRole(constants.RoleDosen) {
			return NewValidationError("dosen_id", "User tersebut bukan dosen.")
		}
		mo.InternshipDosenID = &dosenID

		// langkah 2: transisi APPROVED→ONGOING; invariant: tidak pernah ONGOING tanpa dosen
		if mo.InternshipDosenID == nil {
			return NewInvalidStateError("Magang tidak bisa ONGOING tanpa dosen pembimbing")
		}
		if err := s.transition(tx, mo, actor, m.StatusOngoing, nil, "Dosen pembimbing ditugaskan"); err != nil {
			return err
		}

		// stub supervision menandai awal bimbingan
		stub := m.InternshipSupervisionModel{
			SupervisionInternshipID: mo.InternshipID,
			SupervisionDosenID:      dosenID,
			SupervisionTitle:        "Penugasan dosen pembimbing",
			SupervisionDate:         time.Now(),
			SupervisionType:         m.SupervisionOffline,
			SupervisionNotes:        notes,
		}
		if err := tx.Create(&stub).Error; err != nil {
			return err
		}
		updated = *mo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   COMPLETE / CANCEL
   ========================================================= */

func (s *LifecycleService) Complete(ctx context.Context, actor Actor, internshipID uuid.UUID) (*m.InternshipModel, error) {
	var updated m.InternshipModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && !(actor.IsDosen() && mo.InternshipDosenID != nil && *mo.InternshipDosenID == actor.ID) {
			return NewPermissionError("Hanya admin atau dosen pembimbing yang dapat menyelesaikan magang")
		}
		if !mo.CanBeCompleted() {
			return NewInvalidStateError("Magang dengan status %s tidak bisa diselesaikan", mo.InternshipStatus)
		}
		if err := s.transition(tx, mo, actor, m.StatusCompleted, nil, "Magang selesai"); err != nil {
			return err
		}
		updated = *mo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *LifecycleService) Cancel(ctx context.Context, actor Actor, internshipID uuid.UUID, reason *string) (*m.InternshipModel, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError("Hanya admin yang dapat membatalkan magang")
	}

	var updated m.InternshipModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if !mo.CanBeCancelled() {
			return NewInvalidStateError("Magang dengan status %s tidak bisa dibatalkan", mo.InternshipStatus)
		}
		if err := s.transition(tx, mo, actor, m.StatusCancelled, reason, "Magang dibatalkan"); err != nil {
			return err
		}
		updated = *mo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   LOG AKTIVITAS (mahasiswa) & KOMENTAR
   ========================================================= */

func (s *LifecycleService) RecordActivityLog(ctx context.Context, actor Actor, internshipID uuid.UUID, req dto.CreateActivityReportRequest, attachment *multipart.FileHeader) (*m.InternshipLogModel, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationFromValidator(err)
	}

	var attachmentURL *string
	if attachment != nil {
		url, err := s.uploadAttachment(ctx, "activity-reports", attachment)
		if err != nil {
			return nil, &StorageError{Op: "upload", Err: err}
		}
		attachmentURL = &url
	}

	var row m.InternshipLogModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if mo.InternshipMahasiswaID != actor.ID {
			return NewPermissionError("Magang ini bukan milik Anda")
		}
		if !mo.IsActive() {
			return NewInvalidStateError("Hanya magang aktif yang dapat mencatat aktivitas")
		}

		meta, err := m.MarshalLogMeta(m.ActivityReportMeta{FilePath: attachmentURL})
		if err != nil {
			return err
		}
		row = m.InternshipLogModel{
			InternshipLogInternshipID: mo.InternshipID,
			InternshipLogUserID:       actor.ID,
			InternshipLogType:         m.LogActivityReport,
			InternshipLogTitle:        req.Title,
			InternshipLogDescription:  req.Description,
			InternshipLogMetadata:     meta,
			InternshipLogAttachment:   attachmentURL,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *LifecycleService) RecordComment(ctx context.Context, actor Actor, internshipID uuid.UUID, text string) (*m.InternshipLogModel, error) {
	if text == "" {
		return nil, NewValidationError("text", "Komentar tidak boleh kosong.")
	}

	var row m.InternshipLogModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		// komentar hanya oleh pihak yang terlibat (atau admin)
		party := actor.IsAdmin() ||
			mo.InternshipMahasiswaID == actor.ID ||
			(mo.InternshipDosenID != nil && *mo.InternshipDosenID == actor.ID)
		if !party {
			return NewPermissionError("Anda tidak terlibat pada magang ini")
		}

		row = m.InternshipLogModel{
			InternshipLogInternshipID: mo.InternshipID,
			InternshipLogUserID:       actor.ID,
			InternshipLogType:         m.LogComment,
			InternshipLogTitle:        "Komentar",
			InternshipLogDescription:  &text,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

/* =========================================================
   BIMBINGAN (dosen)
   ========================================================= */

func (s *LifecycleService) RecordSupervision(ctx context.Context, actor Actor, internshipID uuid.UUID, req dto.CreateSupervisionRequest, attachment *multipart.FileHeader) (*m.InternshipSupervisionModel, error) {
	if !actor.IsDosen() {
		return nil, NewPermissionError("Hanya dosen pembimbing yang dapat mencatat bimbingan")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationFromValidator(err)
	}

	var attachmentURL *string
	if attachment != nil {
		url, err := s.uploadAttachment(ctx, "supervisions", attachment)
		if err != nil {
			return nil, &StorageError{Op: "upload", Err: err}
		}
		attachmentURL = &url
	}

	var row m.InternshipSupervisionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if mo.InternshipDosenID == nil || *mo.InternshipDosenID != actor.ID {
			return NewPermissionError("Anda bukan dosen pembimbing magang ini")
		}
		if !mo.IsActive() {
			return NewInvalidStateError("Hanya magang aktif yang dapat menerima bimbingan")
		}

		row = req.ToModel(mo.InternshipID, actor.ID)
		row.SupervisionAttachmentPath = attachmentURL
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		meta, err := m.MarshalLogMeta(m.SupervisionMeta{SupervisionID: row.SupervisionID})
		if err != nil {
			return err
		}
		logRow := m.InternshipLogModel{
			InternshipLogInternshipID: mo.InternshipID,
			InternshipLogUserID:       actor.ID,
			InternshipLogType:         m.LogSupervision,
			InternshipLogTitle:        row.SupervisionTitle,
			InternshipLogDescription:  row.SupervisionNotes,
			InternshipLogMetadata:     meta,
			InternshipLogAttachment:   attachmentURL,
		}
		return tx.Create(&logRow).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RecordFinalEvaluation mencatat evaluasi akhir + nilai akhir sebagai baris
// supervision baru (append-only) menjelang magang diselesaikan.
func (s *LifecycleService) RecordFinalEvaluation(ctx context.Context, actor Actor, internshipID uuid.UUID, req dto.FinalEvaluationRequest) (*m.InternshipSupervisionModel, error) {
	if !actor.IsDosen() {
		return nil, NewPermissionError("Hanya dosen pembimbing yang dapat memberi evaluasi akhir")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationFromValidator(err)
	}

	var row m.InternshipSupervisionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if mo.InternshipDosenID == nil || *mo.InternshipDosenID != actor.ID {
			return NewPermissionError("Anda bukan dosen pembimbing magang ini")
		}
		if mo.InternshipStatus != m.StatusOngoing {
			return NewInvalidStateError("Evaluasi akhir hanya untuk magang berstatus %s", m.StatusOngoing)
		}

		title := req.Title
		if title == "" {
			title = "Evaluasi akhir"
		}
		score := req.FinalScore
		row = m.InternshipSupervisionModel{
			SupervisionInternshipID: mo.InternshipID,
			SupervisionDosenID:      actor.ID,
			SupervisionTitle:        title,
			SupervisionDate:         time.Now(),
			SupervisionType:         m.SupervisionOffline,
			SupervisionNotes:        req.Notes,
			SupervisionFinalScore:   &score,
		}
		if len(req.Evaluation) > 0 {
			b, err := json.Marshal(req.Evaluation)
			if err != nil {
				return err
			}
			row.SupervisionFinalEvaluation = datatypes.JSON(b)
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		meta, err := m.MarshalLogMeta(m.SupervisionMeta{SupervisionID: row.SupervisionID, Final: true})
		if err != nil {
			return err
		}
		logRow := m.InternshipLogModel{
			InternshipLogInternshipID: mo.InternshipID,
			InternshipLogUserID:       actor.ID,
			InternshipLogType:         m.LogSupervision,
			InternshipLogTitle:        title,
			InternshipLogMetadata:     meta,
		}
		return tx.Create(&logRow).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

/* =========================================================
   PRESENSI (dosen, batch)
   ========================================================= */

// AttendanceResult melaporkan hasil per-entry: yang tercatat dan yang dilewati
// (mahasiswa tanpa magang aktif di bawah dosen ini). Skip bukan error.
type AttendanceResult struct {
	Recorded []uuid.UUID `json:"recorded"`
	Skipped  []uuid.UUID `json:"skipped"`
}

func (s *LifecycleService) RecordAttendance(ctx context.Context, actor Actor, req dto.RecordAttendanceRequest) (*AttendanceResult, error) {
	if !actor.IsDosen() {
		return nil, NewPermissionError("Hanya dosen pembimbing yang dapat mencatat presensi")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationFromValidator(err)
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	dateStr := date.Format("2006-01-02")

	result := &AttendanceResult{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// sesi bimbingan harus milik dosen ini
		var sup m.InternshipSupervisionModel
		if err := tx.Where("supervision_id = ? AND supervision_deleted_at IS NULL", req.SupervisionID).
			First(&sup).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Sesi bimbingan tidak ditemukan")
			}
			return err
		}
		if sup.SupervisionDosenID != actor.ID {
			return NewPermissionError("Sesi bimbingan ini bukan milik Anda")
		}

		for _, entry := range req.Entries {
			var mo m.InternshipModel
			err := tx.Where(`
				internship_mahasiswa_id = ?
				AND internship_dosen_id = ?
				AND internship_status IN ?
				AND internship_deleted_at IS NULL
			`, entry.MahasiswaID, actor.ID, []m.InternshipStatus{m.StatusApproved, m.StatusOngoing}).
				First(&mo).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Skipped = append(result.Skipped, entry.MahasiswaID)
				continue
			}
			if err != nil {
				return err
			}

			meta, err := m.MarshalLogMeta(m.AttendanceMeta{
				Status:        entry.Status,
				SupervisionID: req.SupervisionID,
				Date:          dateStr,
				Notes:         entry.Notes,
			})
			if err != nil {
				return err
			}
			row := m.InternshipLogModel{
				InternshipLogInternshipID: mo.InternshipID,
				InternshipLogUserID:       actor.ID,
				InternshipLogType:         m.LogAttendance,
				InternshipLogTitle:        "Presensi bimbingan " + dateStr,
				InternshipLogDescription:  entry.Notes,
				InternshipLogMetadata:     meta,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			result.Recorded = append(result.Recorded, entry.MahasiswaID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

/* =========================================================
   UPLOAD DOKUMEN (surat persetujuan, laporan akhir)
   ========================================================= */

func (s *LifecycleService) UploadApprovalLetter(ctx context.Context, actor Actor, internshipID uuid.UUID, fh *multipart.FileHeader) (*m.InternshipModel, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError("Hanya admin yang dapat mengunggah surat persetujuan")
	}
	if fh == nil {
		return nil, NewValidationError("approval_letter", "File surat persetujuan wajib dilampirkan.")
	}

	url, _, err := s.Blob.UploadDocument(ctx, "approval-letters", fh)
	if err != nil {
		return nil, &StorageError{Op: "upload", Err: err}
	}

	return s.attachDocument(ctx, actor, internshipID, "approval_letter", url,
		func(mo *m.InternshipModel) error {
			switch mo.InternshipStatus {
			case m.StatusApproved, m.StatusOngoing, m.StatusCompleted:
				mo.InternshipApprovalLetterPath = &url
				return nil
			}
			return NewInvalidStateError("Surat persetujuan hanya untuk magang yang sudah disetujui")
		})
}

func (s *LifecycleService) UploadFinalReport(ctx context.Context, actor Actor, internshipID uuid.UUID, fh *multipart.FileHeader) (*m.InternshipModel, error) {
	if fh == nil {
		return nil, NewValidationError("report", "File laporan wajib dilampirkan.")
	}

	url, _, err := s.Blob.UploadDocument(ctx, "final-reports", fh)
	if err != nil {
		return nil, &StorageError{Op: "upload", Err: err}
	}

	return s.attachDocument(ctx, actor, internshipID, "final_report", url,
		func(mo *m.InternshipModel) error {
			if mo.InternshipMahasiswaID != actor.ID {
				return NewPermissionError("Magang ini bukan milik Anda")
			}
			switch mo.InternshipStatus {
			case m.StatusOngoing, m.StatusCompleted:
				mo.InternshipReportFilePath = &url
				return nil
			}
			return NewInvalidStateError("Laporan akhir hanya untuk magang yang sedang berjalan atau selesai")
		})
}

func (s *LifecycleService) attachDocument(ctx context.Context, actor Actor, internshipID uuid.UUID, kind, url string, apply func(*m.InternshipModel) error) (*m.InternshipModel, error) {
	var updated m.InternshipModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mo, err := s.findInternship(tx, internshipID)
		if err != nil {
			return err
		}
		if err := apply(mo); err != nil {
			return err
		}
		if err := tx.Save(mo).Error; err != nil {
			return err
		}

		meta, err := m.MarshalLogMeta(m.DocumentUploadMeta{FilePath: url, Kind: kind})
		if err != nil {
			return err
		}
		row := m.InternshipLogModel{
			InternshipLogInternshipID: mo.InternshipID,
			InternshipLogUserID:       actor.ID,
			InternshipLogType:         m.LogDocumentUpload,
			InternshipLogTitle:        "Dokumen diunggah",
			InternshipLogMetadata:     meta,
			InternshipLogAttachment:   &url,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		updated = *mo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   Internal
   ========================================================= */

// uploadAttachment memilih jalur upload dari content type lampiran:
// foto kegiatan di-re-encode ke WebP, dokumen disimpan apa adanya.
func (s *LifecycleService) uploadAttachment(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		url, _, err := s.Blob.UploadImage(ctx, dir, fh)
		return url, err
	}
	url, _, err := s.Blob.UploadDocument(ctx, dir, fh)
	return url, err
}

func (s *LifecycleService) findInternship(tx *gorm.DB, id uuid.UUID) (*m.InternshipModel, error) {
	var mo m.InternshipModel
	if err := tx.Where("internship_id = ? AND internship_deleted_at IS NULL", id).
		First(&mo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Pengajuan magang tidak ditemukan")
		}
		return nil, err
	}
	return &mo, nil
}

// transition menjalankan satu edge state machine: validasi edge, set status,
// tulis log STATUS_CHANGE + audit umum. Dipanggil di dalam transaksi.
func (s *LifecycleService) transition(tx *gorm.DB, mo *m.InternshipModel, actor Actor, to m.InternshipStatus, reason *string, title string) error {
	from := mo.InternshipStatus
	if !m.CanTransition(from, to) {
		return NewInvalidStateError("Transisi %s → %s tidak diizinkan", from, to)
	}
	mo.InternshipStatus = to
	if err := tx.Save(mo).Error; err != nil {
		return err
	}
	if err := s.writeStatusLog(tx, mo, actor.ID, &from, to, reason, title); err != nil {
		return err
	}
	return activityService.Record(tx, activityModel.InternshipSubject(mo.InternshipID), &actor.ID,
		"INTERNSHIP_STATUS_CHANGED", map[string]any{
			"old_status": string(from),
			"new_status": string(to),
		})
}

func (s *LifecycleService) writeStatusLog(tx *gorm.DB, mo *m.InternshipModel, actorID uuid.UUID, old *m.InternshipStatus, next m.InternshipStatus, reason *string, title string) error {
	meta, err := m.MarshalLogMeta(m.StatusChangeMeta{
		OldStatus: old,
		NewStatus: next,
		Reason:    reason,
	})
	if err != nil {
		return err
	}
	row := m.InternshipLogModel{
		InternshipLogInternshipID: mo.InternshipID,
		InternshipLogUserID:       actorID,
		InternshipLogType:         m.LogStatusChange,
		InternshipLogTitle:        title,
		InternshipLogMetadata:     meta,
	}
	return tx.Create(&row).Error
}
