// internals/features/internships/magang/controller/controller_helpers.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "magangku_backend/internals/features/internships/magang/dto"
	"magangku_backend/internals/features/internships/magang/service"
	helper "magangku_backend/internals/helpers"
)

// actorFromCtx membaca identitas dari Locals yang diisi AuthMiddleware.
func actorFromCtx(c *fiber.Ctx) (service.Actor, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{ID: userID, Role: role}, nil
}

// writeServiceError memetakan error service ke envelope JSON:
// validasi → 422, permission → 403, state → 400, storage → 502, not found → 404.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonValidationError(c, ve.Fields)
	}
	var pe *service.PermissionError
	if errors.As(err, &pe) {
		return helper.JsonError(c, fiber.StatusForbidden, pe.Msg)
	}
	var ise *service.InvalidStateError
	if errors.As(err, &ise) {
		return helper.JsonError(c, fiber.StatusBadRequest, ise.Msg)
	}
	var se *service.StorageError
	if errors.As(err, &se) {
		log.Printf("[ERROR] storage: %v", se)
		return helper.JsonError(c, fiber.StatusBadGateway, "Penyimpanan file sedang bermasalah, coba lagi nanti")
	}
	var nfe *service.NotFoundError
	if errors.As(err, &nfe) {
		return helper.JsonError(c, fiber.StatusNotFound, nfe.Msg)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] internal: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// createComment dipakai bersama route mahasiswa & dosen; service yang
// memastikan komentator memang terlibat pada magang tersebut.
func createComment(c *fiber.Ctx, svc *service.LifecycleService) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	row, err := svc.RecordComment(c.Context(), actor, id, strings.TrimSpace(body.Text))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Komentar berhasil ditambahkan", dto.FromLogModel(*row))
}

func parseBodyUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format ID tidak valid")
	}
	return id, nil
}
